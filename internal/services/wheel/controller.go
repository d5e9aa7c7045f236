package wheel

import (
	"context"
	"strings"

	"github.com/mcubed/cubed/internal/listing"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
)

// Controller manages wheel categories and their words
type Controller struct {
	categories storage.Store[model.WheelCategory]
	words      storage.Store[model.WheelWord]
}

// NewController creates a new wheel Controller
func NewController(
	categories storage.Store[model.WheelCategory],
	words storage.Store[model.WheelWord],
) *Controller {
	return &Controller{
		categories: categories,
		words:      words,
	}
}

// Categories

// ListCategories returns every category
func (c *Controller) ListCategories(ctx context.Context) ([]model.WheelCategory, error) {
	return c.categories.GetAll(ctx)
}

// GetCategory retrieves a category by id
func (c *Controller) GetCategory(ctx context.Context, id string) (model.WheelCategory, error) {
	return c.categories.GetSingle(ctx, id)
}

// SaveCategory creates the category when it has no id and updates it otherwise
func (c *Controller) SaveCategory(ctx context.Context, item model.WheelCategory) (model.WheelCategory, error) {
	item.Name = strings.TrimSpace(item.Name)

	if item.ID == "" {
		if item.Name == "" {
			return model.WheelCategory{}, model.NewValidationError("A category name must be specified.")
		}
		return c.categories.InsertSingle(ctx, item)
	}

	if err := c.categories.UpdateSingle(ctx, item); err != nil {
		return model.WheelCategory{}, err
	}
	return c.categories.GetSingle(ctx, item.ID)
}

// DeleteCategory removes a category. Its words are left in place.
func (c *Controller) DeleteCategory(ctx context.Context, id string) error {
	return c.categories.DeleteSingle(ctx, id)
}

// Words

// ListWords returns every word
func (c *Controller) ListWords(ctx context.Context) ([]model.WheelWord, error) {
	return c.words.GetAll(ctx)
}

// ListCategoryWords returns the words of one category
func (c *Controller) ListCategoryWords(ctx context.Context, categoryID string) ([]model.WheelWord, error) {
	if categoryID == "" {
		return nil, model.NewValidationError("A category must be specified.")
	}
	return c.words.GetAllFiltered(ctx, model.WheelWord{CategoryID: categoryID})
}

// GetWord retrieves a word by id
func (c *Controller) GetWord(ctx context.Context, id string) (model.WheelWord, error) {
	return c.words.GetSingle(ctx, id)
}

// SaveWord creates or updates a word. New words always start unapproved and updates never
// touch approval; only ApproveMany sets it.
func (c *Controller) SaveWord(ctx context.Context, item model.WheelWord) (model.WheelWord, error) {
	item.Word = strings.TrimSpace(item.Word)
	item.Approved = false

	if item.ID == "" {
		if item.Word == "" || item.CategoryID == "" {
			return model.WheelWord{}, model.NewValidationError("A word and its category must both be specified.")
		}
		return c.words.InsertSingle(ctx, item)
	}

	if err := c.words.UpdateSingle(ctx, item); err != nil {
		return model.WheelWord{}, err
	}
	return c.words.GetSingle(ctx, item.ID)
}

// DeleteWord removes a word
func (c *Controller) DeleteWord(ctx context.Context, id string) error {
	return c.words.DeleteSingle(ctx, id)
}

// ApproveMany marks each word approved, one update per id. There is no rollback: every id is
// attempted, and the ids that failed are returned along with the first error.
func (c *Controller) ApproveMany(ctx context.Context, ids []string) ([]string, error) {
	var (
		failed   []string
		firstErr error
	)
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if err := c.words.UpdateSingle(ctx, model.WheelWord{ID: id, Approved: true}); err != nil {
			failed = append(failed, id)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return failed, firstErr
}

// ListDuplicateWords returns every word whose text appears more than once, across categories
func (c *Controller) ListDuplicateWords(ctx context.Context) ([]model.WheelWord, error) {
	words, err := c.words.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dups := listing.Duplicates(words, func(w model.WheelWord) string { return w.Word })
	if dups == nil {
		dups = []model.WheelWord{}
	}
	return dups, nil
}

// ListUnverifiedWords returns the words still awaiting approval
func (c *Controller) ListUnverifiedWords(ctx context.Context) ([]model.WheelWord, error) {
	words, err := c.words.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.WheelWord, 0, len(words))
	for _, w := range words {
		if !w.Approved {
			out = append(out, w)
		}
	}
	return out, nil
}
