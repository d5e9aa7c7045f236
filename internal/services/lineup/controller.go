package lineup

import (
	"context"
	"errors"
	"strings"

	"github.com/mcubed/cubed/internal/dependencies/clock"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
)

// Controller manages alternate-name mappings and missing-name reports
type Controller struct {
	alternateNames storage.Store[model.AlternateName]
	missingNames   storage.Store[model.MissingName]
	clock          clock.Clock
}

// NewController creates a new lineup Controller
func NewController(
	alternateNames storage.Store[model.AlternateName],
	missingNames storage.Store[model.MissingName],
	clock clock.Clock,
) *Controller {
	return &Controller{
		alternateNames: alternateNames,
		missingNames:   missingNames,
		clock:          clock,
	}
}

// Alternate names

// ListAlternateNames returns every alternate name mapping
func (c *Controller) ListAlternateNames(ctx context.Context) ([]model.AlternateName, error) {
	return c.alternateNames.GetAll(ctx)
}

// GetAlternateName retrieves a mapping by id
func (c *Controller) GetAlternateName(ctx context.Context, id string) (model.AlternateName, error) {
	return c.alternateNames.GetSingle(ctx, id)
}

// SaveAlternateName creates the mapping when it has no id and merges it into the stored
// mapping otherwise. Either name may be left out; an entirely empty mapping is rejected.
func (c *Controller) SaveAlternateName(ctx context.Context, item model.AlternateName) (model.AlternateName, error) {
	item.ContestName = strings.TrimSpace(item.ContestName)
	item.ExternalName = strings.TrimSpace(item.ExternalName)

	if item.ID == "" {
		if item.ContestName == "" && item.ExternalName == "" && item.LastUsedDate.IsZero() {
			return model.AlternateName{}, model.NewValidationError("A contest name or an external name must be specified.")
		}
		return c.alternateNames.InsertSingle(ctx, item)
	}

	if err := c.alternateNames.UpdateSingle(ctx, item); err != nil {
		return model.AlternateName{}, err
	}
	return c.alternateNames.GetSingle(ctx, item.ID)
}

// DeleteAlternateName removes a mapping; removing a missing mapping is a no-op
func (c *Controller) DeleteAlternateName(ctx context.Context, id string) error {
	return c.alternateNames.DeleteSingle(ctx, id)
}

// ResolveName looks up the contest name for a feed name and stamps the mapping's last use.
// A miss is recorded as a missing-name report and returned as model.ErrNotFound.
func (c *Controller) ResolveName(ctx context.Context, externalName, team string, sport model.Sport) (model.AlternateName, error) {
	externalName = strings.TrimSpace(externalName)
	if externalName == "" {
		return model.AlternateName{}, model.NewValidationError("An external name must be specified.")
	}

	found, err := c.alternateNames.GetSingleFiltered(ctx, model.AlternateName{ExternalName: externalName})
	if errors.Is(err, model.ErrNotFound) {
		if _, err := c.ReportMissingName(ctx, externalName, team, sport); err != nil {
			return model.AlternateName{}, err
		}
		return model.AlternateName{}, model.ErrNotFound
	}
	if err != nil {
		return model.AlternateName{}, err
	}

	found.LastUsedDate = c.clock.Now()
	if err := c.alternateNames.UpdateSingle(ctx, model.AlternateName{ID: found.ID, LastUsedDate: found.LastUsedDate}); err != nil {
		return model.AlternateName{}, err
	}
	return found, nil
}

// Missing names

// ListMissingNames returns every missing-name report
func (c *Controller) ListMissingNames(ctx context.Context) ([]model.MissingName, error) {
	return c.missingNames.GetAll(ctx)
}

// DeleteMissingNames removes one report, or all of them when id is empty
func (c *Controller) DeleteMissingNames(ctx context.Context, id string) error {
	if id == "" {
		return c.missingNames.DeleteAll(ctx)
	}
	return c.missingNames.DeleteSingle(ctx, id)
}

// ReportMissingName counts one more encounter of a name with no mapping
func (c *Controller) ReportMissingName(ctx context.Context, name, team string, sport model.Sport) (model.MissingName, error) {
	name = strings.TrimSpace(name)
	team = strings.TrimSpace(team)
	if name == "" {
		return model.MissingName{}, model.NewValidationError("A name must be specified.")
	}
	if sport != 0 && !sport.Valid() {
		return model.MissingName{}, model.NewValidationError("The specified sport is not known.")
	}

	report := model.MissingName{Name: name, Team: team, Sport: sport}
	existing, err := c.missingNames.GetSingleFiltered(ctx, report)
	if errors.Is(err, model.ErrNotFound) {
		report.Count = 1
		return c.missingNames.InsertSingle(ctx, report)
	}
	if err != nil {
		return model.MissingName{}, err
	}

	existing.Count++
	if err := c.missingNames.UpdateSingle(ctx, model.MissingName{ID: existing.ID, Count: existing.Count}); err != nil {
		return model.MissingName{}, err
	}
	return existing, nil
}
