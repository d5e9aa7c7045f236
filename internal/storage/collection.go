package storage

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mcubed/cubed/internal/model"
)

const persistenceHint = " Ensure the database is running and the correct database parameters have been specified."

// Store is the persistence contract for one entity type
type Store[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetAllFiltered(ctx context.Context, filter T) ([]T, error)
	GetSingle(ctx context.Context, id string) (T, error)
	GetSingleFiltered(ctx context.Context, filter T) (T, error)
	InsertSingle(ctx context.Context, item T) (T, error)
	InsertMany(ctx context.Context, items []T) ([]T, error)
	UpdateSingle(ctx context.Context, item T) error
	DeleteSingle(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// Collection is the typed persistence contract for one entity type. T must be a struct whose
// identifier field is tagged `bson:"_id,omitempty"`.
type Collection[T any] struct {
	name   string
	driver Driver
	logger *slog.Logger
}

// Ensure Collection implements the interface
var _ Store[struct{}] = (*Collection[struct{}])(nil)

// NewCollection binds a collection name to a record type
func NewCollection[T any](name string, driver Driver, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		driver: driver,
		logger: logger,
	}
}

// Name returns the underlying collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// GetAll returns every record in the collection
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}
	docs, err := c.driver.Find(ctx, c.name, bson.M{})
	if err != nil {
		return nil, c.fail("getAll", "Cannot read all the records.", err)
	}
	return c.decodeAll("getAll", docs)
}

// GetAllFiltered returns the records matching every non-empty field of filter
func (c *Collection[T]) GetAllFiltered(ctx context.Context, filter T) ([]T, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}
	f, err := ToDocument(filter)
	if err != nil {
		return nil, c.fail("getAllFiltered", "Cannot read the filtered records.", err)
	}
	docs, err := c.driver.Find(ctx, c.name, f)
	if err != nil {
		return nil, c.fail("getAllFiltered", "Cannot read the filtered records.", err)
	}
	return c.decodeAll("getAllFiltered", docs)
}

// GetSingle looks a record up by identifier
func (c *Collection[T]) GetSingle(ctx context.Context, id string) (T, error) {
	var zero T
	if err := c.checkConfigured(); err != nil {
		return zero, err
	}
	if id == "" {
		return zero, model.ErrNotFound
	}
	return c.findOne(ctx, "getSingle", "Cannot read the record with the specified ID.", bson.M{IDField: id})
}

// GetSingleFiltered returns the first record matching filter
func (c *Collection[T]) GetSingleFiltered(ctx context.Context, filter T) (T, error) {
	var zero T
	if err := c.checkConfigured(); err != nil {
		return zero, err
	}
	f, err := ToDocument(filter)
	if err != nil {
		return zero, c.fail("getSingleFiltered", "Cannot read the filtered record.", err)
	}
	return c.findOne(ctx, "getSingleFiltered", "Cannot read the filtered record.", f)
}

// InsertSingle persists item, ignoring any identifier it carries, and returns it with the
// store-assigned identifier populated
func (c *Collection[T]) InsertSingle(ctx context.Context, item T) (T, error) {
	var zero T
	if err := c.checkConfigured(); err != nil {
		return zero, err
	}
	const msg = "Cannot create the specified record."
	inserted, err := c.insert(ctx, item)
	if err != nil {
		return zero, c.fail("insertSingle", msg, err)
	}
	return inserted, nil
}

// InsertMany persists every item as InsertSingle does. Items inserted before a failure stay.
func (c *Collection[T]) InsertMany(ctx context.Context, items []T) ([]T, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		inserted, err := c.insert(ctx, item)
		if err != nil {
			return out, c.fail("insertMany", "Cannot create the specified records.", err)
		}
		out = append(out, inserted)
	}
	return out, nil
}

// UpdateSingle merges the non-empty fields of item into the record with item's identifier
func (c *Collection[T]) UpdateSingle(ctx context.Context, item T) error {
	if err := c.checkConfigured(); err != nil {
		return err
	}
	const msg = "Cannot update the specified record."
	doc, err := ToDocument(item)
	if err != nil {
		return c.fail("updateSingle", msg, err)
	}
	id, _ := doc[IDField].(string)
	if id == "" {
		return model.ErrMissingID
	}
	delete(doc, IDField)
	if len(doc) == 0 {
		return nil
	}
	if err := c.driver.Update(ctx, c.name, id, doc); err != nil {
		return c.fail("updateSingle", msg, err)
	}
	return nil
}

// DeleteSingle removes a record; deleting a missing record is a no-op
func (c *Collection[T]) DeleteSingle(ctx context.Context, id string) error {
	if err := c.checkConfigured(); err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	if err := c.driver.Delete(ctx, c.name, id); err != nil {
		return c.fail("deleteSingle", "Cannot delete the specified record.", err)
	}
	return nil
}

// DeleteAll removes the entire collection
func (c *Collection[T]) DeleteAll(ctx context.Context) error {
	if err := c.checkConfigured(); err != nil {
		return err
	}
	if err := c.driver.Drop(ctx, c.name); err != nil {
		return c.fail("deleteAll", "Cannot delete all the records.", err)
	}
	return nil
}

func (c *Collection[T]) insert(ctx context.Context, item T) (T, error) {
	var zero T
	doc, err := ToDocument(item)
	if err != nil {
		return zero, err
	}
	delete(doc, IDField)
	id, err := c.driver.Insert(ctx, c.name, doc)
	if err != nil {
		return zero, err
	}
	doc[IDField] = id
	return FromDocument[T](doc)
}

func (c *Collection[T]) findOne(ctx context.Context, op, msg string, filter bson.M) (T, error) {
	var zero T
	doc, err := c.driver.FindOne(ctx, c.name, filter)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return zero, model.ErrNotFound
		}
		return zero, c.fail(op, msg, err)
	}
	item, err := FromDocument[T](doc)
	if err != nil {
		return zero, c.fail(op, msg, err)
	}
	return item, nil
}

func (c *Collection[T]) decodeAll(op string, docs []bson.M) ([]T, error) {
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := FromDocument[T](doc)
		if err != nil {
			return nil, c.fail(op, "Cannot read the stored records.", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Collection[T]) checkConfigured() error {
	if !c.driver.Configured() {
		return model.ErrStoreNotConfigured
	}
	return nil
}

// fail logs the cause and returns a client-safe error
func (c *Collection[T]) fail(op, msg string, err error) error {
	c.logger.Error("store operation failed",
		slog.String("collection", c.name),
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return &model.PersistenceError{Op: op, Message: msg + persistenceHint, Err: err}
}
