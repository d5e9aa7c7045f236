package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, one per entity type
const (
	AlternateNamesCollection  = "lineupalternatenames"
	MissingNamesCollection    = "lineupmissingnames"
	UsersCollection           = "users"
	WheelCategoriesCollection = "wheelcategories"
	WheelWordsCollection      = "wheelwords"
)

// IDField is the document key holding the store-assigned identifier
const IDField = "_id"

// Driver is a document store backend. Documents are bson.M maps whose "_id" is always a
// string when returned; drivers convert to their native identifier type internally.
type Driver interface {
	// Configured reports whether connection parameters were supplied. When false the
	// collection layer rejects every call without touching the driver.
	Configured() bool

	// Find returns every document matching all keys of filter (equality only)
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	// FindOne returns the first match or model.ErrNotFound
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	// Insert stores doc (which has no "_id") and returns the assigned identifier
	Insert(ctx context.Context, collection string, doc bson.M) (string, error)
	// Update merges fields into the document with the given id; missing documents are ignored
	Update(ctx context.Context, collection, id string, fields bson.M) error
	// Delete removes the document with the given id; missing documents are ignored
	Delete(ctx context.Context, collection, id string) error
	// Drop removes the whole collection; a missing collection is ignored
	Drop(ctx context.Context, collection string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
