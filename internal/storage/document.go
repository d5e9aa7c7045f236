package storage

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToDocument encodes a record into a document. Zero-valued fields tagged omitempty are
// left out, which is what gives filters and updates their "non-empty fields only" meaning.
func ToDocument(item any) (bson.M, error) {
	data, err := bson.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		doc = bson.M{}
	}
	return doc, nil
}

// FromDocument decodes a document into a record of type T
func FromDocument[T any](doc bson.M) (T, error) {
	var item T
	data, err := bson.Marshal(doc)
	if err != nil {
		return item, fmt.Errorf("encode document: %w", err)
	}
	if err := bson.Unmarshal(data, &item); err != nil {
		return item, fmt.Errorf("decode document: %w", err)
	}
	return item, nil
}

// Matches reports whether doc has every key of filter with an equal value
func Matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// Merge copies every non-identifier field of fields into doc
func Merge(doc, fields bson.M) {
	for key, value := range fields {
		if key == IDField {
			continue
		}
		doc[key] = value
	}
}

// CopyDocument returns a shallow copy of doc
func CopyDocument(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	return out
}

// NewID returns a fresh identifier in the same format the mongo backend assigns
func NewID() string {
	return primitive.NewObjectID().Hex()
}
