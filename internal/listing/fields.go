package listing

import (
	"fmt"

	"github.com/mcubed/cubed/internal/model"
)

// Fields maps a sort field name to its key extractor
type Fields[T any] map[string]Key[T]

// Sort orders items by the named field. An empty field leaves items untouched.
func (f Fields[T]) Sort(items []T, field string, ascending bool) error {
	if field == "" {
		return nil
	}
	key, ok := f[field]
	if !ok {
		return model.NewValidationError(fmt.Sprintf("Cannot sort by unknown field %q.", field))
	}
	SortStable(items, key, ascending)
	return nil
}

func stringKey(s string) (any, bool) { return s, s != "" }

// WheelWordFields are the sortable fields of a wheel word
var WheelWordFields = Fields[model.WheelWord]{
	"word":       func(w model.WheelWord) (any, bool) { return stringKey(w.Word) },
	"categoryID": func(w model.WheelWord) (any, bool) { return stringKey(w.CategoryID) },
	"approved":   func(w model.WheelWord) (any, bool) { return w.Approved, true },
}

// WheelCategoryFields are the sortable fields of a wheel category
var WheelCategoryFields = Fields[model.WheelCategory]{
	"name": func(c model.WheelCategory) (any, bool) { return stringKey(c.Name) },
}

// MissingNameFields are the sortable fields of a missing name
var MissingNameFields = Fields[model.MissingName]{
	"name":  func(m model.MissingName) (any, bool) { return stringKey(m.Name) },
	"team":  func(m model.MissingName) (any, bool) { return stringKey(m.Team) },
	"sport": func(m model.MissingName) (any, bool) { return m.Sport, m.Sport != 0 },
	"count": func(m model.MissingName) (any, bool) { return m.Count, m.Count != 0 },
}

// AlternateNameFields are the sortable fields of an alternate name
var AlternateNameFields = Fields[model.AlternateName]{
	"contestName":  func(a model.AlternateName) (any, bool) { return stringKey(a.ContestName) },
	"externalName": func(a model.AlternateName) (any, bool) { return stringKey(a.ExternalName) },
	"lastUsedDate": func(a model.AlternateName) (any, bool) { return a.LastUsedDate, !a.LastUsedDate.IsZero() },
}
