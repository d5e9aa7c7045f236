package storage

import (
	"io"
	"log/slog"

	"github.com/mcubed/cubed/internal/model"
)

// Collections binds every entity type to its collection once, so callers never look
// collections up by name
type Collections struct {
	Driver Driver

	AlternateNames  *Collection[model.AlternateName]
	MissingNames    *Collection[model.MissingName]
	Users           *Collection[model.User]
	WheelCategories *Collection[model.WheelCategory]
	WheelWords      *Collection[model.WheelWord]
}

// NewCollections creates the typed collections over a driver
func NewCollections(driver Driver, logger *slog.Logger) *Collections {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Collections{
		Driver:          driver,
		AlternateNames:  NewCollection[model.AlternateName](AlternateNamesCollection, driver, logger),
		MissingNames:    NewCollection[model.MissingName](MissingNamesCollection, driver, logger),
		Users:           NewCollection[model.User](UsersCollection, driver, logger),
		WheelCategories: NewCollection[model.WheelCategory](WheelCategoriesCollection, driver, logger),
		WheelWords:      NewCollection[model.WheelWord](WheelWordsCollection, driver, logger),
	}
}
