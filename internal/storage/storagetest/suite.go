// Package storagetest holds the behavioural suite every storage driver must pass
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
	"github.com/mcubed/cubed/internal/testutil"
)

// DriverSuite runs the typed collection contract against a driver. Embedders set NewDriver.
type DriverSuite struct {
	suite.Suite

	NewDriver func() storage.Driver

	driver storage.Driver
	cols   *storage.Collections
	ctx    context.Context
}

func (s *DriverSuite) SetupTest() {
	s.driver = s.NewDriver()
	s.cols = storage.NewCollections(s.driver, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *DriverSuite) TearDownTest() {
	if s.driver != nil {
		_ = s.driver.Close(s.ctx)
	}
}

func (s *DriverSuite) TestInsertAssignsID() {
	cat, err := s.cols.WheelCategories.InsertSingle(s.ctx, model.WheelCategory{ID: "ignored", Name: "Animals"})
	s.Require().NoError(err)
	s.NotEmpty(cat.ID)
	s.NotEqual("ignored", cat.ID)
	s.Equal("Animals", cat.Name)

	got, err := s.cols.WheelCategories.GetSingle(s.ctx, cat.ID)
	s.Require().NoError(err)
	s.Equal(cat, got)
}

func (s *DriverSuite) TestGetSingleNotFound() {
	_, err := s.cols.WheelCategories.GetSingle(s.ctx, storage.NewID())
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *DriverSuite) TestGetAllEmpty() {
	all, err := s.cols.AlternateNames.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *DriverSuite) TestGetAllFilteredMatchesNonEmptyFields() {
	_, err := s.cols.WheelWords.InsertMany(s.ctx, []model.WheelWord{
		{CategoryID: "c1", Word: "cat"},
		{CategoryID: "c1", Word: "dog", Approved: true},
		{CategoryID: "c2", Word: "cat"},
	})
	s.Require().NoError(err)

	inC1, err := s.cols.WheelWords.GetAllFiltered(s.ctx, model.WheelWord{CategoryID: "c1"})
	s.Require().NoError(err)
	s.Len(inC1, 2)

	cats, err := s.cols.WheelWords.GetAllFiltered(s.ctx, model.WheelWord{Word: "cat"})
	s.Require().NoError(err)
	s.Len(cats, 2)

	approved, err := s.cols.WheelWords.GetAllFiltered(s.ctx, model.WheelWord{Approved: true})
	s.Require().NoError(err)
	s.Require().Len(approved, 1)
	s.Equal("dog", approved[0].Word)

	// An empty filter matches everything
	all, err := s.cols.WheelWords.GetAllFiltered(s.ctx, model.WheelWord{})
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *DriverSuite) TestGetSingleFiltered() {
	_, err := s.cols.MissingNames.InsertSingle(s.ctx, model.MissingName{Name: "J. Smith", Team: "NYY", Sport: model.SportMLB, Count: 2})
	s.Require().NoError(err)

	got, err := s.cols.MissingNames.GetSingleFiltered(s.ctx, model.MissingName{Name: "J. Smith", Team: "NYY", Sport: model.SportMLB})
	s.Require().NoError(err)
	s.Equal(2, got.Count)

	_, err = s.cols.MissingNames.GetSingleFiltered(s.ctx, model.MissingName{Name: "J. Smith", Sport: model.SportNBA})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *DriverSuite) TestUpdateMergesNonEmptyFields() {
	name, err := s.cols.AlternateNames.InsertSingle(s.ctx, model.AlternateName{ContestName: "Mike Trout", ExternalName: "M. Trout"})
	s.Require().NoError(err)

	used := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	err = s.cols.AlternateNames.UpdateSingle(s.ctx, model.AlternateName{ID: name.ID, LastUsedDate: used})
	s.Require().NoError(err)

	got, err := s.cols.AlternateNames.GetSingle(s.ctx, name.ID)
	s.Require().NoError(err)
	s.Equal("Mike Trout", got.ContestName)
	s.Equal("M. Trout", got.ExternalName)
	s.True(used.Equal(got.LastUsedDate))
}

func (s *DriverSuite) TestUpdateRequiresID() {
	err := s.cols.WheelCategories.UpdateSingle(s.ctx, model.WheelCategory{Name: "x"})
	s.ErrorIs(err, model.ErrMissingID)
}

func (s *DriverSuite) TestUpdateMissingIsNoop() {
	err := s.cols.WheelCategories.UpdateSingle(s.ctx, model.WheelCategory{ID: storage.NewID(), Name: "x"})
	s.Require().NoError(err)

	all, err := s.cols.WheelCategories.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *DriverSuite) TestDeleteSingle() {
	cat, err := s.cols.WheelCategories.InsertSingle(s.ctx, model.WheelCategory{Name: "Animals"})
	s.Require().NoError(err)

	s.Require().NoError(s.cols.WheelCategories.DeleteSingle(s.ctx, cat.ID))
	_, err = s.cols.WheelCategories.GetSingle(s.ctx, cat.ID)
	s.ErrorIs(err, model.ErrNotFound)

	// Deleting again is a no-op
	s.NoError(s.cols.WheelCategories.DeleteSingle(s.ctx, cat.ID))
}

func (s *DriverSuite) TestDeleteAll() {
	_, err := s.cols.MissingNames.InsertMany(s.ctx, []model.MissingName{{Name: "a", Count: 1}, {Name: "b", Count: 1}})
	s.Require().NoError(err)
	_, err = s.cols.WheelCategories.InsertSingle(s.ctx, model.WheelCategory{Name: "kept"})
	s.Require().NoError(err)

	s.Require().NoError(s.cols.MissingNames.DeleteAll(s.ctx))

	missing, err := s.cols.MissingNames.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(missing)

	cats, err := s.cols.WheelCategories.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(cats, 1)

	// Dropping an absent collection succeeds
	s.NoError(s.cols.MissingNames.DeleteAll(s.ctx))
}

func (s *DriverSuite) TestCollectionsAreIsolated() {
	_, err := s.cols.WheelCategories.InsertSingle(s.ctx, model.WheelCategory{Name: "Animals"})
	s.Require().NoError(err)

	users, err := s.cols.Users.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *DriverSuite) TestPing() {
	s.NoError(s.driver.Ping(s.ctx))
}
