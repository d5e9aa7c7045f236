package lineup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcubed/cubed/internal/dependencies/mocks"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
	"github.com/mcubed/cubed/internal/storage/memory"
	"github.com/mcubed/cubed/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	cols       *storage.Collections
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.cols = storage.NewCollections(memory.New(), testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 4, 1, 18, 30, 0, 0, time.UTC))
	s.controller = NewController(s.cols.AlternateNames, s.cols.MissingNames, s.clock)
	s.ctx = context.Background()
}

func (s *ControllerSuite) createMapping(contest, external string) model.AlternateName {
	item, err := s.controller.SaveAlternateName(s.ctx, model.AlternateName{ContestName: contest, ExternalName: external})
	s.Require().NoError(err)
	return item
}

// Alternate name tests

func (s *ControllerSuite) TestSaveAlternateNameCreates() {
	item := s.createMapping("Mike Trout", "M. Trout")
	s.NotEmpty(item.ID)

	all, err := s.controller.ListAlternateNames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Mike Trout", all[0].ContestName)
}

func (s *ControllerSuite) TestSaveAlternateNameWithOnlyExternalName() {
	item, err := s.controller.SaveAlternateName(s.ctx, model.AlternateName{ExternalName: "M. Trout"})
	s.Require().NoError(err)
	s.NotEmpty(item.ID)

	stored, err := s.controller.GetAlternateName(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal("M. Trout", stored.ExternalName)
	s.Empty(stored.ContestName)
}

func (s *ControllerSuite) TestSaveAlternateNameRejectsEmptyCreate() {
	_, err := s.controller.SaveAlternateName(s.ctx, model.AlternateName{ContestName: "  "})
	var verr *model.ValidationError
	s.ErrorAs(err, &verr)
}

func (s *ControllerSuite) TestSaveAlternateNameUpdatesOnlyGivenFields() {
	item := s.createMapping("Mike Trout", "M. Trout")

	updated, err := s.controller.SaveAlternateName(s.ctx, model.AlternateName{ID: item.ID, ExternalName: "Michael Trout"})
	s.Require().NoError(err)
	s.Equal(item.ID, updated.ID)
	s.Equal("Mike Trout", updated.ContestName)
	s.Equal("Michael Trout", updated.ExternalName)
}

func (s *ControllerSuite) TestSaveAlternateNameUnknownID() {
	_, err := s.controller.SaveAlternateName(s.ctx, model.AlternateName{ID: storage.NewID(), ContestName: "x"})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *ControllerSuite) TestDeleteAlternateNameIsIdempotent() {
	item := s.createMapping("Mike Trout", "M. Trout")

	s.Require().NoError(s.controller.DeleteAlternateName(s.ctx, item.ID))
	_, err := s.controller.GetAlternateName(s.ctx, item.ID)
	s.ErrorIs(err, model.ErrNotFound)

	s.NoError(s.controller.DeleteAlternateName(s.ctx, item.ID))
}

// ResolveName tests

func (s *ControllerSuite) TestResolveNameStampsLastUse() {
	item := s.createMapping("Mike Trout", "M. Trout")

	resolved, err := s.controller.ResolveName(s.ctx, "M. Trout", "LAA", model.SportMLB)
	s.Require().NoError(err)
	s.Equal("Mike Trout", resolved.ContestName)
	s.True(s.clock.Now().Equal(resolved.LastUsedDate))

	stored, err := s.controller.GetAlternateName(s.ctx, item.ID)
	s.Require().NoError(err)
	s.True(s.clock.Now().Equal(stored.LastUsedDate))
	s.Equal("M. Trout", stored.ExternalName)
}

func (s *ControllerSuite) TestResolveNameMissReportsName() {
	_, err := s.controller.ResolveName(s.ctx, "J. Doe", "NYY", model.SportMLB)
	s.ErrorIs(err, model.ErrNotFound)

	_, err = s.controller.ResolveName(s.ctx, "J. Doe", "NYY", model.SportMLB)
	s.ErrorIs(err, model.ErrNotFound)

	missing, err := s.controller.ListMissingNames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(missing, 1)
	s.Equal("J. Doe", missing[0].Name)
	s.Equal("NYY", missing[0].Team)
	s.Equal(model.SportMLB, missing[0].Sport)
	s.Equal(2, missing[0].Count)
}

func (s *ControllerSuite) TestResolveNameRequiresName() {
	_, err := s.controller.ResolveName(s.ctx, "  ", "", 0)
	var verr *model.ValidationError
	s.ErrorAs(err, &verr)
}

// Missing name tests

func (s *ControllerSuite) TestReportMissingNameSeparatesSports() {
	_, err := s.controller.ReportMissingName(s.ctx, "J. Smith", "BOS", model.SportMLB)
	s.Require().NoError(err)
	_, err = s.controller.ReportMissingName(s.ctx, "J. Smith", "BOS", model.SportNBA)
	s.Require().NoError(err)

	missing, err := s.controller.ListMissingNames(s.ctx)
	s.Require().NoError(err)
	s.Len(missing, 2)
}

func (s *ControllerSuite) TestReportMissingNameRejectsUnknownSport() {
	_, err := s.controller.ReportMissingName(s.ctx, "J. Smith", "BOS", model.Sport(42))
	var verr *model.ValidationError
	s.ErrorAs(err, &verr)
}

func (s *ControllerSuite) TestDeleteMissingNamesSingle() {
	a, _ := s.controller.ReportMissingName(s.ctx, "A", "", model.SportNFL)
	_, _ = s.controller.ReportMissingName(s.ctx, "B", "", model.SportNFL)

	s.Require().NoError(s.controller.DeleteMissingNames(s.ctx, a.ID))

	missing, err := s.controller.ListMissingNames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(missing, 1)
	s.Equal("B", missing[0].Name)
}

func (s *ControllerSuite) TestDeleteMissingNamesAll() {
	_, _ = s.controller.ReportMissingName(s.ctx, "A", "", model.SportNFL)
	_, _ = s.controller.ReportMissingName(s.ctx, "B", "", model.SportNFL)

	s.Require().NoError(s.controller.DeleteMissingNames(s.ctx, ""))

	missing, err := s.controller.ListMissingNames(s.ctx)
	s.Require().NoError(err)
	s.Empty(missing)
}
