package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"orbita/pkg/domain"
	"orbita/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newAssessment() *Assessment {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &Assessment{
		ID:           domain.NewAssessmentID(),
		OperatorName: "Helio Dynamics",
		Profile:      euProfile(),
		Statuses:     make(map[domain.RequirementID]StatusRecord),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *MemoryStoreSuite) TestCreateAndGet() {
	a := s.newAssessment()
	s.Require().NoError(s.store.Create(s.ctx, a))

	got, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a.OperatorName, got.OperatorName)
	s.Equal(a.CreatedAt, got.CreatedAt)
}

func (s *MemoryStoreSuite) TestCreateDuplicate() {
	a := s.newAssessment()
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.ErrorIs(s.store.Create(s.ctx, a), sentinel.ErrConflict)
}

func (s *MemoryStoreSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, domain.NewAssessmentID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestGetReturnsCopy() {
	a := s.newAssessment()
	s.Require().NoError(s.store.Create(s.ctx, a))

	got, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	got.Statuses["eusa-auth-01"] = StatusRecord{Status: domain.StatusCompliant}
	got.Profile.Jurisdictions = nil

	again, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(again.Statuses)
	s.NotEmpty(again.Profile.Jurisdictions)
}

func (s *MemoryStoreSuite) TestSetStatus() {
	a := s.newAssessment()
	s.Require().NoError(s.store.Create(s.ctx, a))

	updated := time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC)
	rec := StatusRecord{
		Status:    domain.StatusPartial,
		Note:      "insurance renewal pending",
		UpdatedBy: "auditor@helio.example",
		UpdatedAt: updated,
	}
	s.Require().NoError(s.store.SetStatus(s.ctx, a.ID, "eusa-auth-04", rec))

	got, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(rec, got.Statuses["eusa-auth-04"])
	s.Equal(updated, got.UpdatedAt)
}

func (s *MemoryStoreSuite) TestSetStatusMissingAssessment() {
	err := s.store.SetStatus(s.ctx, domain.NewAssessmentID(), "eusa-auth-01", StatusRecord{Status: domain.StatusCompliant})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestStatusOfDefaults() {
	a := s.newAssessment()
	s.Equal(domain.StatusNotStarted, a.StatusOf("eusa-auth-01"))

	a.Statuses["eusa-auth-01"] = StatusRecord{Status: domain.StatusPartial}
	s.Equal(domain.StatusPartial, a.StatusOf("eusa-auth-01"))
}

func (s *MemoryStoreSuite) TestCloneNil() {
	var a *Assessment
	s.Nil(a.Clone())
}
