//go:build integration

package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"orbita/internal/scoping"
	"orbita/pkg/domain"
	"orbita/pkg/platform/sentinel"
	"orbita/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *PostgresStore
	pg    *containers.PostgresContainer
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = NewPostgresStore(s.pg.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "assessments"))
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) seed() *Assessment {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &Assessment{
		ID:           domain.NewAssessmentID(),
		OperatorName: "Helio Dynamics",
		Profile:      euProfile(),
		Answers:      inScopeAnswers(),
		Verdict: &scoping.Verdict{
			InScope:              true,
			ClassificationInputs: map[string]string{scoping.InputPrimaryActivity: "satellite_operation"},
			Evaluated:            []string{"operates_space_assets", "defense_only", "union_connection"},
		},
		Statuses:  make(map[domain.RequirementID]StatusRecord),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	a := s.seed()
	s.Require().NoError(s.store.Create(s.ctx, a))

	got, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a.ID, got.ID)
	s.Equal(a.OperatorName, got.OperatorName)
	s.Equal(a.Profile, got.Profile)
	s.Equal(a.Answers, got.Answers)
	s.Require().NotNil(got.Verdict)
	s.True(got.Verdict.InScope)
	s.Equal(a.Verdict.Evaluated, got.Verdict.Evaluated)
	s.Empty(got.Statuses)
}

func (s *PostgresStoreSuite) TestCreateDuplicate() {
	a := s.seed()
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.ErrorIs(s.store.Create(s.ctx, a), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, domain.NewAssessmentID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestNilVerdictSurvives() {
	a := s.seed()
	a.Answers = nil
	a.Verdict = nil
	s.Require().NoError(s.store.Create(s.ctx, a))

	got, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Nil(got.Verdict)
	s.Nil(got.Answers)
}

func (s *PostgresStoreSuite) TestSetStatus() {
	a := s.seed()
	s.Require().NoError(s.store.Create(s.ctx, a))

	first := StatusRecord{
		Status:    domain.StatusPartial,
		Note:      "insurance renewal pending",
		UpdatedBy: "auditor@helio.example",
		UpdatedAt: time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.SetStatus(s.ctx, a.ID, "eusa-auth-04", first))

	// Upsert: a second write for the same requirement replaces the record.
	second := first
	second.Status = domain.StatusCompliant
	second.Note = "policy issued"
	second.UpdatedAt = first.UpdatedAt.Add(48 * time.Hour)
	s.Require().NoError(s.store.SetStatus(s.ctx, a.ID, "eusa-auth-04", second))

	got, err := s.store.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Statuses, 1)
	rec := got.Statuses["eusa-auth-04"]
	s.Equal(domain.StatusCompliant, rec.Status)
	s.Equal("policy issued", rec.Note)
	s.Equal(second.UpdatedAt, rec.UpdatedAt.UTC())
	s.Equal(second.UpdatedAt, got.UpdatedAt.UTC())
}

func (s *PostgresStoreSuite) TestSetStatusMissingAssessment() {
	err := s.store.SetStatus(s.ctx, domain.NewAssessmentID(), "eusa-auth-01", StatusRecord{
		Status:    domain.StatusCompliant,
		UpdatedAt: time.Now().UTC(),
	})
	s.ErrorIs(err, sentinel.ErrNotFound)
}
