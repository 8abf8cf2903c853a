package assessment

import (
	"context"

	"orbita/pkg/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store persists assessments. Implementations return sentinel errors from
// pkg/platform/sentinel; the service translates them into domain errors at
// the boundary.
type Store interface {
	Create(ctx context.Context, a *Assessment) error
	Get(ctx context.Context, id domain.AssessmentID) (*Assessment, error)
	SetStatus(ctx context.Context, id domain.AssessmentID, reqID domain.RequirementID, rec StatusRecord) error
}
