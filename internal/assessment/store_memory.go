package assessment

import (
	"context"
	"sync"

	"orbita/pkg/domain"
	"orbita/pkg/platform/sentinel"
)

// InMemoryStore keeps assessments in process memory. Suitable for tests and
// single-node deployments.
type InMemoryStore struct {
	mu          sync.RWMutex
	assessments map[domain.AssessmentID]*Assessment
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{assessments: make(map[domain.AssessmentID]*Assessment)}
}

func (s *InMemoryStore) Create(_ context.Context, a *Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assessments[a.ID]; exists {
		return sentinel.ErrConflict
	}
	s.assessments[a.ID] = a.Clone()
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id domain.AssessmentID) (*Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return a.Clone(), nil
}

func (s *InMemoryStore) SetStatus(_ context.Context, id domain.AssessmentID, reqID domain.RequirementID, rec StatusRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if a.Statuses == nil {
		a.Statuses = make(map[domain.RequirementID]StatusRecord)
	}
	a.Statuses[reqID] = rec
	a.UpdatedAt = rec.UpdatedAt
	return nil
}
