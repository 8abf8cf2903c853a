package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
)

type failingStore struct {
	InMemoryStore
	err error
}

func (s *failingStore) Append(ctx context.Context, event Event) error {
	if s.err != nil {
		return s.err
	}
	return s.InMemoryStore.Append(ctx, event)
}

type recordingSink struct {
	events []Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func TestPublisher_ComplianceFailClosed(t *testing.T) {
	assessmentID := domain.NewAssessmentID()

	t.Run("persisted synchronously with defaults filled", func(t *testing.T) {
		store := NewInMemoryStore()
		pub := NewPublisher(store)

		err := pub.Emit(context.Background(), Event{
			AssessmentID: assessmentID,
			Action:       ActionAssessmentCreated,
		})
		require.NoError(t, err)

		events, err := pub.List(context.Background(), assessmentID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, ActionAssessmentCreated, events[0].Action)
		assert.False(t, events[0].Timestamp.IsZero())
		assert.NotEqual(t, [16]byte{}, [16]byte(events[0].ID))
	})

	t.Run("store failure fails the emission", func(t *testing.T) {
		store := &failingStore{err: dErrors.New(dErrors.CodeInternal, "db down")}
		pub := NewPublisher(store)

		err := pub.Emit(context.Background(), Event{
			AssessmentID: assessmentID,
			Action:       ActionStatusUpdated,
		})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("sink failure does not fail the emission", func(t *testing.T) {
		store := NewInMemoryStore()
		sink := &recordingSink{err: dErrors.New(dErrors.CodeInternal, "brokers unreachable")}
		pub := NewPublisher(store, WithSink(sink))

		err := pub.Emit(context.Background(), Event{
			AssessmentID: assessmentID,
			Action:       ActionAssessmentOutOfScope,
		})
		require.NoError(t, err)

		events, _ := store.ListByAssessment(context.Background(), assessmentID)
		assert.Len(t, events, 1)
	})

	t.Run("sink receives persisted compliance events", func(t *testing.T) {
		store := NewInMemoryStore()
		sink := &recordingSink{}
		pub := NewPublisher(store, WithSink(sink))

		require.NoError(t, pub.Emit(context.Background(), Event{
			AssessmentID: assessmentID,
			Action:       ActionStatusUpdated,
		}))
		require.Len(t, sink.events, 1)
		assert.Equal(t, ActionStatusUpdated, sink.events[0].Action)
	})

	t.Run("missing action rejected", func(t *testing.T) {
		pub := NewPublisher(NewInMemoryStore())
		err := pub.Emit(context.Background(), Event{AssessmentID: assessmentID})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestPublisher_OperationalFailOpen(t *testing.T) {
	assessmentID := domain.NewAssessmentID()

	t.Run("routed to inbox without blocking", func(t *testing.T) {
		store := NewInMemoryStore()
		inbox := make(chan Event, 1)
		pub := NewPublisher(store, WithInbox(inbox))

		err := pub.Emit(context.Background(), Event{
			AssessmentID: assessmentID,
			Action:       ActionReportGenerated,
		})
		require.NoError(t, err)

		select {
		case event := <-inbox:
			assert.Equal(t, ActionReportGenerated, event.Action)
		default:
			t.Fatal("expected event in inbox")
		}

		events, _ := store.ListByAssessment(context.Background(), assessmentID)
		assert.Empty(t, events, "operational events go through the worker, not the store")
	})

	t.Run("full inbox drops instead of blocking", func(t *testing.T) {
		inbox := make(chan Event) // unbuffered, nobody reading
		pub := NewPublisher(NewInMemoryStore(), WithInbox(inbox))

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = pub.Emit(context.Background(), Event{
				AssessmentID: assessmentID,
				Action:       ActionReportGenerated,
			})
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("operational emit blocked on a full inbox")
		}
	})

	t.Run("store errors swallowed when no inbox configured", func(t *testing.T) {
		store := &failingStore{err: dErrors.New(dErrors.CodeInternal, "db down")}
		pub := NewPublisher(store)

		err := pub.Emit(context.Background(), Event{
			AssessmentID: assessmentID,
			Action:       ActionProfileAggregated,
		})
		assert.NoError(t, err)
	})
}

func TestWorker_DrainsInbox(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 16)
	worker := NewWorker(store, inbox, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	assessmentID := domain.NewAssessmentID()
	for i := 0; i < 5; i++ {
		inbox <- Event{AssessmentID: assessmentID, Action: ActionReportGenerated}
	}

	require.Eventually(t, func() bool {
		events, _ := store.ListByAssessment(context.Background(), assessmentID)
		return len(events) == 5
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorker_FlushesOnCancel(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 16)
	worker := NewWorker(store, inbox, nil)

	assessmentID := domain.NewAssessmentID()
	for i := 0; i < 3; i++ {
		inbox <- Event{AssessmentID: assessmentID, Action: ActionReportGenerated}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = worker.Run(ctx)

	events, err := store.ListByAssessment(context.Background(), assessmentID)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestActionCategory(t *testing.T) {
	assert.Equal(t, CategoryCompliance, ActionAssessmentCreated.Category())
	assert.Equal(t, CategoryCompliance, ActionStatusUpdated.Category())
	assert.Equal(t, CategoryCompliance, ActionAssessmentOutOfScope.Category())
	assert.Equal(t, CategoryOperations, ActionReportGenerated.Category())
	assert.Equal(t, CategoryOperations, Action("unmapped").Category())
}
