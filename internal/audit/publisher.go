package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
)

// Sink receives events after they are persisted, e.g. a Kafka topic.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Publisher routes events by category. Compliance events are written
// synchronously and fail closed: if persistence fails the calling operation
// must fail. Operational events are handed to the inbox and never block the
// caller.
type Publisher struct {
	store  Store
	sink   Sink
	inbox  chan<- Event
	logger *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithSink forwards persisted compliance events to an external sink.
func WithSink(sink Sink) Option {
	return func(p *Publisher) {
		p.sink = sink
	}
}

// WithInbox routes operational events to a worker-drained channel.
func WithInbox(inbox chan<- Event) Option {
	return func(p *Publisher) {
		p.inbox = inbox
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit records an event. The error is only meaningful for compliance events;
// operational emission never fails the caller.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Action == "" {
		return dErrors.New(dErrors.CodeValidation, "audit event requires an action")
	}

	if event.Action.Category() == CategoryCompliance {
		return p.emitCompliance(ctx, event)
	}
	p.emitOperations(ctx, event)
	return nil
}

func (p *Publisher) emitCompliance(ctx context.Context, event Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "compliance audit persistence failed",
			"action", event.Action,
			"assessment_id", event.AssessmentID,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "compliance audit persistence failed")
	}
	if p.sink != nil {
		if err := p.sink.Publish(ctx, event); err != nil {
			// Persisted locally; delivery to the sink is retried by replay,
			// not by failing the operation.
			p.logger.WarnContext(ctx, "audit sink publish failed",
				"action", event.Action,
				"error", err,
			)
		}
	}
	return nil
}

func (p *Publisher) emitOperations(ctx context.Context, event Event) {
	if p.inbox == nil {
		if err := p.store.Append(ctx, event); err != nil {
			p.logger.WarnContext(ctx, "operational audit write failed", "action", event.Action, "error", err)
		}
		return
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping operational event", "action", event.Action)
	}
}

// List returns the trail for one assessment.
func (p *Publisher) List(ctx context.Context, id domain.AssessmentID) ([]Event, error) {
	return p.store.ListByAssessment(ctx, id)
}
