package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"orbita/pkg/domain"
)

// PostgresStore persists the audit trail in the audit_events table.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres opens a database/sql handle for the audit trail.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit database: %w", err)
	}
	return db, nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append inserts one event. Idempotent via ON CONFLICT DO NOTHING so retried
// emissions do not duplicate the trail.
func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	query := `
		INSERT INTO audit_events (
			id, category, timestamp, assessment_id, framework,
			action, actor, detail, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	var framework *string
	if event.Framework != "" {
		f := event.Framework.String()
		framework = &f
	}

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		string(event.Action.Category()),
		event.Timestamp,
		uuid.UUID(event.AssessmentID),
		framework,
		string(event.Action),
		event.Actor,
		event.Detail,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByAssessment(ctx context.Context, id domain.AssessmentID) ([]Event, error) {
	query := `
		SELECT id, timestamp, assessment_id, framework, action, actor, detail, request_id
		FROM audit_events
		WHERE assessment_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	query := `
		SELECT id, timestamp, assessment_id, framework, action, actor, detail, request_id
		FROM audit_events
		ORDER BY timestamp DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event

	for rows.Next() {
		var (
			event        Event
			assessmentID uuid.UUID
			framework    *string
		)

		err := rows.Scan(
			&event.ID,
			&event.Timestamp,
			&assessmentID,
			&framework,
			&event.Action,
			&event.Actor,
			&event.Detail,
			&event.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}

		event.AssessmentID = domain.AssessmentID(assessmentID)
		if framework != nil {
			event.Framework = domain.Framework(*framework)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}

	return events, nil
}
