package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbita/internal/scoping"
	"orbita/pkg/domain"
	"orbita/pkg/platform/sentinel"
)

// PostgresStore persists assessments in two tables: the aggregate row with
// the profile and verdict as jsonb, and one row per requirement status.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect opens a pgx pool and verifies connectivity.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, a *Assessment) error {
	profile, err := json.Marshal(a.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	var verdict []byte
	if a.Verdict != nil {
		if verdict, err = json.Marshal(a.Verdict); err != nil {
			return fmt.Errorf("marshal verdict: %w", err)
		}
	}

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO assessments (id, operator_name, profile, answers, verdict, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`, uuid.UUID(a.ID), a.OperatorName, profile, answers, verdict, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id domain.AssessmentID) (*Assessment, error) {
	var (
		a       Assessment
		rawID   uuid.UUID
		profile []byte
		answers []byte
		verdict []byte
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, operator_name, profile, answers, verdict, created_at, updated_at
		FROM assessments
		WHERE id = $1
	`, uuid.UUID(id)).Scan(&rawID, &a.OperatorName, &profile, &answers, &verdict, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query assessment: %w", err)
	}

	a.ID = domain.AssessmentID(rawID)
	if err := json.Unmarshal(profile, &a.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &a.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
	}
	if len(verdict) > 0 {
		a.Verdict = &scoping.Verdict{}
		if err := json.Unmarshal(verdict, a.Verdict); err != nil {
			return nil, fmt.Errorf("unmarshal verdict: %w", err)
		}
	}

	a.Statuses, err = s.loadStatuses(ctx, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PostgresStore) loadStatuses(ctx context.Context, id domain.AssessmentID) (map[domain.RequirementID]StatusRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT requirement_id, status, note, updated_by, updated_at
		FROM assessment_statuses
		WHERE assessment_id = $1
	`, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("query statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[domain.RequirementID]StatusRecord)
	for rows.Next() {
		var (
			reqID  string
			status string
			rec    StatusRecord
		)
		if err := rows.Scan(&reqID, &status, &rec.Note, &rec.UpdatedBy, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		rec.Status = domain.ComplianceStatus(status)
		statuses[domain.RequirementID(reqID)] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statuses: %w", err)
	}
	return statuses, nil
}

func (s *PostgresStore) SetStatus(ctx context.Context, id domain.AssessmentID, reqID domain.RequirementID, rec StatusRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT true FROM assessments WHERE id = $1 FOR UPDATE`, uuid.UUID(id)).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock assessment: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO assessment_statuses (assessment_id, requirement_id, status, note, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (assessment_id, requirement_id) DO UPDATE
		SET status = EXCLUDED.status,
		    note = EXCLUDED.note,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = EXCLUDED.updated_at
	`, uuid.UUID(id), string(reqID), string(rec.Status), rec.Note, rec.UpdatedBy, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE assessments SET updated_at = $2 WHERE id = $1`, uuid.UUID(id), rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("touch assessment: %w", err)
	}

	return tx.Commit(ctx)
}
