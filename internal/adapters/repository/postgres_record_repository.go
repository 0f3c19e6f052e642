package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

const journalSchema = `
	CREATE TABLE IF NOT EXISTS journal_records (
		id          UUID PRIMARY KEY,
		user_name   TEXT NOT NULL,
		entry_date  DATE NOT NULL,
		completions JSONB NOT NULL DEFAULT '{}',
		note        TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL,
		UNIQUE (user_name, entry_date)
	)`

type PostgresRecordRepository struct {
	db *sqlx.DB
}

func NewPostgresRecordRepository(db *sqlx.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

// EnsureSchema creates the journal table when it does not exist yet.
func (r *PostgresRecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, journalSchema); err != nil {
		return fmt.Errorf("ensuring journal schema: %w", err)
	}
	return nil
}

// Upsert inserts the record or, when the (user, date) pair already has an
// entry, replaces its completions and note. The conflict target makes the
// one-record-per-day invariant atomic at the database level.
func (r *PostgresRecordRepository) Upsert(ctx context.Context, record *domain.JournalRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO journal_records (
			id, user_name, entry_date,
			completions, note,
			created_at, updated_at
		) VALUES (
			:id, :user_name, :entry_date,
			:completions, :note,
			:created_at, :updated_at
		)
		ON CONFLICT (user_name, entry_date) DO UPDATE
		SET completions = EXCLUDED.completions,
		    note        = EXCLUDED.note,
		    updated_at  = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidRecord, pqErr.Code.Name())
		}
		return err
	}
	return nil
}

func (r *PostgresRecordRepository) GetByDate(ctx context.Context, userName string, date time.Time) (*domain.JournalRecord, error) {
	var record domain.JournalRecord
	query := `SELECT * FROM journal_records WHERE user_name = $1 AND entry_date = $2`

	err := r.db.GetContext(ctx, &record, query, userName, domain.DateOnly(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRecordRepository) DeleteByDate(ctx context.Context, userName string, date time.Time) error {
	query := `DELETE FROM journal_records WHERE user_name = $1 AND entry_date = $2`

	result, err := r.db.ExecContext(ctx, query, userName, domain.DateOnly(date))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *PostgresRecordRepository) ListByUser(ctx context.Context, userName string) ([]*domain.JournalRecord, error) {
	records := []*domain.JournalRecord{}

	query := `
		SELECT * FROM journal_records
		WHERE user_name = $1
		ORDER BY entry_date DESC`

	if err := r.db.SelectContext(ctx, &records, query, userName); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRecordRepository) ListByUserInRange(ctx context.Context, userName string, from, to time.Time) ([]*domain.JournalRecord, error) {
	records := []*domain.JournalRecord{}

	query := `
		SELECT * FROM journal_records
		WHERE user_name = $1
		  AND entry_date >= $2
		  AND entry_date <= $3
		ORDER BY entry_date DESC`

	if err := r.db.SelectContext(ctx, &records, query, userName, domain.DateOnly(from), domain.DateOnly(to)); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRecordRepository) ListAllInRange(ctx context.Context, from, to time.Time) ([]*domain.JournalRecord, error) {
	records := []*domain.JournalRecord{}

	query := `
		SELECT * FROM journal_records
		WHERE entry_date >= $1
		  AND entry_date <= $2
		ORDER BY user_name ASC, entry_date DESC`

	if err := r.db.SelectContext(ctx, &records, query, domain.DateOnly(from), domain.DateOnly(to)); err != nil {
		return nil, err
	}
	return records, nil
}
