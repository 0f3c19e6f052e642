package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrRecordNotFound = errors.New("journal record not found")
)

type RecordRepository interface {
	// Upsert writes a record, replacing any existing record for the same
	// (user, date) pair. Implementations must make the write atomic so two
	// concurrent saves for the same day cannot interleave.
	Upsert(ctx context.Context, record *JournalRecord) error

	// GetByDate retrieves one user's record for a calendar day.
	GetByDate(ctx context.Context, userName string, date time.Time) (*JournalRecord, error)

	// DeleteByDate removes one user's record for a calendar day.
	DeleteByDate(ctx context.Context, userName string, date time.Time) error

	// ListByUser retrieves a user's full history, most recent first.
	// Streak computation walks this.
	ListByUser(ctx context.Context, userName string) ([]*JournalRecord, error)

	// ListByUserInRange retrieves a user's records with dates inside
	// [from, to], most recent first.
	ListByUserInRange(ctx context.Context, userName string, from, to time.Time) ([]*JournalRecord, error)

	// ListAllInRange retrieves every participant's records inside [from, to].
	// The leaderboard groups these by user.
	ListAllInRange(ctx context.Context, from, to time.Time) ([]*JournalRecord, error)
}
