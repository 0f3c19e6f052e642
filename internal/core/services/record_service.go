package services

import (
	"context"
	"fmt"
	"time"

	"github.com/letstracker/journal-engine/internal/core/domain"
	"github.com/letstracker/journal-engine/internal/core/workers"
)

type RecordService struct {
	repo    domain.RecordRepository
	catalog *domain.Catalog
	worker  *workers.StreakWorker
}

// NewRecordService builds the journal write/read service. The worker may be
// nil; streaks are then recomputed lazily on read instead of eagerly.
func NewRecordService(repo domain.RecordRepository, catalog *domain.Catalog, worker *workers.StreakWorker) *RecordService {
	return &RecordService{
		repo:    repo,
		catalog: catalog,
		worker:  worker,
	}
}

type UpsertRecordInput struct {
	UserName    string
	Date        time.Time
	Completions domain.Completions
	Note        string
}

// Upsert saves one user's journal for one date, replacing any previous entry
// for that day. Completions must reference habits the catalog defines.
func (s *RecordService) Upsert(ctx context.Context, input UpsertRecordInput) (*domain.JournalRecord, error) {
	for habit := range input.Completions {
		if _, ok := s.catalog.Get(habit); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownHabit, habit)
		}
	}

	record := domain.NewJournalRecord(input.UserName, input.Date, input.Completions, input.Note)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	if s.worker != nil {
		s.worker.Enqueue(record.UserName)
	}

	return record, nil
}

func (s *RecordService) GetByDate(ctx context.Context, userName string, date time.Time) (*domain.JournalRecord, error) {
	return s.repo.GetByDate(ctx, userName, domain.DateOnly(date))
}

// List returns a user's records with dates inside [from, to], newest first.
func (s *RecordService) List(ctx context.Context, userName string, from, to time.Time) ([]*domain.JournalRecord, error) {
	if domain.DateOnly(from).After(domain.DateOnly(to)) {
		return nil, domain.ErrInvalidRange
	}
	return s.repo.ListByUserInRange(ctx, userName, domain.DateOnly(from), domain.DateOnly(to))
}

func (s *RecordService) Delete(ctx context.Context, userName string, date time.Time) error {
	if err := s.repo.DeleteByDate(ctx, userName, domain.DateOnly(date)); err != nil {
		return err
	}

	if s.worker != nil {
		s.worker.Enqueue(userName)
	}

	return nil
}
