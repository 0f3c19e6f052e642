package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

type recordKey struct {
	user string
	date time.Time
}

// InMemoryRecordRepository keeps journals in a map keyed by (user, date). It
// backs tests and local runs without postgres.
type InMemoryRecordRepository struct {
	store map[recordKey]*domain.JournalRecord

	mu sync.RWMutex
}

func NewInMemoryRecordRepository() *InMemoryRecordRepository {
	return &InMemoryRecordRepository{
		store: make(map[recordKey]*domain.JournalRecord),
	}
}

func (r *InMemoryRecordRepository) key(userName string, date time.Time) recordKey {
	return recordKey{user: userName, date: domain.DateOnly(date)}
}

func (r *InMemoryRecordRepository) Upsert(ctx context.Context, record *domain.JournalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := r.key(record.UserName, record.EntryDate)
	if existing, ok := r.store[k]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else if record.ID == "" {
		record.ID = uuid.NewString()
	}

	clone := *record
	r.store[k] = &clone
	return nil
}

func (r *InMemoryRecordRepository) GetByDate(ctx context.Context, userName string, date time.Time) (*domain.JournalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.store[r.key(userName, date)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	clone := *record
	return &clone, nil
}

func (r *InMemoryRecordRepository) DeleteByDate(ctx context.Context, userName string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := r.key(userName, date)
	if _, ok := r.store[k]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.store, k)
	return nil
}

func (r *InMemoryRecordRepository) ListByUser(ctx context.Context, userName string) ([]*domain.JournalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*domain.JournalRecord
	for k, rec := range r.store {
		if k.user == userName {
			clone := *rec
			records = append(records, &clone)
		}
	}

	sortNewestFirst(records)
	return records, nil
}

func (r *InMemoryRecordRepository) ListByUserInRange(ctx context.Context, userName string, from, to time.Time) ([]*domain.JournalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := domain.DateOnly(from), domain.DateOnly(to)

	var records []*domain.JournalRecord
	for k, rec := range r.store {
		if k.user == userName && !k.date.Before(lo) && !k.date.After(hi) {
			clone := *rec
			records = append(records, &clone)
		}
	}

	sortNewestFirst(records)
	return records, nil
}

func (r *InMemoryRecordRepository) ListAllInRange(ctx context.Context, from, to time.Time) ([]*domain.JournalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := domain.DateOnly(from), domain.DateOnly(to)

	var records []*domain.JournalRecord
	for k, rec := range r.store {
		if !k.date.Before(lo) && !k.date.After(hi) {
			clone := *rec
			records = append(records, &clone)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].UserName != records[j].UserName {
			return records[i].UserName < records[j].UserName
		}
		return records[i].EntryDate.After(records[j].EntryDate)
	})
	return records, nil
}

func sortNewestFirst(records []*domain.JournalRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].EntryDate.After(records[j].EntryDate)
	})
}
