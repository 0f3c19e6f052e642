package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) Upsert(ctx context.Context, record *domain.JournalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepo) GetByDate(ctx context.Context, userName string, date time.Time) (*domain.JournalRecord, error) {
	args := m.Called(ctx, userName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalRecord), args.Error(1)
}

func (m *MockRecordRepo) DeleteByDate(ctx context.Context, userName string, date time.Time) error {
	args := m.Called(ctx, userName, date)
	return args.Error(0)
}

func (m *MockRecordRepo) ListByUser(ctx context.Context, userName string) ([]*domain.JournalRecord, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalRecord), args.Error(1)
}

func (m *MockRecordRepo) ListByUserInRange(ctx context.Context, userName string, from, to time.Time) ([]*domain.JournalRecord, error) {
	args := m.Called(ctx, userName, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalRecord), args.Error(1)
}

func (m *MockRecordRepo) ListAllInRange(ctx context.Context, from, to time.Time) ([]*domain.JournalRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalRecord), args.Error(1)
}

type MockStreakCache struct {
	mock.Mock
}

func (m *MockStreakCache) Get(ctx context.Context, userName string) (domain.StreakResult, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.StreakResult), args.Error(1)
}

func (m *MockStreakCache) Set(ctx context.Context, userName string, streaks domain.StreakResult) error {
	args := m.Called(ctx, userName, streaks)
	return args.Error(0)
}
