package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/letstracker/journal-engine/internal/core/domain"
	"github.com/letstracker/journal-engine/internal/core/services"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog([]domain.HabitDefinition{
		{Name: "Prayer", Cadence: domain.CadenceDaily},
		{Name: "Sport", Cadence: domain.CadenceWeekly, Target: 3},
		{Name: "Fasting", Cadence: domain.CadenceMonthly, Target: 3},
	})
	require.NoError(t, err)
	return c
}

func record(user string, date time.Time, done domain.Completions) *domain.JournalRecord {
	return domain.NewJournalRecord(user, date, done, "")
}

func findProgress(habits []domain.HabitProgress, name string) *domain.HabitProgress {
	for _, h := range habits {
		if h.Habit == name {
			return &h
		}
	}
	return nil
}

func TestAggregate(t *testing.T) {
	catalog := testCatalog(t)

	// 2025-03-12 is a Wednesday; the week runs 2025-03-10 through 2025-03-16.
	wednesday := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("Success: Week view with flat daily target of 7", func(t *testing.T) {
		window := domain.WeekToDate(wednesday)
		records := []*domain.JournalRecord{
			record("Umam", monday, domain.Completions{"Prayer": true, "Sport": true}),
			record("Umam", tuesday, domain.Completions{"Prayer": true, "Sport": false}),
			record("Umam", wednesday, domain.Completions{"Prayer": false, "Sport": false}),
		}

		report := services.Aggregate(records, window, catalog, false)

		prayer := findProgress(report.Habits, "Prayer")
		require.NotNil(t, prayer)
		assert.Equal(t, 2, prayer.Actual)
		assert.Equal(t, 7.0, prayer.Target)
		assert.InDelta(t, 28.57, prayer.Percentage, 0.01)

		sport := findProgress(report.Habits, "Sport")
		require.NotNil(t, sport)
		assert.Equal(t, 1, sport.Actual)
		assert.Equal(t, 3.0, sport.Target)
		assert.InDelta(t, 33.33, sport.Percentage, 0.01)

		assert.Nil(t, findProgress(report.Habits, "Fasting"), "monthly habits stay out of week-scoped views")

		assert.Equal(t, 3, report.TotalActual)
		assert.Equal(t, 10.0, report.TotalTarget)
		assert.InDelta(t, 30.0, report.OverallRate, 0.01)
	})

	t.Run("Success: Month view pro-rates weekly and keeps monthly flat", func(t *testing.T) {
		day10 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		window := domain.MonthToDate(day10)

		report := services.Aggregate(nil, window, catalog, true)

		prayer := findProgress(report.Habits, "Prayer")
		require.NotNil(t, prayer)
		assert.Equal(t, 10.0, prayer.Target, "daily target is elapsed days, not the full month")

		sport := findProgress(report.Habits, "Sport")
		require.NotNil(t, sport)
		assert.InDelta(t, 3*10.0/7.0, sport.Target, 1e-9)

		fasting := findProgress(report.Habits, "Fasting")
		require.NotNil(t, fasting)
		assert.Equal(t, 3.0, fasting.Target, "monthly target is never pro-rated")
	})

	t.Run("Edge Case: Records outside the window are ignored", func(t *testing.T) {
		window := domain.WeekToDate(wednesday)
		records := []*domain.JournalRecord{
			record("Umam", monday.AddDate(0, 0, -1), domain.Completions{"Prayer": true}),
			record("Umam", monday, domain.Completions{"Prayer": true}),
		}

		report := services.Aggregate(records, window, catalog, false)

		prayer := findProgress(report.Habits, "Prayer")
		require.NotNil(t, prayer)
		assert.Equal(t, 1, prayer.Actual)
	})

	t.Run("Edge Case: Empty record set yields a well-formed zero report", func(t *testing.T) {
		window := domain.WeekToDate(wednesday)

		report := services.Aggregate(nil, window, catalog, false)

		assert.Equal(t, 0, report.TotalActual)
		assert.InDelta(t, 0.0, report.OverallRate, 1e-9)
		for _, h := range report.Habits {
			assert.InDelta(t, 0.0, h.Percentage, 1e-9)
			assert.False(t, h.Percentage != h.Percentage, "percentage must never be NaN")
		}
	})

	t.Run("Success: Deterministic on identical inputs", func(t *testing.T) {
		window := domain.WeekToDate(wednesday)
		records := []*domain.JournalRecord{
			record("Umam", monday, domain.Completions{"Prayer": true, "Sport": true}),
		}

		first := services.Aggregate(records, window, catalog, false)
		second := services.Aggregate(records, window, catalog, false)

		assert.Equal(t, first, second)
	})
}

func TestReportService(t *testing.T) {
	ctx := context.Background()
	catalog := testCatalog(t)
	wednesday := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("Success: WeekReport queries the nominal week window", func(t *testing.T) {
		repo := new(MockRecordRepo)
		svc := services.NewReportService(repo, catalog)

		weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		weekEnd := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
		records := []*domain.JournalRecord{
			record("Umam", wednesday, domain.Completions{"Prayer": true}),
		}
		repo.On("ListByUserInRange", ctx, "Umam", weekStart, weekEnd).Return(records, nil)

		report, err := svc.WeekReport(ctx, "Umam", wednesday)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", report.StartDate)
		assert.Equal(t, "2025-03-16", report.EndDate)
		repo.AssertExpectations(t)
	})

	t.Run("Success: MonthReport includes monthly habits", func(t *testing.T) {
		repo := new(MockRecordRepo)
		svc := services.NewReportService(repo, catalog)

		repo.On("ListByUserInRange", ctx, "Umam", mock.Anything, mock.Anything).Return([]*domain.JournalRecord{}, nil)

		report, err := svc.MonthReport(ctx, "Umam", wednesday)

		require.NoError(t, err)
		assert.NotNil(t, findProgress(report.Habits, "Fasting"))
	})

	t.Run("Fail: RangeReport rejects inverted ranges before touching storage", func(t *testing.T) {
		repo := new(MockRecordRepo)
		svc := services.NewReportService(repo, catalog)

		_, err := svc.RangeReport(ctx, "Umam", wednesday, wednesday.AddDate(0, 0, -5))

		assert.ErrorIs(t, err, domain.ErrInvalidRange)
		repo.AssertNotCalled(t, "ListByUserInRange")
	})

	t.Run("Fail: Repo error propagates", func(t *testing.T) {
		repo := new(MockRecordRepo)
		svc := services.NewReportService(repo, catalog)

		dbErr := errors.New("connection lost")
		repo.On("ListByUserInRange", ctx, "Umam", mock.Anything, mock.Anything).Return(nil, dbErr)

		_, err := svc.WeekReport(ctx, "Umam", wednesday)

		assert.ErrorIs(t, err, dbErr)
	})
}
