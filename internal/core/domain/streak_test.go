package domain_test

import (
	"testing"
	"time"

	"github.com/letstracker/journal-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStreaks(t *testing.T) {
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	daysAgo := func(n int) time.Time {
		return today.AddDate(0, 0, -n)
	}
	rec := func(date time.Time, tilawah, matsurat bool) *domain.JournalRecord {
		return domain.NewJournalRecord("Umam", date, domain.Completions{
			"Tilawah":  tilawah,
			"Matsurat": matsurat,
		}, "")
	}

	dailyHabits := []string{"Tilawah", "Matsurat"}

	tests := []struct {
		name    string
		records []*domain.JournalRecord
		want    domain.StreakResult
	}{
		{
			name:    "Empty history yields zero for every daily habit",
			records: nil,
			want:    domain.StreakResult{"Tilawah": 0, "Matsurat": 0},
		},
		{
			name:    "Single entry today",
			records: []*domain.JournalRecord{rec(today, true, false)},
			want:    domain.StreakResult{"Tilawah": 1, "Matsurat": 0},
		},
		{
			name:    "Last entry yesterday keeps the streak alive",
			records: []*domain.JournalRecord{rec(daysAgo(1), true, true)},
			want:    domain.StreakResult{"Tilawah": 1, "Matsurat": 1},
		},
		{
			name: "Stale log (last entry 2 days ago) zeroes everything",
			records: []*domain.JournalRecord{
				rec(daysAgo(2), true, true),
				rec(daysAgo(3), true, true),
			},
			want: domain.StreakResult{"Tilawah": 0, "Matsurat": 0},
		},
		{
			name: "Unbroken run counts every consecutive day",
			records: []*domain.JournalRecord{
				rec(today, true, true),
				rec(daysAgo(1), true, false),
				rec(daysAgo(2), true, true),
			},
			want: domain.StreakResult{"Tilawah": 3, "Matsurat": 1},
		},
		{
			name: "Date gap stops the walk (D, D-1, D-3 gives 2 not 3)",
			records: []*domain.JournalRecord{
				rec(today, true, true),
				rec(daysAgo(1), true, true),
				rec(daysAgo(3), true, true),
			},
			want: domain.StreakResult{"Tilawah": 2, "Matsurat": 2},
		},
		{
			name: "Most recent entry false means zero regardless of history",
			records: []*domain.JournalRecord{
				rec(today, false, true),
				rec(daysAgo(1), true, true),
				rec(daysAgo(2), true, true),
			},
			want: domain.StreakResult{"Tilawah": 0, "Matsurat": 3},
		},
		{
			name: "Unsorted input is sorted internally",
			records: []*domain.JournalRecord{
				rec(daysAgo(2), true, true),
				rec(today, true, true),
				rec(daysAgo(1), true, true),
			},
			want: domain.StreakResult{"Tilawah": 3, "Matsurat": 3},
		},
		{
			name: "Habit missing from a record counts as not completed",
			records: []*domain.JournalRecord{
				domain.NewJournalRecord("Umam", today, domain.Completions{"Tilawah": true}, ""),
				rec(daysAgo(1), true, true),
			},
			want: domain.StreakResult{"Tilawah": 2, "Matsurat": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Streaks(tt.records, dailyHabits, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreaks_NoDailyHabits(t *testing.T) {
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	records := []*domain.JournalRecord{
		domain.NewJournalRecord("Umam", today, domain.Completions{"Qiyamulail": true}, ""),
	}

	got := domain.Streaks(records, nil, today)
	assert.Empty(t, got)
}
