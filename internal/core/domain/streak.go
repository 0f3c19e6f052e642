package domain

import (
	"sort"
	"time"
)

// Streaks computes the current consecutive-day streak for each daily habit
// from one user's full record history. A streak counts unbroken daily
// completions ending at the most recent logged day; if the log has gone stale
// (no entry for today or yesterday), every streak is zero. Input order does
// not matter and the input is not modified.
func Streaks(records []*JournalRecord, dailyHabits []string, today time.Time) StreakResult {
	result := make(StreakResult, len(dailyHabits))
	for _, habit := range dailyHabits {
		result[habit] = 0
	}

	if len(records) == 0 {
		return result
	}

	sorted := make([]*JournalRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EntryDate.After(sorted[j].EntryDate)
	})

	lastDate := DateOnly(sorted[0].EntryDate)
	if lastDate.Before(DateOnly(today).AddDate(0, 0, -1)) {
		// Two or more days of silence break every streak.
		return result
	}

	for _, habit := range dailyHabits {
		if !sorted[0].Done(habit) {
			continue
		}

		streak := 0
		expected := lastDate
		for _, r := range sorted {
			if !DateOnly(r.EntryDate).Equal(expected) || !r.Done(habit) {
				break
			}
			streak++
			expected = expected.AddDate(0, 0, -1)
		}

		result[habit] = streak
	}

	return result
}
