package services

import (
	"context"
	"sort"
	"time"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

// Rank groups a multi-user record snapshot by participant, aggregates each
// group over the window, and orders the results by overall percentage
// descending. Ties are broken by user name ascending so equal scores always
// list in the same order. Users with no record inside the window do not
// appear; users whose every included target is zero rank at 0%.
func Rank(records []*domain.JournalRecord, window domain.PeriodWindow, catalog *domain.Catalog, includeMonthly bool) []domain.LeaderboardEntry {
	byUser := make(map[string][]*domain.JournalRecord)
	for _, r := range records {
		if window.Contains(r.EntryDate) {
			byUser[r.UserName] = append(byUser[r.UserName], r)
		}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(byUser))
	for user, group := range byUser {
		report := Aggregate(group, window, catalog, includeMonthly)
		entries = append(entries, domain.LeaderboardEntry{
			UserName:   user,
			Percentage: report.OverallRate,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].UserName < entries[j].UserName
	})

	return entries
}

type LeaderboardService struct {
	repo    domain.RecordRepository
	catalog *domain.Catalog
}

func NewLeaderboardService(repo domain.RecordRepository, catalog *domain.Catalog) *LeaderboardService {
	return &LeaderboardService{
		repo:    repo,
		catalog: catalog,
	}
}

// Week ranks every participant over the current nominal week. Monthly habits
// stay out of the weekly race.
func (s *LeaderboardService) Week(ctx context.Context, today time.Time) ([]domain.LeaderboardEntry, error) {
	window := domain.WeekToDate(today)

	records, err := s.repo.ListAllInRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return Rank(records, window, s.catalog, false), nil
}

// Month ranks every participant from the first of the month through today.
func (s *LeaderboardService) Month(ctx context.Context, today time.Time) ([]domain.LeaderboardEntry, error) {
	window := domain.MonthToDate(today)

	records, err := s.repo.ListAllInRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return Rank(records, window, s.catalog, true), nil
}
