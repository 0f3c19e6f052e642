package services

import (
	"context"
	"time"

	"github.com/letstracker/journal-engine/internal/core/domain"
)

// Aggregate derives a ProgressReport from a record snapshot, a window, and the
// habit catalog. With includeMonthly=false (week-scoped views) monthly habits
// are skipped entirely, since a single week cannot hold a meaningful monthly
// target. The function is pure: same inputs, same report, no side effects.
func Aggregate(records []*domain.JournalRecord, window domain.PeriodWindow, catalog *domain.Catalog, includeMonthly bool) domain.ProgressReport {
	report := domain.ProgressReport{
		StartDate: window.Start.Format("2006-01-02"),
		EndDate:   window.End.Format("2006-01-02"),
		Habits:    make([]domain.HabitProgress, 0, catalog.Len()),
	}

	var inWindow []*domain.JournalRecord
	for _, r := range records {
		if window.Contains(r.EntryDate) {
			inWindow = append(inWindow, r)
		}
	}

	for _, habit := range catalog.Habits() {
		if habit.Cadence == domain.CadenceMonthly && !includeMonthly {
			continue
		}

		actual := 0
		for _, r := range inWindow {
			if r.Done(habit.Name) {
				actual++
			}
		}

		target := domain.TargetFor(habit, window)

		// A zero target is a degenerate catalog, not an error.
		percentage := 0.0
		if target > 0 {
			percentage = float64(actual) / target * 100
		}

		report.Habits = append(report.Habits, domain.HabitProgress{
			Habit:      habit.Name,
			Cadence:    habit.Cadence,
			Actual:     actual,
			Target:     target,
			Percentage: percentage,
		})

		report.TotalActual += actual
		report.TotalTarget += target
	}

	if report.TotalTarget > 0 {
		report.OverallRate = float64(report.TotalActual) / report.TotalTarget * 100
	}

	return report
}

type ReportService struct {
	repo    domain.RecordRepository
	catalog *domain.Catalog
}

func NewReportService(repo domain.RecordRepository, catalog *domain.Catalog) *ReportService {
	return &ReportService{
		repo:    repo,
		catalog: catalog,
	}
}

// WeekReport aggregates a user's current week, Monday through Sunday, against
// flat weekly targets. Monthly habits are excluded.
func (s *ReportService) WeekReport(ctx context.Context, userName string, today time.Time) (*domain.ProgressReport, error) {
	window := domain.WeekToDate(today)

	records, err := s.repo.ListByUserInRange(ctx, userName, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	report := Aggregate(records, window, s.catalog, false)
	return &report, nil
}

// MonthReport aggregates the first of the month through today, pro-rating
// weekly targets by elapsed weeks and applying flat monthly targets.
func (s *ReportService) MonthReport(ctx context.Context, userName string, today time.Time) (*domain.ProgressReport, error) {
	window := domain.MonthToDate(today)

	records, err := s.repo.ListByUserInRange(ctx, userName, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	report := Aggregate(records, window, s.catalog, true)
	return &report, nil
}

// RangeReport aggregates an arbitrary [start, end] range for custom analysis.
// It surfaces domain.ErrInvalidRange without touching storage.
func (s *ReportService) RangeReport(ctx context.Context, userName string, start, end time.Time) (*domain.ProgressReport, error) {
	window, err := domain.CustomRange(start, end)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByUserInRange(ctx, userName, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	report := Aggregate(records, window, s.catalog, true)
	return &report, nil
}
