package domain

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("range start cannot be after range end")

// PeriodWindow is a derived, ephemeral date range used to scope one
// aggregation call. Start and End are inclusive calendar days. WeeklyUnits is
// the fractional number of weeks the window represents, used to pro-rate
// weekly targets (e.g. 10 days into a month is 10/7 weeks).
type PeriodWindow struct {
	Start       time.Time
	End         time.Time
	WeeklyUnits float64
}

// WeekToDate returns the nominal week containing today, Monday through Sunday.
// The daily target for a week view is the flat 7-day week rather than the days
// elapsed so far, so the window keeps its nominal end even mid-week; days
// after today simply have no records yet.
func WeekToDate(today time.Time) PeriodWindow {
	day := DateOnly(today)

	// time.Weekday counts from Sunday; the journal week starts Monday.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	return PeriodWindow{
		Start:       start,
		End:         start.AddDate(0, 0, 6),
		WeeklyUnits: 1,
	}
}

// MonthToDate returns the window from the first of today's month through
// today. Days after today are excluded so partial-month percentages measure
// only days that have actually arrived.
func MonthToDate(today time.Time) PeriodWindow {
	day := DateOnly(today)
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)

	return PeriodWindow{
		Start:       start,
		End:         day,
		WeeklyUnits: float64(day.Day()) / 7.0,
	}
}

// CustomRange returns the window [start, end] for ad-hoc analysis. It fails
// with ErrInvalidRange when start is after end.
func CustomRange(start, end time.Time) (PeriodWindow, error) {
	s, e := DateOnly(start), DateOnly(end)
	if s.After(e) {
		return PeriodWindow{}, ErrInvalidRange
	}

	days := int(e.Sub(s).Hours()/24) + 1

	return PeriodWindow{
		Start:       s,
		End:         e,
		WeeklyUnits: float64(days) / 7.0,
	}, nil
}

// DaysInPeriod is the inclusive day count of the window, which doubles as the
// daily-cadence target.
func (w PeriodWindow) DaysInPeriod() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether the given date falls inside the window.
func (w PeriodWindow) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(w.Start) && !d.After(w.End)
}
