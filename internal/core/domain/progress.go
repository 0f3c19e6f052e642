package domain

// HabitProgress is one habit's achievement inside a window: how many days it
// was actually done, the pro-rated target for the window, and the resulting
// percentage. Percentage is 0 when the target is 0; it is never NaN.
type HabitProgress struct {
	Habit      string  `json:"habit"`
	Cadence    Cadence `json:"cadence"`
	Actual     int     `json:"actual"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
}

// ProgressReport is the full derived view for one user and one window. It is
// computed fresh on every request and never persisted.
type ProgressReport struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Habits      []HabitProgress `json:"habits"`
	TotalActual int             `json:"total_actual"`
	TotalTarget float64         `json:"total_target"`
	OverallRate float64         `json:"overall_rate"`
}

// StreakResult maps each daily habit to its current consecutive-day streak.
type StreakResult map[string]int

// LeaderboardEntry is one participant's overall percentage for a window.
// Entries are ordered by percentage descending, ties broken by name.
type LeaderboardEntry struct {
	UserName   string  `json:"user_name"`
	Percentage float64 `json:"percentage"`
}

// TargetFor computes a habit's pro-rated target for a window. Daily habits
// expect one completion per day of the window. Weekly targets scale with the
// window's fractional week count. Monthly targets are flat: a partial month
// still expects the full monthly count, and week-scoped views exclude monthly
// habits entirely rather than pro-rate them.
func TargetFor(habit HabitDefinition, window PeriodWindow) float64 {
	switch habit.Cadence {
	case CadenceDaily:
		return float64(window.DaysInPeriod())
	case CadenceWeekly:
		return float64(habit.Target) * window.WeeklyUnits
	case CadenceMonthly:
		return float64(habit.Target)
	}
	return 0
}
