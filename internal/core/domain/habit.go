package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrHabitNameEmpty = errors.New("habit name cannot be empty")
	ErrDuplicateHabit = errors.New("habit name already defined in catalog")
	ErrInvalidCadence = errors.New("invalid cadence (must be daily, weekly, or monthly)")
	ErrInvalidTarget  = errors.New("weekly and monthly habits require a positive target")
	ErrEmptyCatalog   = errors.New("catalog must define at least one habit")
	ErrUnknownHabit   = errors.New("habit not defined in catalog")
)

type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}

// HabitDefinition describes one devotional practice: its unique name, how often
// it is expected (cadence), and for weekly/monthly habits the expected number of
// completions per period. Daily habits carry an implicit target of one per day.
type HabitDefinition struct {
	Name    string  `json:"name"`
	Cadence Cadence `json:"cadence"`
	Target  int     `json:"target,omitempty"`
}

// Catalog is the immutable set of habits for a deployment. It is defined once
// at startup and only ever read afterwards.
type Catalog struct {
	habits []HabitDefinition
	byName map[string]HabitDefinition
}

func NewCatalog(habits []HabitDefinition) (*Catalog, error) {
	if len(habits) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		habits: make([]HabitDefinition, 0, len(habits)),
		byName: make(map[string]HabitDefinition, len(habits)),
	}

	for _, h := range habits {
		h.Name = strings.TrimSpace(h.Name)
		if h.Name == "" {
			return nil, ErrHabitNameEmpty
		}
		if _, exists := c.byName[h.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHabit, h.Name)
		}
		if !h.Cadence.Valid() {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidCadence, h.Cadence, h.Name)
		}

		if h.Cadence == CadenceDaily {
			h.Target = 1
		} else if h.Target <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, h.Name)
		}

		c.habits = append(c.habits, h)
		c.byName[h.Name] = h
	}

	return c, nil
}

// Habits returns the catalog in its defined order.
func (c *Catalog) Habits() []HabitDefinition {
	out := make([]HabitDefinition, len(c.habits))
	copy(out, c.habits)
	return out
}

func (c *Catalog) Get(name string) (HabitDefinition, bool) {
	h, ok := c.byName[name]
	return h, ok
}

func (c *Catalog) Len() int {
	return len(c.habits)
}

// DailyHabits returns the names of the daily-cadence habits, in catalog order.
// These are the only habits that participate in streak computation.
func (c *Catalog) DailyHabits() []string {
	var names []string
	for _, h := range c.habits {
		if h.Cadence == CadenceDaily {
			names = append(names, h.Name)
		}
	}
	return names
}

// DefaultCatalog is the habit set the group tracks today: four daily practices,
// two weekly ones, and one monthly fast.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]HabitDefinition{
		{Name: "Juz 30 (Hafalan/Murajaah)", Cadence: CadenceDaily},
		{Name: "Hadis Arbain 1-25", Cadence: CadenceDaily},
		{Name: "Tilawah 1/2 Juz", Cadence: CadenceDaily},
		{Name: "Al-Matsurat (Pagi/Sore)", Cadence: CadenceDaily},
		{Name: "Qiyamulail", Cadence: CadenceWeekly, Target: 2},
		{Name: "Olahraga", Cadence: CadenceWeekly, Target: 3},
		{Name: "Shaum Sunnah", Cadence: CadenceMonthly, Target: 3},
	})
	if err != nil {
		// The built-in catalog is validated by tests; reaching this is a bug.
		panic(err)
	}
	return c
}

// LoadCatalog reads a JSON habit list from disk so deployments can track a
// different habit set without a rebuild.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var habits []HabitDefinition
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	return NewCatalog(habits)
}
