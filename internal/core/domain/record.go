package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRecord = errors.New("invalid journal record data")
	ErrNoteTooLong   = errors.New("journal note is too long (max 1000 chars)")
)

const MaxNoteLen = 1000

// Completions maps a habit name to whether it was performed on the record's
// date. Habits missing from the map count as not completed. The persistence
// adapter stores the map as a single JSONB column, which also absorbs the
// 0/1 integer encoding older exports used.
type Completions map[string]bool

func (c Completions) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

func (c *Completions) Scan(src interface{}) error {
	if src == nil {
		*c = Completions{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Completions", src)
	}

	return json.Unmarshal(data, c)
}

// JournalRecord is one participant's journal for one calendar day. There is at
// most one record per (user, date); saving again for the same day overwrites
// the previous entry. The engine treats loaded records as immutable values.
type JournalRecord struct {
	ID        string      `json:"id" db:"id"`
	UserName  string      `json:"user_name" db:"user_name"`
	EntryDate time.Time   `json:"entry_date" db:"entry_date"`
	Completed Completions `json:"completions" db:"completions"`
	Note      string      `json:"note" db:"note"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DateOnly truncates a timestamp to its UTC calendar day. All record dates and
// window boundaries pass through it so date equality is plain time equality.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewJournalRecord(userName string, date time.Time, completed Completions, note string) *JournalRecord {
	if completed == nil {
		completed = Completions{}
	}

	now := time.Now().UTC()

	return &JournalRecord{
		UserName:  strings.TrimSpace(userName),
		EntryDate: DateOnly(date),
		Completed: completed,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *JournalRecord) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return fmt.Errorf("%w: user name is required", ErrInvalidRecord)
	}
	if r.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry date is required", ErrInvalidRecord)
	}
	if len(r.Note) > MaxNoteLen {
		return ErrNoteTooLong
	}
	return nil
}

// Done reports whether the given habit was completed on this record's date.
// A habit absent from the completions map is simply not done.
func (r *JournalRecord) Done(habit string) bool {
	return r.Completed[habit]
}
