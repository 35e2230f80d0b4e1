package domain

import (
	"errors"
	"time"
)

// DueDateLayout is the wire and display format for due dates.
const DueDateLayout = "2006-01-02"

var ErrInvalidDueDate = errors.New("due date must be a real date in YYYY-MM-DD format")

// DueDate represents a calendar date with no time-of-day component.
type DueDate struct {
	value time.Time
}

// ParseDueDate creates a DueDate from a YYYY-MM-DD string. Impossible
// dates such as 2024-13-01 are rejected, as are other separators.
func ParseDueDate(s string) (DueDate, error) {
	t, err := time.Parse(DueDateLayout, s)
	if err != nil {
		return DueDate{}, ErrInvalidDueDate
	}
	return DueDate{value: t}, nil
}

// MustParseDueDate creates a DueDate or panics on error.
func MustParseDueDate(s string) DueDate {
	d, err := ParseDueDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Value returns the underlying time at midnight UTC.
func (d DueDate) Value() time.Time {
	return d.value
}

// IsZero returns true if the date has not been set.
func (d DueDate) IsZero() bool {
	return d.value.IsZero()
}

// Before reports whether d falls before other.
func (d DueDate) Before(other DueDate) bool {
	return d.value.Before(other.value)
}

// String returns the YYYY-MM-DD representation.
func (d DueDate) String() string {
	return d.value.Format(DueDateLayout)
}
