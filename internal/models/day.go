package models

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the wire format for calendar dates.
const DayFormat = "2006-01-02"

// Day is a calendar date with no time-of-day component. The zero value means
// "unset".
type Day struct {
	value time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates a point in time to the calendar date it falls on, in t's
// location.
func DayOf(t time.Time) Day {
	if t.IsZero() {
		return Day{}
	}
	return NewDay(t.Year(), t.Month(), t.Day())
}

func ParseDay(value string) (Day, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Day{}, fmt.Errorf("empty date")
	}
	parsed, err := time.Parse(DayFormat, trimmed)
	if err != nil {
		return Day{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DayOf(parsed), nil
}

func (day Day) IsZero() bool {
	return day.value.IsZero()
}

func (day Day) String() string {
	if day.IsZero() {
		return ""
	}
	return day.value.Format(DayFormat)
}

func (day Day) Time() time.Time {
	return day.value
}

func (day Day) Equal(other Day) bool {
	return day.value.Equal(other.value)
}

func (day Day) Before(other Day) bool {
	return day.value.Before(other.value)
}

func (day Day) AddDays(days int) Day {
	if day.IsZero() {
		return Day{}
	}
	return DayOf(day.value.AddDate(0, 0, days))
}

// StartOfMonth returns the first day of the calendar month containing day.
func (day Day) StartOfMonth() Day {
	if day.IsZero() {
		return Day{}
	}
	return NewDay(day.value.Year(), day.value.Month(), 1)
}

// EndOfMonth returns the last day of the calendar month containing day.
func (day Day) EndOfMonth() Day {
	if day.IsZero() {
		return Day{}
	}
	return DayOf(day.StartOfMonth().value.AddDate(0, 1, -1))
}

func (day Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + day.String() + `"`), nil
}

func (day *Day) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*day = Day{}
		return nil
	}
	// Tolerate full timestamps, the backend is not consistent about them.
	if len(raw) > len(DayFormat) {
		raw = raw[:len(DayFormat)]
	}
	parsed, err := ParseDay(raw)
	if err != nil {
		return err
	}
	*day = parsed
	return nil
}
