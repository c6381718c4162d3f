package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2024-07-15")
	if err != nil {
		t.Fatalf("expected valid date, got error: %v", err)
	}
	if day.String() != "2024-07-15" {
		t.Fatalf("expected 2024-07-15, got %s", day.String())
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "  ", "15-07-2024", "2024-13-01", "tomorrow"} {
		if _, err := ParseDay(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestMonthWindowCoversLeapFebruary(t *testing.T) {
	day := NewDay(2024, time.February, 15)
	if start := day.StartOfMonth().String(); start != "2024-02-01" {
		t.Fatalf("expected month start 2024-02-01, got %s", start)
	}
	if end := day.EndOfMonth().String(); end != "2024-02-29" {
		t.Fatalf("expected month end 2024-02-29, got %s", end)
	}
}

func TestMonthWindowAtYearBoundary(t *testing.T) {
	day := NewDay(2024, time.December, 31)
	if start := day.StartOfMonth().String(); start != "2024-12-01" {
		t.Fatalf("expected month start 2024-12-01, got %s", start)
	}
	if end := day.EndOfMonth().String(); end != "2024-12-31" {
		t.Fatalf("expected month end 2024-12-31, got %s", end)
	}
}

func TestDayOfTruncatesTimeOfDay(t *testing.T) {
	moment := time.Date(2024, time.July, 15, 23, 59, 59, 0, time.UTC)
	if day := DayOf(moment); day.String() != "2024-07-15" {
		t.Fatalf("expected 2024-07-15, got %s", day.String())
	}
}

func TestDayJSONMarshalsAsPlainDate(t *testing.T) {
	encoded, err := json.Marshal(NewDay(2024, time.July, 10))
	if err != nil {
		t.Fatalf("expected marshal to succeed, got %v", err)
	}
	if string(encoded) != `"2024-07-10"` {
		t.Fatalf(`expected "2024-07-10", got %s`, encoded)
	}

	zero, err := json.Marshal(Day{})
	if err != nil {
		t.Fatalf("expected marshal of zero day to succeed, got %v", err)
	}
	if string(zero) != `""` {
		t.Fatalf(`expected "" for zero day, got %s`, zero)
	}
}

func TestDayJSONUnmarshalToleratesTimestamps(t *testing.T) {
	day := Day{}
	if err := json.Unmarshal([]byte(`"2024-07-10T15:04:05Z"`), &day); err != nil {
		t.Fatalf("expected timestamp to be accepted, got %v", err)
	}
	if day.String() != "2024-07-10" {
		t.Fatalf("expected 2024-07-10, got %s", day.String())
	}

	empty := Day{}
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Fatalf("expected empty string to be accepted, got %v", err)
	}
	if !empty.IsZero() {
		t.Fatalf("expected empty string to decode to the zero day, got %s", empty.String())
	}
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	day := NewDay(2024, time.January, 31).AddDays(1)
	if day.String() != "2024-02-01" {
		t.Fatalf("expected 2024-02-01, got %s", day.String())
	}
}
