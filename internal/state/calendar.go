package state

import (
	"sync"
	"time"

	"github.com/healthmate/healthmate/internal/models"
)

// CalendarSlice owns the globally selected date. It never talks to the
// network; domain slices read it through the store when they fetch. Changing
// the date does not notify anyone, callers re-fetch the slices they care
// about.
type CalendarSlice struct {
	mu           sync.Mutex
	now          func() time.Time
	selectedDate models.Day
}

func NewCalendarSlice(now func() time.Time) *CalendarSlice {
	if now == nil {
		now = time.Now
	}
	return &CalendarSlice{
		now:          now,
		selectedDate: models.DayOf(now()),
	}
}

func (slice *CalendarSlice) SelectedDate() models.Day {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.selectedDate
}

// SetSelectedDate overwrites the selected date unconditionally.
func (slice *CalendarSlice) SetSelectedDate(day models.Day) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.selectedDate = day
}

// ClearSelectedDate resets the selection back to today.
func (slice *CalendarSlice) ClearSelectedDate() {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.selectedDate = models.DayOf(slice.now())
}

func (slice *CalendarSlice) reset() {
	slice.ClearSelectedDate()
}

type calendarSnapshot struct {
	SelectedDate models.Day `json:"selectedDate"`
}

func (slice *CalendarSlice) snapshot() calendarSnapshot {
	return calendarSnapshot{SelectedDate: slice.SelectedDate()}
}

func (slice *CalendarSlice) restore(snapshot calendarSnapshot) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	if snapshot.SelectedDate.IsZero() {
		slice.selectedDate = models.DayOf(slice.now())
		return
	}
	slice.selectedDate = snapshot.SelectedDate
}
