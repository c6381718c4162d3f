package state

import (
	"context"
	"net/url"
	"sync"

	"github.com/healthmate/healthmate/internal/rest"
)

// DomainSlice caches two views over one remote health resource: all records
// in the calendar month containing the selected date, and all records on the
// selected date itself. Every mutation that succeeds is followed by a full
// re-fetch of both views rather than a local merge, so server-assigned
// fields are never guessed at.
//
// R is the record type the backend returns, S the short create/update
// payload carrying a user id instead of a record id.
type DomainSlice[R any, S any] struct {
	client   *rest.Client
	shared   Shared
	resource string

	mu           sync.Mutex
	epoch        uint64
	loading      bool
	success      bool
	errorMessage string
	monthData    []R
	dayData      []R
}

func newDomainSlice[R any, S any](client *rest.Client, shared Shared, resource string) *DomainSlice[R, S] {
	return &DomainSlice[R, S]{
		client:    client,
		shared:    shared,
		resource:  resource,
		monthData: []R{},
		dayData:   []R{},
	}
}

func (slice *DomainSlice[R, S]) Loading() bool {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.loading
}

func (slice *DomainSlice[R, S]) Success() bool {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.success
}

func (slice *DomainSlice[R, S]) ErrorMessage() string {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.errorMessage
}

func (slice *DomainSlice[R, S]) MonthData() []R {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return append([]R(nil), slice.monthData...)
}

func (slice *DomainSlice[R, S]) DayData() []R {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return append([]R(nil), slice.dayData...)
}

// Fetch reloads both cached views for the current user and selected date:
// first the month range read, then the day read, strictly in that order.
// Each outcome is applied independently; loading stays true until the second
// read resolves. A fetch superseded by a newer one (or by a reset) discards
// its responses instead of overwriting fresher state.
func (slice *DomainSlice[R, S]) Fetch(ctx context.Context) {
	userID := slice.shared.CurrentUserID()
	selectedDate := slice.shared.SelectedDate()
	if userID == "" || selectedDate.IsZero() {
		slice.mu.Lock()
		slice.errorMessage = MissingContextMessage
		slice.mu.Unlock()
		return
	}

	epoch := slice.beginFetch()

	monthQuery := url.Values{}
	monthQuery.Set("startDate", selectedDate.StartOfMonth().String())
	monthQuery.Set("finishDate", selectedDate.EndOfMonth().String())
	monthRecords, err := rest.Get[[]R](ctx, slice.client, "/"+slice.resource+"/"+userID+"/between-dates", monthQuery)
	slice.applyMonth(epoch, monthRecords, err)

	dayQuery := url.Values{}
	dayQuery.Set("date", selectedDate.String())
	dayRecords, err := rest.Get[[]R](ctx, slice.client, "/"+slice.resource+"/"+userID+"/by-date", dayQuery)
	slice.applyDay(epoch, dayRecords, err)
}

// Create posts a new record and, on success, re-fetches both views. A nil
// payload is a no-op.
func (slice *DomainSlice[R, S]) Create(ctx context.Context, payload *S) {
	if payload == nil {
		return
	}
	slice.beginMutation()
	_, err := rest.Post[S, R](ctx, slice.client, "/"+slice.resource, *payload)
	if !slice.finishMutation(err) {
		return
	}
	slice.Fetch(ctx)
}

// Update replaces the record with the given id and, on success, re-fetches
// both views. A nil payload is a no-op.
func (slice *DomainSlice[R, S]) Update(ctx context.Context, id string, payload *S) {
	if payload == nil {
		return
	}
	slice.beginMutation()
	_, err := rest.Put[S, R](ctx, slice.client, "/"+slice.resource+"/"+id, *payload)
	if !slice.finishMutation(err) {
		return
	}
	slice.Fetch(ctx)
}

// Delete removes the record with the given id and, on success, re-fetches
// both views.
func (slice *DomainSlice[R, S]) Delete(ctx context.Context, id string) {
	slice.beginMutation()
	err := rest.Delete(ctx, slice.client, "/"+slice.resource+"/"+id)
	if !slice.finishMutation(err) {
		return
	}
	slice.Fetch(ctx)
}

func (slice *DomainSlice[R, S]) beginFetch() uint64 {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.epoch++
	slice.loading = true
	return slice.epoch
}

func (slice *DomainSlice[R, S]) applyMonth(epoch uint64, records []R, err error) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	if epoch != slice.epoch {
		return
	}
	if err != nil {
		slice.errorMessage = rest.MessageOf(err)
		return
	}
	if records == nil {
		records = []R{}
	}
	slice.success = true
	slice.errorMessage = ""
	slice.monthData = records
}

func (slice *DomainSlice[R, S]) applyDay(epoch uint64, records []R, err error) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	if epoch != slice.epoch {
		return
	}
	slice.loading = false
	if err != nil {
		slice.errorMessage = rest.MessageOf(err)
		return
	}
	if records == nil {
		records = []R{}
	}
	slice.success = true
	slice.errorMessage = ""
	slice.dayData = records
}

func (slice *DomainSlice[R, S]) beginMutation() {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.loading = true
}

// finishMutation reports whether the mutation succeeded and the re-fetch
// should run.
func (slice *DomainSlice[R, S]) finishMutation(err error) bool {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.loading = false
	if err != nil {
		slice.errorMessage = rest.MessageOf(err)
		return false
	}
	slice.success = true
	slice.errorMessage = ""
	return true
}

func (slice *DomainSlice[R, S]) reset() {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.epoch++
	slice.loading = false
	slice.success = false
	slice.errorMessage = ""
	slice.monthData = []R{}
	slice.dayData = []R{}
}

type domainSnapshot[R any] struct {
	Loading      bool   `json:"loading"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
	MonthData    []R    `json:"monthData"`
	DayData      []R    `json:"dayData"`
}

func (slice *DomainSlice[R, S]) snapshot() domainSnapshot[R] {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return domainSnapshot[R]{
		Loading:      slice.loading,
		Success:      slice.success,
		ErrorMessage: slice.errorMessage,
		MonthData:    append([]R(nil), slice.monthData...),
		DayData:      append([]R(nil), slice.dayData...),
	}
}

func (slice *DomainSlice[R, S]) restore(snapshot domainSnapshot[R]) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.epoch++
	slice.loading = snapshot.Loading
	slice.success = snapshot.Success
	slice.errorMessage = snapshot.ErrorMessage
	slice.monthData = snapshot.MonthData
	slice.dayData = snapshot.DayData
	if slice.monthData == nil {
		slice.monthData = []R{}
	}
	if slice.dayData == nil {
		slice.dayData = []R{}
	}
}
