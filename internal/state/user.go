package state

import (
	"context"
	"sync"

	"github.com/healthmate/healthmate/internal/models"
	"github.com/healthmate/healthmate/internal/rest"
)

// UserSlice owns the current user profile, a singleton per session. Same
// loading/success/errorMessage conventions as the domain slices, but a
// single cached entity instead of month/day views.
type UserSlice struct {
	client *rest.Client

	mu           sync.Mutex
	loading      bool
	success      bool
	errorMessage string
	currentUser  models.User
}

func NewUserSlice(client *rest.Client) *UserSlice {
	return &UserSlice{client: client}
}

func (slice *UserSlice) Loading() bool {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.loading
}

func (slice *UserSlice) Success() bool {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.success
}

func (slice *UserSlice) ErrorMessage() string {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.errorMessage
}

func (slice *UserSlice) CurrentUser() models.User {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return slice.currentUser
}

// SetCurrentUser installs a profile obtained outside this slice, e.g. after
// the embedding app's own login flow.
func (slice *UserSlice) SetCurrentUser(user models.User) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.currentUser = user
}

// CreateUser registers a new profile and installs it as the current user on
// success. A nil payload is a no-op.
func (slice *UserSlice) CreateUser(ctx context.Context, payload *models.ShortUser) {
	if payload == nil {
		return
	}
	slice.beginCall()
	user, err := rest.Post[models.ShortUser, models.User](ctx, slice.client, "/User", *payload)
	if !slice.finishCall(err) {
		return
	}
	slice.mu.Lock()
	slice.currentUser = user
	slice.mu.Unlock()
}

// GetUserByID fetches a profile and returns it to the caller without
// touching the current user. On failure it records the error and returns the
// zero User.
func (slice *UserSlice) GetUserByID(ctx context.Context, userID string) models.User {
	slice.beginCall()
	user, err := rest.Get[models.User](ctx, slice.client, "/User/"+userID, nil)
	if !slice.finishCall(err) {
		return models.User{}
	}
	return user
}

// UpdateUser replaces a profile and, on success, makes the result the
// current user. A nil payload is a no-op.
func (slice *UserSlice) UpdateUser(ctx context.Context, userID string, payload *models.ShortUser) {
	if payload == nil {
		return
	}
	slice.beginCall()
	user, err := rest.Put[models.ShortUser, models.User](ctx, slice.client, "/User/"+userID, *payload)
	if !slice.finishCall(err) {
		return
	}
	slice.mu.Lock()
	slice.currentUser = user
	slice.mu.Unlock()
}

// DeleteUser removes a profile; on success the current user is reset to the
// logged-out sentinel.
func (slice *UserSlice) DeleteUser(ctx context.Context, userID string) {
	slice.beginCall()
	err := rest.Delete(ctx, slice.client, "/User/"+userID)
	if !slice.finishCall(err) {
		return
	}
	slice.mu.Lock()
	slice.currentUser = models.User{}
	slice.mu.Unlock()
}

func (slice *UserSlice) beginCall() {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.loading = true
}

func (slice *UserSlice) finishCall(err error) bool {
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

func (slice *UserSlice) reset() {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.loading = false
	slice.success = false
	slice.errorMessage = ""
	slice.currentUser = models.User{}
}

type userSnapshot struct {
	Loading      bool        `json:"loading"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage"`
	CurrentUser  models.User `json:"currentUser"`
}

func (slice *UserSlice) snapshot() userSnapshot {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	return userSnapshot{
		Loading:      slice.loading,
		Success:      slice.success,
		ErrorMessage: slice.errorMessage,
		CurrentUser:  slice.currentUser,
	}
}

func (slice *UserSlice) restore(snapshot userSnapshot) {
	slice.mu.Lock()
	defer slice.mu.Unlock()
	slice.loading = snapshot.Loading
	slice.success = snapshot.Success
	slice.errorMessage = snapshot.ErrorMessage
	slice.currentUser = snapshot.CurrentUser
}
