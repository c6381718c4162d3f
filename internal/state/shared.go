// Package state implements the client-side synchronization layer: one slice
// per health domain caching a month view and a day view of remote records,
// cross-cutting calendar/user slices, and a store composing them with global
// reset and snapshot persistence.
package state

import "github.com/healthmate/healthmate/internal/models"

// Shared is the read-only cross-slice context a domain slice scopes its
// requests with. The store satisfies it; tests substitute fixed values.
type Shared interface {
	CurrentUserID() string
	SelectedDate() models.Day
}

// MissingContextMessage is reported when an operation runs without a logged
// in user or a selected date. No request is issued in that case.
const MissingContextMessage = "user not logged in or date not selected"
