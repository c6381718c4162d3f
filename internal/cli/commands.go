// Package cli holds the command runners behind the healthmate binary.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/healthmate/healthmate/internal/db"
	"github.com/healthmate/healthmate/internal/devserver"
	"github.com/healthmate/healthmate/internal/models"
	"github.com/healthmate/healthmate/internal/rest"
	"github.com/healthmate/healthmate/internal/session"
	"github.com/healthmate/healthmate/internal/state"
)

// RunServeCommand starts the local dev backend on the given port.
func RunServeCommand(dbPath string, port string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	server, err := devserver.New(database)
	if err != nil {
		return fmt.Errorf("dev backend init failed: %w", err)
	}
	log.Printf("HealthMate dev backend listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	return server.Listen(":" + port)
}

// RunFetchCommand synchronizes one domain slice for the given user and
// (optional) date override, prints the cached views, and persists the
// snapshot.
func RunFetchCommand(ctx context.Context, apiURL string, statePath string, userID string, domainName string, dateOverride string) error {
	if userID == "" {
		return errors.New("user id is required (set HEALTHMATE_USER_ID)")
	}

	store, err := openStore(apiURL, statePath)
	if err != nil {
		return err
	}

	if store.CurrentUserID() != userID {
		store.Users.SetCurrentUser(models.User{ID: userID})
	}
	if dateOverride != "" {
		day, err := models.ParseDay(dateOverride)
		if err != nil {
			return err
		}
		store.Calendar.SetSelectedDate(day)
	}

	slice, err := domainView(store, domainName)
	if err != nil {
		return err
	}
	slice.fetch(ctx)

	if message := slice.errorMessage(); message != "" {
		return fmt.Errorf("fetch %s: %s", domainName, message)
	}

	fmt.Printf("%s on %s: %d record(s) this month\n", domainName, store.SelectedDate(), slice.monthCount())
	encoded, err := json.MarshalIndent(slice.dayRecords(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	fmt.Println(string(encoded))

	return store.Save()
}

// RunWhoamiCommand fetches and prints the profile for the configured user.
func RunWhoamiCommand(ctx context.Context, apiURL string, userID string) error {
	if userID == "" {
		return errors.New("user id is required (set HEALTHMATE_USER_ID)")
	}

	users := state.NewUserSlice(rest.NewClient(apiURL))
	user := users.GetUserByID(ctx, userID)
	if message := users.ErrorMessage(); message != "" {
		return fmt.Errorf("load user %s: %s", userID, message)
	}

	encoded, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

// RunResetCommand restores every slice to its initial state and persists the
// cleared snapshot.
func RunResetCommand(apiURL string, statePath string) error {
	store, err := openStore(apiURL, statePath)
	if err != nil {
		return err
	}
	store.Reset()
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Println("state reset")
	return nil
}

func openStore(apiURL string, statePath string) (*state.Store, error) {
	persister, err := session.Open(statePath)
	if err != nil {
		return nil, fmt.Errorf("session store init failed: %w", err)
	}
	store, err := state.NewStore(rest.NewClient(apiURL), state.Options{Persister: persister})
	if err != nil {
		return nil, fmt.Errorf("state store init failed: %w", err)
	}
	return store, nil
}

// sliceView erases the slice generics so commands can dispatch on a domain
// name.
type sliceView struct {
	fetch        func(context.Context)
	errorMessage func() string
	monthCount   func() int
	dayRecords   func() any
}

func viewOf[R any, S any](slice *state.DomainSlice[R, S]) sliceView {
	return sliceView{
		fetch:        slice.Fetch,
		errorMessage: slice.ErrorMessage,
		monthCount:   func() int { return len(slice.MonthData()) },
		dayRecords:   func() any { return slice.DayData() },
	}
}

func domainView(store *state.Store, domainName string) (sliceView, error) {
	switch domainName {
	case "health":
		return viewOf(store.Health), nil
	case "activity":
		return viewOf(store.Activity), nil
	case "mood":
		return viewOf(store.Mood), nil
	case "medication":
		return viewOf(store.Medication), nil
	case "nutrition":
		return viewOf(store.Nutrition), nil
	default:
		return sliceView{}, fmt.Errorf("unknown domain %q (want health, activity, mood, medication or nutrition)", domainName)
	}
}
