package state

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/healthmate/healthmate/internal/models"
	"github.com/healthmate/healthmate/internal/rest"
)

// StorageKey is the fixed key the combined snapshot is persisted under.
const StorageKey = "app-storage"

// Persister stores the serialized snapshot between sessions. Session scope
// is the persister's concern, not the store's.
type Persister interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
}

// Store composes every slice into one state container. It satisfies Shared,
// which is how domain slices see the selected date and current user without
// reaching into each other.
type Store struct {
	Calendar   *CalendarSlice
	Users      *UserSlice
	Health     *HealthSlice
	Activity   *ActivitySlice
	Mood       *MoodSlice
	Medication *MedicationSlice
	Nutrition  *NutritionSlice

	persister Persister
	resetFns  []func()
}

// Options configures store construction. Now is injected for tests;
// Persister may be nil, in which case Save and the startup load are no-ops.
type Options struct {
	Now       func() time.Time
	Persister Persister
}

func NewStore(client *rest.Client, options Options) (*Store, error) {
	store := &Store{persister: options.Persister}

	store.Calendar = NewCalendarSlice(options.Now)
	store.Users = NewUserSlice(client)
	store.Health = NewHealthSlice(client, store)
	store.Activity = NewActivitySlice(client, store)
	store.Mood = NewMoodSlice(client, store)
	store.Medication = NewMedicationSlice(client, store)
	store.Nutrition = NewNutritionSlice(client, store)

	store.resetFns = []func(){
		store.Calendar.reset,
		store.Users.reset,
		store.Health.reset,
		store.Activity.reset,
		store.Mood.reset,
		store.Medication.reset,
		store.Nutrition.reset,
	}

	if store.persister != nil {
		data, found, err := store.persister.Load(StorageKey)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		if found {
			snapshot := Snapshot{}
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return nil, fmt.Errorf("decode snapshot: %w", err)
			}
			store.Restore(snapshot)
		}
	}

	return store, nil
}

func (store *Store) CurrentUserID() string {
	return store.Users.CurrentUser().ID
}

func (store *Store) SelectedDate() models.Day {
	return store.Calendar.SelectedDate()
}

// Reset restores every registered slice to its initial state in one call.
func (store *Store) Reset() {
	for _, resetFn := range store.resetFns {
		resetFn()
	}
}

// Snapshot is the serialized form of the combined store state.
type Snapshot struct {
	Calendar   calendarSnapshot                  `json:"calendar"`
	User       userSnapshot                      `json:"user"`
	Health     domainSnapshot[models.Health]     `json:"health"`
	Activity   domainSnapshot[models.Activity]   `json:"activity"`
	Mood       domainSnapshot[models.Mood]       `json:"mood"`
	Medication domainSnapshot[models.Medication] `json:"medication"`
	Nutrition  domainSnapshot[models.Nutrition]  `json:"nutrition"`
}

func (store *Store) Snapshot() Snapshot {
	return Snapshot{
		Calendar:   store.Calendar.snapshot(),
		User:       store.Users.snapshot(),
		Health:     store.Health.snapshot(),
		Activity:   store.Activity.snapshot(),
		Mood:       store.Mood.snapshot(),
		Medication: store.Medication.snapshot(),
		Nutrition:  store.Nutrition.snapshot(),
	}
}

func (store *Store) Restore(snapshot Snapshot) {
	store.Calendar.restore(snapshot.Calendar)
	store.Users.restore(snapshot.User)
	store.Health.restore(snapshot.Health)
	store.Activity.restore(snapshot.Activity)
	store.Mood.restore(snapshot.Mood)
	store.Medication.restore(snapshot.Medication)
	store.Nutrition.restore(snapshot.Nutrition)
}

// Save persists the current snapshot under StorageKey.
func (store *Store) Save() error {
	if store.persister == nil {
		return nil
	}
	data, err := json.Marshal(store.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := store.persister.Save(StorageKey, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
