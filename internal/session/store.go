// Package session persists store snapshots between runs: one row per storage
// key, the closest CLI equivalent of the browser's session storage.
package session

import (
	"fmt"
	"time"

	"github.com/healthmate/healthmate/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRow struct {
	Key       string    `gorm:"primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

// Store implements state.Persister on a sqlite table.
type Store struct {
	database *gorm.DB
}

func NewStore(database *gorm.DB) (*Store, error) {
	if err := database.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate snapshots table: %w", err)
	}
	return &Store{database: database}, nil
}

// Open is the one-call path: open (or create) the database file and prepare
// the snapshots table.
func Open(dbPath string) (*Store, error) {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	return NewStore(database)
}

func (store *Store) Load(key string) ([]byte, bool, error) {
	row := snapshotRow{}
	result := store.database.Where("key = ?", key).Limit(1).Find(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return row.Data, true, nil
}

func (store *Store) Save(key string, data []byte) error {
	row := snapshotRow{Key: key, Data: data, UpdatedAt: time.Now()}
	return store.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&row).Error
}

// Clear removes the snapshot for key, ending the session explicitly.
func (store *Store) Clear(key string) error {
	return store.database.Where("key = ?", key).Delete(&snapshotRow{}).Error
}
