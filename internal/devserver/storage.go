package devserver

import (
	"fmt"

	"gorm.io/gorm"
)

// Records are stored schemalessly: the payload column keeps the JSON exactly
// as the client will read it back, the date column (YYYY-MM-DD) exists for
// the range queries.
type recordRow struct {
	ID      string `gorm:"primaryKey"`
	Domain  string `gorm:"not null;index:idx_records_scope"`
	UserID  string `gorm:"not null;index:idx_records_scope"`
	Date    string `gorm:"not null;index:idx_records_scope"`
	Payload []byte `gorm:"not null"`
}

func (recordRow) TableName() string {
	return "records"
}

type userRow struct {
	ID      string `gorm:"primaryKey"`
	Payload []byte `gorm:"not null"`
}

func (userRow) TableName() string {
	return "users"
}

type storage struct {
	database *gorm.DB
}

func newStorage(database *gorm.DB) (*storage, error) {
	if err := database.AutoMigrate(&recordRow{}, &userRow{}); err != nil {
		return nil, fmt.Errorf("migrate dev backend tables: %w", err)
	}
	return &storage{database: database}, nil
}

func (store *storage) createRecord(row *recordRow) error {
	return store.database.Create(row).Error
}

func (store *storage) saveRecord(row *recordRow) error {
	return store.database.Save(row).Error
}

func (store *storage) findRecord(domain string, id string) (recordRow, bool, error) {
	row := recordRow{}
	result := store.database.Where("domain = ? AND id = ?", domain, id).Limit(1).Find(&row)
	if result.Error != nil {
		return recordRow{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return recordRow{}, false, nil
	}
	return row, true, nil
}

func (store *storage) deleteRecord(domain string, id string) (bool, error) {
	result := store.database.Where("domain = ? AND id = ?", domain, id).Delete(&recordRow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *storage) listRecordsByDate(domain string, userID string, date string) ([]recordRow, error) {
	rows := make([]recordRow, 0)
	err := store.database.
		Where("domain = ? AND user_id = ? AND date = ?", domain, userID, date).
		Order("date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Both bounds inclusive; YYYY-MM-DD compares correctly as text.
func (store *storage) listRecordsBetween(domain string, userID string, startDate string, finishDate string) ([]recordRow, error) {
	rows := make([]recordRow, 0)
	err := store.database.
		Where("domain = ? AND user_id = ? AND date >= ? AND date <= ?", domain, userID, startDate, finishDate).
		Order("date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (store *storage) createUser(row *userRow) error {
	return store.database.Create(row).Error
}

func (store *storage) saveUser(row *userRow) error {
	return store.database.Save(row).Error
}

func (store *storage) findUser(id string) (userRow, bool, error) {
	row := userRow{}
	result := store.database.Where("id = ?", id).Limit(1).Find(&row)
	if result.Error != nil {
		return userRow{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return userRow{}, false, nil
	}
	return row, true, nil
}

func (store *storage) deleteUser(id string) (bool, error) {
	result := store.database.Where("id = ?", id).Delete(&userRow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
