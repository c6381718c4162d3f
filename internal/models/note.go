package models

// Note is a free-text annotation attached to a record.
type Note struct {
	ID      string `json:"id"`
	Date    Day    `json:"date"`
	Content string `json:"content"`
}
