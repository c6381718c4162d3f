package models

// MoodStatus enumerates the selectable mood values.
type MoodStatus int

const (
	MoodUnselected MoodStatus = iota
	MoodHappy
	MoodRelaxed
	MoodExcited
	MoodJoyful
	MoodContentment
	MoodBored
	MoodTired
	MoodSad
	MoodAnxious
	MoodDepressed
)

type Mood struct {
	ID          string     `json:"id"`
	MoodStatus  MoodStatus `json:"moodStatus"`
	StressLevel int        `json:"stressLevel"`
	Date        Day        `json:"date"`
	Notes       []Note     `json:"notes"`
}

type ShortMood struct {
	UserID      string     `json:"userId"`
	MoodStatus  MoodStatus `json:"moodStatus"`
	StressLevel int        `json:"stressLevel"`
	Date        Day        `json:"date"`
	Notes       []Note     `json:"notes"`
}
