package models

// ActivityType is a backend-managed reference value (running, swimming, ...).
type ActivityType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Activity struct {
	ID             string       `json:"id"`
	ActivityType   ActivityType `json:"activityType"`
	Duration       string       `json:"duration"`
	CaloriesBurned int          `json:"caloriesBurned"`
	Date           Day          `json:"date"`
	Notes          []Note       `json:"notes"`
}

type ShortActivity struct {
	UserID         string `json:"userId"`
	ActivityTypeID string `json:"activityTypeId"`
	Duration       string `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
	Date           Day    `json:"date"`
	Notes          []Note `json:"notes"`
}
