package models

type Gender struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the authenticated profile. The zero value is the "not logged in"
// sentinel.
type User struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UserName    string  `json:"userName"`
	Email       string  `json:"email"`
	DateOfBirth Day     `json:"dateOfBirth"`
	Gender      Gender  `json:"gender"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

type ShortUser struct {
	Name        string  `json:"name"`
	UserName    string  `json:"userName"`
	Email       string  `json:"email"`
	DateOfBirth Day     `json:"dateOfBirth"`
	GenderID    string  `json:"genderId"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}
