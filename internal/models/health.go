package models

// Health is one vitals record as the backend returns it.
type Health struct {
	ID                     string  `json:"id"`
	SystolicBloodPressure  int     `json:"systolicBloodPressure"`
	DiastolicBloodPressure int     `json:"diastolicBloodPressure"`
	HeartRate              int     `json:"heartRate"`
	BloodSugar             float64 `json:"bloodSugar"`
	Cholesterol            float64 `json:"cholesterol"`
	Date                   Day     `json:"date"`
	Notes                  []Note  `json:"notes"`
}

// ShortHealth is the create/update payload: no server-assigned id, scoped to
// a user instead.
type ShortHealth struct {
	UserID                 string  `json:"userId"`
	SystolicBloodPressure  int     `json:"systolicBloodPressure"`
	DiastolicBloodPressure int     `json:"diastolicBloodPressure"`
	HeartRate              int     `json:"heartRate"`
	BloodSugar             float64 `json:"bloodSugar"`
	Cholesterol            float64 `json:"cholesterol"`
	Date                   Day     `json:"date"`
	Notes                  []Note  `json:"notes"`
}
