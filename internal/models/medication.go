package models

type Medication struct {
	ID             string `json:"id"`
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	StartDate      Day    `json:"startDate"`
	EndDate        Day    `json:"endDate"`
	Date           Day    `json:"date"`
	Notes          []Note `json:"notes"`
}

type ShortMedication struct {
	UserID         string `json:"userId"`
	MedicationName string `json:"medicationName"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	StartDate      Day    `json:"startDate"`
	EndDate        Day    `json:"endDate"`
	Date           Day    `json:"date"`
	Notes          []Note `json:"notes"`
}
