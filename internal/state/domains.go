package state

import (
	"github.com/healthmate/healthmate/internal/models"
	"github.com/healthmate/healthmate/internal/rest"
)

// The five tracked domains are structurally identical state machines; only
// the record types and the resource path differ.

type HealthSlice = DomainSlice[models.Health, models.ShortHealth]

type ActivitySlice = DomainSlice[models.Activity, models.ShortActivity]

type MoodSlice = DomainSlice[models.Mood, models.ShortMood]

type MedicationSlice = DomainSlice[models.Medication, models.ShortMedication]

type NutritionSlice = DomainSlice[models.Nutrition, models.ShortNutrition]

func NewHealthSlice(client *rest.Client, shared Shared) *HealthSlice {
	return newDomainSlice[models.Health, models.ShortHealth](client, shared, "Health")
}

func NewActivitySlice(client *rest.Client, shared Shared) *ActivitySlice {
	return newDomainSlice[models.Activity, models.ShortActivity](client, shared, "Activity")
}

func NewMoodSlice(client *rest.Client, shared Shared) *MoodSlice {
	return newDomainSlice[models.Mood, models.ShortMood](client, shared, "Mood")
}

func NewMedicationSlice(client *rest.Client, shared Shared) *MedicationSlice {
	return newDomainSlice[models.Medication, models.ShortMedication](client, shared, "Medication")
}

func NewNutritionSlice(client *rest.Client, shared Shared) *NutritionSlice {
	return newDomainSlice[models.Nutrition, models.ShortNutrition](client, shared, "Nutrition")
}
