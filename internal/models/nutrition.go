package models

// MealType is a backend-managed reference value (breakfast, lunch, ...).
type MealType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FoodItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

type Nutrition struct {
	ID        string     `json:"id"`
	MealType  MealType   `json:"mealType"`
	Calories  int        `json:"calories"`
	FoodItems []FoodItem `json:"foodItems"`
	Date      Day        `json:"date"`
	Notes     []Note     `json:"notes"`
}

type ShortNutrition struct {
	UserID     string     `json:"userId"`
	MealTypeID string     `json:"mealTypeId"`
	Calories   int        `json:"calories"`
	FoodItems  []FoodItem `json:"foodItems"`
	Date       Day        `json:"date"`
	Notes      []Note     `json:"notes"`
}
