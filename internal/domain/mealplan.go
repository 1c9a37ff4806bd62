package domain

import "time"

// MealPlan is one week of planned meals. WeekStart is a unique key;
// re-creating a plan for an existing week replaces all of its entries.
type MealPlan struct {
	ID        string          `json:"id"`
	WeekStart Date            `json:"week_start"`
	Entries   []MealPlanEntry `json:"entries"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// MealPlanEntry assigns a recipe to one (day, meal) slot of a plan.
// Day and Meal are stored lowercased; each (plan, day, meal) is unique.
type MealPlanEntry struct {
	ID          string  `json:"-"`
	MealPlanID  string  `json:"-"`
	Day         string  `json:"day"`
	Meal        string  `json:"meal"`
	RecipeID    string  `json:"recipe_id"`
	Servings    float64 `json:"servings"`
	RecipeTitle string  `json:"recipe_title,omitempty"`
}

// MealPlanEntryInput assigns a recipe to one slot when creating a plan.
type MealPlanEntryInput struct {
	Day      string
	Meal     string
	RecipeID string
	Servings float64
}

// ShoppingListItem is one deficit line of a generated shopping list.
// Derived, never persisted; Quantity is positive and rounded to 2 decimals.
type ShoppingListItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     *string `json:"unit"`
}

// ShoppingList is the derived deficit list for one plan week.
type ShoppingList struct {
	WeekStart Date               `json:"week_start"`
	Items     []ShoppingListItem `json:"items"`
}
