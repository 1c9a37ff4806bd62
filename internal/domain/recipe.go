package domain

import "time"

// Recipe represents a stored recipe and its owned ingredient list.
// Ingredients are ordered as authored; they belong exclusively to this
// recipe and are replaced wholesale when the recipe is replaced.
type Recipe struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Instructions *string            `json:"instructions"`
	SourceURL    *string            `json:"source_url"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	CreatedAt    time.Time          `json:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at,omitempty"`
}

// RecipeIngredient is one ingredient line of a recipe with two-layer naming:
// - Name: the display form as authored or scraped (e.g. "Eggs")
// - NormalizedName: trimmed lowercase matching key (e.g. "eggs")
type RecipeIngredient struct {
	ID             string  `json:"-"`
	RecipeID       string  `json:"-"`
	Name           string  `json:"name"`
	NormalizedName string  `json:"-"`
	Quantity       float64 `json:"quantity"`
	Unit           *string `json:"unit"`
}

// ParsedIngredient is the transient result of parsing a free-text
// ingredient line. It is never persisted directly.
type ParsedIngredient struct {
	Quantity float64
	Unit     *string
	Name     string
}

// RecipeInput carries the fields needed to create a recipe.
type RecipeInput struct {
	Title        string
	Instructions *string
	SourceURL    *string
	Ingredients  []IngredientInput
}

// IngredientInput is one ingredient line of a RecipeInput.
type IngredientInput struct {
	Name     string
	Quantity float64
	Unit     *string
}
