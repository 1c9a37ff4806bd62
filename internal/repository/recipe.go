package repository

import (
	"context"

	"github.com/pantryops/shoplist/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	// Recipe operations
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) (string, error)
	GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error)
	GetRecipesByIDs(ctx context.Context, ids []string) (map[string]domain.Recipe, error)
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)

	// Ingredient lookups
	GetIngredientName(ctx context.Context, normalizedName string) (*string, error)
}
