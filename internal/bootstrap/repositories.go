package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pantryops/shoplist/internal/database/postgres"
	"github.com/pantryops/shoplist/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Recipe    repository.Recipe
	Inventory repository.Inventory
	MealPlan  repository.MealPlan
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Recipe:    postgres.NewRecipeRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		MealPlan:  postgres.NewMealPlanRepository(dbPool),
	}
}
