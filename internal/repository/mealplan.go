package repository

import (
	"context"

	"github.com/pantryops/shoplist/internal/domain"
)

// MealPlan defines the interface for meal plan persistence
type MealPlan interface {
	// UpsertPlan creates a plan for the week or replaces its entries if one exists
	UpsertPlan(ctx context.Context, weekStart domain.Date, entries []domain.MealPlanEntry) (*domain.MealPlan, error)
	GetPlanByID(ctx context.Context, id string) (*domain.MealPlan, error)
	GetPlanByWeek(ctx context.Context, weekStart domain.Date) (*domain.MealPlan, error)
	ListPlans(ctx context.Context) ([]domain.MealPlan, error)
}
