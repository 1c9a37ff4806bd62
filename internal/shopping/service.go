package shopping

import (
	"context"
	"fmt"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/logger"
	"github.com/pantryops/shoplist/internal/metrics"
	"github.com/pantryops/shoplist/internal/repository"
)

// Service defines the shopping list business logic
type Service interface {
	// GenerateList computes the deficit list for a planned week
	GenerateList(ctx context.Context, weekStart domain.Date) (*domain.ShoppingList, error)
}

type service struct {
	planRepo      repository.MealPlan
	recipeRepo    repository.Recipe
	inventoryRepo repository.Inventory
}

// NewService creates a new shopping list service
func NewService(planRepo repository.MealPlan, recipeRepo repository.Recipe, inventoryRepo repository.Inventory) Service {
	return &service{
		planRepo:      planRepo,
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GenerateList computes the deficit list for a planned week: aggregated
// recipe demand minus tracked inventory, positive deficits only
func (s *service) GenerateList(ctx context.Context, weekStart domain.Date) (*domain.ShoppingList, error) {
	log := logger.FromContext(ctx)
	log.Info("GenerateList called", "weekStart", weekStart.String())

	plan, err := s.planRepo.GetPlanByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		ids = append(ids, entry.RecipeID)
	}
	recipes, err := s.recipeRepo.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve plan recipes: %w", err)
	}

	demand := AggregateDemand(plan.Entries, recipes)

	inventory, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	lookup := func(normalizedName string) (string, bool) {
		name, err := s.recipeRepo.GetIngredientName(ctx, normalizedName)
		if err != nil {
			log.Warn("Ingredient name lookup failed", "normalizedName", normalizedName, "error", err)
			return "", false
		}
		if name == nil {
			return "", false
		}
		return *name, true
	}

	items := Reconcile(demand, inventory, lookup)

	metrics.ShoppingListsGenerated.Inc()
	log.Info("Shopping list generated", "weekStart", weekStart.String(), "items", len(items))

	return &domain.ShoppingList{WeekStart: plan.WeekStart, Items: items}, nil
}
