package mealplan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/logger"
	"github.com/pantryops/shoplist/internal/metrics"
	"github.com/pantryops/shoplist/internal/repository"
)

// Service defines the meal planning business logic
type Service interface {
	// CreatePlan stores a week's plan, replacing any existing plan for the
	// same week
	CreatePlan(ctx context.Context, weekStart domain.Date, entries []domain.MealPlanEntryInput) (*domain.MealPlan, error)
	// GetPlanByWeek retrieves the plan for the given week
	GetPlanByWeek(ctx context.Context, weekStart domain.Date) (*domain.MealPlan, error)
	// ConsumeMeal deducts one planned meal's ingredients from inventory
	ConsumeMeal(ctx context.Context, planID, day, meal string) error
}

type service struct {
	planRepo      repository.MealPlan
	recipeRepo    repository.Recipe
	inventoryRepo repository.Inventory
}

// NewService creates a new meal plan service
func NewService(planRepo repository.MealPlan, recipeRepo repository.Recipe, inventoryRepo repository.Inventory) Service {
	return &service{
		planRepo:      planRepo,
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
	}
}

// CreatePlan stores a week's plan. Every referenced recipe must exist; day
// and meal names are stored lowercased.
func (s *service) CreatePlan(ctx context.Context, weekStart domain.Date, entries []domain.MealPlanEntryInput) (*domain.MealPlan, error) {
	log := logger.FromContext(ctx)
	log.Info("CreatePlan called", "weekStart", weekStart.String(), "entries", len(entries))

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.RecipeID)
	}
	recipes, err := s.recipeRepo.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve plan recipes: %w", err)
	}

	planEntries := make([]domain.MealPlanEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := recipes[entry.RecipeID]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, entry.RecipeID)
		}
		planEntries = append(planEntries, domain.MealPlanEntry{
			Day:      strings.ToLower(entry.Day),
			Meal:     strings.ToLower(entry.Meal),
			RecipeID: entry.RecipeID,
			Servings: entry.Servings,
		})
	}

	plan, err := s.planRepo.UpsertPlan(ctx, weekStart, planEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to save meal plan: %w", err)
	}

	// Entry titles come from a join on read; fill them here so the caller
	// gets the same shape either way
	for i := range plan.Entries {
		if recipe, ok := recipes[plan.Entries[i].RecipeID]; ok {
			plan.Entries[i].RecipeTitle = recipe.Title
		}
	}

	return plan, nil
}

// GetPlanByWeek retrieves the plan for the given week
func (s *service) GetPlanByWeek(ctx context.Context, weekStart domain.Date) (*domain.MealPlan, error) {
	plan, err := s.planRepo.GetPlanByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ConsumeMeal deducts one planned meal's ingredients from inventory.
// Quantities floor at zero and rows are never deleted; ingredients with no
// matching inventory row are skipped.
func (s *service) ConsumeMeal(ctx context.Context, planID, day, meal string) error {
	log := logger.FromContext(ctx)
	log.Info("ConsumeMeal called", "planID", planID, "day", day, "meal", meal)

	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return err
	}

	day = strings.ToLower(day)
	meal = strings.ToLower(meal)
	var entry *domain.MealPlanEntry
	for i := range plan.Entries {
		if plan.Entries[i].Day == day && plan.Entries[i].Meal == meal {
			entry = &plan.Entries[i]
			break
		}
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}

	recipe, err := s.recipeRepo.GetRecipeByID(ctx, entry.RecipeID)
	if err != nil {
		return err
	}

	tx, err := s.inventoryRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	for _, ing := range recipe.Ingredients {
		item, err := tx.GetItemByNormalizedNameForUpdate(ctx, ing.NormalizedName)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				continue
			}
			return err
		}

		remaining := item.Quantity - ing.Quantity*entry.Servings
		if remaining < 0 {
			remaining = 0
		}
		if err := tx.UpdateItemQuantity(ctx, item.ID, remaining); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit meal consumption: %w", err)
	}

	metrics.MealsConsumed.Inc()
	log.Info("Meal consumed", "planID", planID, "day", day, "meal", meal, "recipeID", recipe.ID)
	return nil
}
