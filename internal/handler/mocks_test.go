package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pantryops/shoplist/internal/domain"
)

// MockRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, input domain.RecipeInput) (*domain.Recipe, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) ScrapeRecipe(ctx context.Context, url string) (*domain.Recipe, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

// MockInventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AddItem(ctx context.Context, input domain.InventoryItemInput) (*domain.InventoryItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) ConsumeItem(ctx context.Context, itemID string, quantity float64) (*domain.ConsumeResult, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsumeResult), args.Error(1)
}

// MockMealPlanService
type MockMealPlanService struct {
	mock.Mock
}

func (m *MockMealPlanService) CreatePlan(ctx context.Context, weekStart domain.Date, entries []domain.MealPlanEntryInput) (*domain.MealPlan, error) {
	args := m.Called(ctx, weekStart, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockMealPlanService) GetPlanByWeek(ctx context.Context, weekStart domain.Date) (*domain.MealPlan, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockMealPlanService) ConsumeMeal(ctx context.Context, planID, day, meal string) error {
	args := m.Called(ctx, planID, day, meal)
	return args.Error(0)
}

// MockShoppingService
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) GenerateList(ctx context.Context, weekStart domain.Date) (*domain.ShoppingList, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}
