package mealplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/repository"
)

// MockPlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) UpsertPlan(ctx context.Context, weekStart domain.Date, entries []domain.MealPlanEntry) (*domain.MealPlan, error) {
	args := m.Called(ctx, weekStart, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockPlanRepository) GetPlanByID(ctx context.Context, id string) (*domain.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockPlanRepository) GetPlanByWeek(ctx context.Context, weekStart domain.Date) (*domain.MealPlan, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MealPlan), args.Error(1)
}

func (m *MockPlanRepository) ListPlans(ctx context.Context) ([]domain.MealPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MealPlan), args.Error(1)
}

// MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (string, error) {
	args := m.Called(ctx, recipe)
	return args.String(0), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipesByIDs(ctx context.Context, ids []string) (map[string]domain.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetIngredientName(ctx context.Context, normalizedName string) (*string, error) {
	args := m.Called(ctx, normalizedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

// MockInventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) UpsertItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetItemByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetItemByIDForUpdate(ctx context.Context, id string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) GetItemByNormalizedNameForUpdate(ctx context.Context, normalizedName string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, normalizedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) UpdateItemQuantity(ctx context.Context, id string, quantity float64) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockTx) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Tests

func newTestService() (*MockPlanRepository, *MockRecipeRepository, *MockInventoryRepository, Service) {
	planRepo := new(MockPlanRepository)
	recipeRepo := new(MockRecipeRepository)
	invRepo := new(MockInventoryRepository)
	return planRepo, recipeRepo, invRepo, NewService(planRepo, recipeRepo, invRepo)
}

func TestCreatePlan_LowercasesDayAndMeal(t *testing.T) {
	planRepo, recipeRepo, _, svc := newTestService()
	ctx := context.Background()
	week := domain.NewDate(2026, time.March, 2)

	recipes := map[string]domain.Recipe{
		"recipe-1": {ID: "recipe-1", Title: "Pancakes"},
	}
	recipeRepo.On("GetRecipesByIDs", ctx, []string{"recipe-1"}).Return(recipes, nil)

	saved := &domain.MealPlan{
		ID:        "plan-1",
		WeekStart: week,
		Entries: []domain.MealPlanEntry{
			{Day: "monday", Meal: "breakfast", RecipeID: "recipe-1", Servings: 2},
		},
	}
	planRepo.On("UpsertPlan", ctx, week, mock.MatchedBy(func(entries []domain.MealPlanEntry) bool {
		return len(entries) == 1 && entries[0].Day == "monday" && entries[0].Meal == "breakfast"
	})).Return(saved, nil)

	plan, err := svc.CreatePlan(ctx, week, []domain.MealPlanEntryInput{
		{Day: "Monday", Meal: "BREAKFAST", RecipeID: "recipe-1", Servings: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "plan-1", plan.ID)
	assert.Equal(t, "Pancakes", plan.Entries[0].RecipeTitle)
	planRepo.AssertExpectations(t)
	recipeRepo.AssertExpectations(t)
}

func TestCreatePlan_UnknownRecipe(t *testing.T) {
	planRepo, recipeRepo, _, svc := newTestService()
	ctx := context.Background()
	week := domain.NewDate(2026, time.March, 2)

	// Repository returns only the recipes that exist
	recipeRepo.On("GetRecipesByIDs", ctx, []string{"missing"}).Return(map[string]domain.Recipe{}, nil)

	plan, err := svc.CreatePlan(ctx, week, []domain.MealPlanEntryInput{
		{Day: "monday", Meal: "dinner", RecipeID: "missing", Servings: 1},
	})

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domain.ErrRecipeNotFound))
	assert.Contains(t, err.Error(), "missing")
	planRepo.AssertNotCalled(t, "UpsertPlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPlanByWeek_NotFound(t *testing.T) {
	planRepo, _, _, svc := newTestService()
	ctx := context.Background()
	week := domain.NewDate(2026, time.March, 2)

	planRepo.On("GetPlanByWeek", ctx, week).Return(nil, domain.ErrMealPlanNotFound)

	plan, err := svc.GetPlanByWeek(ctx, week)

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domain.ErrMealPlanNotFound))
}

func TestConsumeMeal_DeductsIngredients(t *testing.T) {
	planRepo, recipeRepo, invRepo, svc := newTestService()
	tx := new(MockTx)
	ctx := context.Background()

	plan := &domain.MealPlan{
		ID:        "plan-1",
		WeekStart: domain.NewDate(2026, time.March, 2),
		Entries: []domain.MealPlanEntry{
			{Day: "monday", Meal: "dinner", RecipeID: "recipe-1", Servings: 2},
		},
	}
	planRepo.On("GetPlanByID", ctx, "plan-1").Return(plan, nil)

	recipe := &domain.Recipe{
		ID:    "recipe-1",
		Title: "Omelette",
		Ingredients: []domain.RecipeIngredient{
			{Name: "Eggs", NormalizedName: "eggs", Quantity: 3},
			{Name: "Butter", NormalizedName: "butter", Quantity: 0.5},
		},
	}
	recipeRepo.On("GetRecipeByID", ctx, "recipe-1").Return(recipe, nil)

	invRepo.On("BeginTx", ctx).Return(tx, nil)
	// 10 eggs in stock, 3*2 servings consumed -> 4 remain
	tx.On("GetItemByNormalizedNameForUpdate", ctx, "eggs").
		Return(&domain.InventoryItem{ID: "item-eggs", NormalizedName: "eggs", Quantity: 10}, nil)
	tx.On("UpdateItemQuantity", ctx, "item-eggs", 4.0).Return(nil)
	// 0.5 butter in stock, 1.0 needed -> floors at zero, row kept
	tx.On("GetItemByNormalizedNameForUpdate", ctx, "butter").
		Return(&domain.InventoryItem{ID: "item-butter", NormalizedName: "butter", Quantity: 0.5}, nil)
	tx.On("UpdateItemQuantity", ctx, "item-butter", 0.0).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(errors.New(domain.ErrMsgTxClosed)).Maybe()

	err := svc.ConsumeMeal(ctx, "plan-1", "Monday", "Dinner")

	require.NoError(t, err)
	tx.AssertExpectations(t)
}

func TestConsumeMeal_SkipsUntrackedIngredients(t *testing.T) {
	planRepo, recipeRepo, invRepo, svc := newTestService()
	tx := new(MockTx)
	ctx := context.Background()

	plan := &domain.MealPlan{
		ID: "plan-1",
		Entries: []domain.MealPlanEntry{
			{Day: "tuesday", Meal: "lunch", RecipeID: "recipe-1", Servings: 1},
		},
	}
	planRepo.On("GetPlanByID", ctx, "plan-1").Return(plan, nil)

	recipe := &domain.Recipe{
		ID: "recipe-1",
		Ingredients: []domain.RecipeIngredient{
			{Name: "Saffron", NormalizedName: "saffron", Quantity: 1},
		},
	}
	recipeRepo.On("GetRecipeByID", ctx, "recipe-1").Return(recipe, nil)

	invRepo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetItemByNormalizedNameForUpdate", ctx, "saffron").Return(nil, domain.ErrItemNotFound)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(errors.New(domain.ErrMsgTxClosed)).Maybe()

	err := svc.ConsumeMeal(ctx, "plan-1", "tuesday", "lunch")

	require.NoError(t, err)
	tx.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsumeMeal_EntryNotFound(t *testing.T) {
	planRepo, _, _, svc := newTestService()
	ctx := context.Background()

	plan := &domain.MealPlan{
		ID: "plan-1",
		Entries: []domain.MealPlanEntry{
			{Day: "monday", Meal: "dinner", RecipeID: "recipe-1", Servings: 1},
		},
	}
	planRepo.On("GetPlanByID", ctx, "plan-1").Return(plan, nil)

	err := svc.ConsumeMeal(ctx, "plan-1", "sunday", "brunch")

	assert.True(t, errors.Is(err, domain.ErrEntryNotFound))
}

func TestConsumeMeal_PlanNotFound(t *testing.T) {
	planRepo, _, _, svc := newTestService()
	ctx := context.Background()

	planRepo.On("GetPlanByID", ctx, "nope").Return(nil, domain.ErrMealPlanNotFound)

	err := svc.ConsumeMeal(ctx, "nope", "monday", "dinner")

	assert.True(t, errors.Is(err, domain.ErrMealPlanNotFound))
}
