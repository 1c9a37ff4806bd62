package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/repository"
)

// MealPlanRepository implements repository.MealPlan for PostgreSQL
type MealPlanRepository struct {
	pool *pgxpool.Pool
}

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(pool *pgxpool.Pool) repository.MealPlan {
	return &MealPlanRepository{pool: pool}
}

// UpsertPlan creates a plan for the week, replacing all entries of any
// existing plan for the same week_start
func (r *MealPlanRepository) UpsertPlan(ctx context.Context, weekStart domain.Date, entries []domain.MealPlanEntry) (*domain.MealPlan, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	plan := &domain.MealPlan{}
	var week time.Time
	err = tx.QueryRow(ctx,
		`INSERT INTO meal_plans (week_start)
		 VALUES ($1)
		 ON CONFLICT (week_start) DO UPDATE SET updated_at = NOW()
		 RETURNING meal_plan_id, week_start, created_at, updated_at`,
		weekStart.Time,
	).Scan(&plan.ID, &week, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert meal plan: %w", err)
	}
	plan.WeekStart = domain.DateOf(week)

	if _, err := tx.Exec(ctx, `DELETE FROM meal_plan_entries WHERE meal_plan_id = $1`, plan.ID); err != nil {
		return nil, fmt.Errorf("failed to clear meal plan entries: %w", err)
	}

	for _, entry := range entries {
		var stored domain.MealPlanEntry
		err = tx.QueryRow(ctx,
			`INSERT INTO meal_plan_entries (meal_plan_id, day, meal, recipe_id, servings)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING meal_plan_entry_id, meal_plan_id, day, meal, recipe_id, servings`,
			plan.ID, entry.Day, entry.Meal, entry.RecipeID, entry.Servings,
		).Scan(&stored.ID, &stored.MealPlanID, &stored.Day, &stored.Meal, &stored.RecipeID, &stored.Servings)
		if err != nil {
			return nil, fmt.Errorf("failed to insert meal plan entry: %w", err)
		}
		plan.Entries = append(plan.Entries, stored)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	return plan, nil
}

// GetPlanByID retrieves a plan by ID with its entries
func (r *MealPlanRepository) GetPlanByID(ctx context.Context, id string) (*domain.MealPlan, error) {
	plan := &domain.MealPlan{}
	var week time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT meal_plan_id, week_start, created_at, updated_at
		 FROM meal_plans
		 WHERE meal_plan_id = $1`,
		id,
	).Scan(&plan.ID, &week, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	plan.WeekStart = domain.DateOf(week)

	entries, err := r.getEntries(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Entries = entries

	return plan, nil
}

// GetPlanByWeek retrieves the plan for the given week with its entries,
// each carrying the referenced recipe's title
func (r *MealPlanRepository) GetPlanByWeek(ctx context.Context, weekStart domain.Date) (*domain.MealPlan, error) {
	plan := &domain.MealPlan{}
	var week time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT meal_plan_id, week_start, created_at, updated_at
		 FROM meal_plans
		 WHERE week_start = $1`,
		weekStart.Time,
	).Scan(&plan.ID, &week, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	plan.WeekStart = domain.DateOf(week)

	entries, err := r.getEntries(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Entries = entries

	return plan, nil
}

// ListPlans retrieves all plans with their entries, newest week first
func (r *MealPlanRepository) ListPlans(ctx context.Context) ([]domain.MealPlan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT meal_plan_id, week_start, created_at, updated_at
		 FROM meal_plans
		 ORDER BY week_start DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.MealPlan, 0)
	for rows.Next() {
		var plan domain.MealPlan
		var week time.Time
		if err := rows.Scan(&plan.ID, &week, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		plan.WeekStart = domain.DateOf(week)
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meal plans: %w", err)
	}

	for i := range plans {
		entries, err := r.getEntries(ctx, plans[i].ID)
		if err != nil {
			return nil, err
		}
		plans[i].Entries = entries
	}

	return plans, nil
}

func (r *MealPlanRepository) getEntries(ctx context.Context, planID string) ([]domain.MealPlanEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.meal_plan_entry_id, e.meal_plan_id, e.day, e.meal, e.recipe_id, e.servings, r.title
		 FROM meal_plan_entries e
		 JOIN recipes r ON r.recipe_id = e.recipe_id
		 WHERE e.meal_plan_id = $1
		 ORDER BY e.day, e.meal`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plan entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.MealPlanEntry, 0)
	for rows.Next() {
		var entry domain.MealPlanEntry
		if err := rows.Scan(&entry.ID, &entry.MealPlanID, &entry.Day, &entry.Meal, &entry.RecipeID, &entry.Servings, &entry.RecipeTitle); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meal plan entries: %w", err)
	}

	return entries, nil
}
