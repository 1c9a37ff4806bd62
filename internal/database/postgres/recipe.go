package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/repository"
)

// RecipeRepository implements repository.Recipe for PostgreSQL
type RecipeRepository struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(pool *pgxpool.Pool) repository.Recipe {
	return &RecipeRepository{pool: pool}
}

// InsertRecipe stores a recipe and its ingredient lines in one transaction
func (r *RecipeRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var recipeID string
	err = tx.QueryRow(ctx,
		`INSERT INTO recipes (title, instructions, source_url)
		 VALUES ($1, $2, $3)
		 RETURNING recipe_id`,
		recipe.Title, recipe.Instructions, recipe.SourceURL,
	).Scan(&recipeID)
	if err != nil {
		return "", fmt.Errorf("failed to insert recipe: %w", err)
	}

	for i, ing := range recipe.Ingredients {
		_, err = tx.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_name, normalized_name, quantity, unit, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			recipeID, ing.Name, ing.NormalizedName, ing.Quantity, ing.Unit, i,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert recipe ingredient: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	return recipeID, nil
}

// GetRecipeByID retrieves a recipe with its ingredient lines
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := r.pool.QueryRow(ctx,
		`SELECT recipe_id, title, instructions, source_url, created_at, updated_at
		 FROM recipes
		 WHERE recipe_id = $1`,
		id,
	).Scan(&recipe.ID, &recipe.Title, &recipe.Instructions, &recipe.SourceURL, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	ingredients, err := r.getIngredients(ctx, []string{recipe.ID})
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients[recipe.ID]

	return recipe, nil
}

// GetRecipesByIDs retrieves recipes keyed by ID; missing IDs are absent from
// the result, not an error
func (r *RecipeRepository) GetRecipesByIDs(ctx context.Context, ids []string) (map[string]domain.Recipe, error) {
	if len(ids) == 0 {
		return map[string]domain.Recipe{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT recipe_id, title, instructions, source_url, created_at, updated_at
		 FROM recipes
		 WHERE recipe_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}
	defer rows.Close()

	recipes := make(map[string]domain.Recipe, len(ids))
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Title, &recipe.Instructions, &recipe.SourceURL, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes[recipe.ID] = recipe
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	found := make([]string, 0, len(recipes))
	for id := range recipes {
		found = append(found, id)
	}
	ingredients, err := r.getIngredients(ctx, found)
	if err != nil {
		return nil, err
	}
	for id, ings := range ingredients {
		recipe := recipes[id]
		recipe.Ingredients = ings
		recipes[id] = recipe
	}

	return recipes, nil
}

// ListRecipes retrieves all recipes with their ingredient lines, newest first
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT recipe_id, title, instructions, source_url, created_at, updated_at
		 FROM recipes
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Title, &recipe.Instructions, &recipe.SourceURL, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
		ids = append(ids, recipe.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	ingredients, err := r.getIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].Ingredients = ingredients[recipes[i].ID]
	}

	return recipes, nil
}

// GetIngredientName returns the display name of any stored ingredient line
// matching the normalized name, or nil when none matches
func (r *RecipeRepository) GetIngredientName(ctx context.Context, normalizedName string) (*string, error) {
	var name string
	err := r.pool.QueryRow(ctx,
		`SELECT ingredient_name
		 FROM recipe_ingredients
		 WHERE normalized_name = $1
		 LIMIT 1`,
		normalizedName,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ingredient name: %w", err)
	}
	return &name, nil
}

func (r *RecipeRepository) getIngredients(ctx context.Context, recipeIDs []string) (map[string][]domain.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return map[string][]domain.RecipeIngredient{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT recipe_ingredient_id, recipe_id, ingredient_name, normalized_name, quantity, unit
		 FROM recipe_ingredients
		 WHERE recipe_id = ANY($1)
		 ORDER BY recipe_id, position`,
		recipeIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := make(map[string][]domain.RecipeIngredient, len(recipeIDs))
	for rows.Next() {
		var ing domain.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.NormalizedName, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		ingredients[ing.RecipeID] = append(ingredients[ing.RecipeID], ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipe ingredients: %w", err)
	}

	return ingredients, nil
}
