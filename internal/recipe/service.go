package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/extract"
	"github.com/pantryops/shoplist/internal/ingredient"
	"github.com/pantryops/shoplist/internal/logger"
	"github.com/pantryops/shoplist/internal/metrics"
	"github.com/pantryops/shoplist/internal/repository"
)

const (
	// scrapeCacheSize bounds the number of scraped pages held in memory
	scrapeCacheSize = 128
	// scrapeCacheTTL is how long a scraped page result stays reusable
	scrapeCacheTTL = 15 * time.Minute
)

// PageFetcher retrieves the HTML body of a URL
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Service defines the recipe business logic
type Service interface {
	// CreateRecipe stores a recipe with normalized ingredient names
	CreateRecipe(ctx context.Context, input domain.RecipeInput) (*domain.Recipe, error)
	// ScrapeRecipe fetches a page, extracts its recipe and stores it
	ScrapeRecipe(ctx context.Context, url string) (*domain.Recipe, error)
	// GetRecipe retrieves one recipe by ID
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	// ListRecipes retrieves all stored recipes
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
}

type service struct {
	repo        repository.Recipe
	fetcher     PageFetcher
	scrapeCache *expirable.LRU[string, *extract.ScrapedRecipe]
}

// NewService creates a new recipe service
func NewService(repo repository.Recipe, fetcher PageFetcher) Service {
	return &service{
		repo:        repo,
		fetcher:     fetcher,
		scrapeCache: expirable.NewLRU[string, *extract.ScrapedRecipe](scrapeCacheSize, nil, scrapeCacheTTL),
	}
}

// CreateRecipe stores a recipe with normalized ingredient names
func (s *service) CreateRecipe(ctx context.Context, input domain.RecipeInput) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)
	log.Info("CreateRecipe called", "title", input.Title, "ingredients", len(input.Ingredients))

	recipe := &domain.Recipe{
		Title:        input.Title,
		Instructions: input.Instructions,
		SourceURL:    input.SourceURL,
	}
	for _, ing := range input.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredient{
			Name:           ing.Name,
			NormalizedName: ingredient.Normalize(ing.Name),
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
		})
	}

	id, err := s.repo.InsertRecipe(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	stored, err := s.repo.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get created recipe: %w", err)
	}

	metrics.RecipesCreated.Inc()
	return stored, nil
}

// ScrapeRecipe fetches a page, extracts its recipe and stores it
func (s *service) ScrapeRecipe(ctx context.Context, url string) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)
	log.Info("ScrapeRecipe called", "url", url)

	scraped, err := s.extractFromURL(ctx, url)
	if err != nil {
		metrics.ScrapeFailures.Inc()
		return nil, err
	}

	input := domain.RecipeInput{
		Title:        scraped.Title,
		Instructions: scraped.Instructions,
		SourceURL:    &scraped.SourceURL,
	}
	for _, ing := range scraped.Ingredients {
		input.Ingredients = append(input.Ingredients, domain.IngredientInput{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	stored, err := s.CreateRecipe(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecipesScraped.Inc()
	log.Info("Recipe scraped", "recipeID", stored.ID, "title", stored.Title)
	return stored, nil
}

// GetRecipe retrieves one recipe by ID
func (s *service) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListRecipes retrieves all stored recipes
func (s *service) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// extractFromURL fetches and extracts, reusing a recent result for the same
// URL so repeated scrape attempts don't re-fetch the page
func (s *service) extractFromURL(ctx context.Context, url string) (*extract.ScrapedRecipe, error) {
	if cached, found := s.scrapeCache.Get(url); found {
		logger.FromContext(ctx).Debug("Scrape cache hit", "url", url)
		return cached, nil
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	scraped, err := extract.FromHTML(html, url)
	if err != nil {
		return nil, err
	}

	s.scrapeCache.Add(url, scraped)
	return scraped, nil
}
