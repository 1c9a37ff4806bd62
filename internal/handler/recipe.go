package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/logger"
	"github.com/pantryops/shoplist/internal/recipe"
)

// IngredientRequest is one ingredient line of a recipe create request
type IngredientRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     *string `json:"unit" validate:"omitempty,max=50"`
}

// CreateRecipeRequest represents the request to create a recipe
type CreateRecipeRequest struct {
	Title        string              `json:"title" validate:"required,max=255"`
	Ingredients  []IngredientRequest `json:"ingredients" validate:"dive"`
	Instructions *string             `json:"instructions"`
	SourceURL    *string             `json:"source_url" validate:"omitempty,max=2048"`
}

// HandleCreateRecipe handles creating a recipe from structured input
// @Summary Create recipe
// @Description Store a recipe with its ingredient lines
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "Recipe details"
// @Success 201 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [post]
func HandleCreateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
			return
		}

		input := domain.RecipeInput{
			Title:        req.Title,
			Instructions: req.Instructions,
			SourceURL:    req.SourceURL,
		}
		for _, ing := range req.Ingredients {
			input.Ingredients = append(input.Ingredients, domain.IngredientInput{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
			})
		}

		created, err := svc.CreateRecipe(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, "Create recipe", err)
			return
		}

		log.Info("Recipe created", "recipeID", created.ID, "title", created.Title)
		respondJSON(w, http.StatusCreated, created)
	}
}

// ScrapeRecipeRequest represents the request to scrape a recipe from a URL
type ScrapeRecipeRequest struct {
	URL string `json:"url" validate:"required,url,max=2048"`
}

// HandleScrapeRecipe handles extracting and storing a recipe from a web page
// @Summary Scrape recipe from URL
// @Description Fetch a page, extract its recipe and store it
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body ScrapeRecipeRequest true "Page URL"
// @Success 201 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /recipes/scrape [post]
func HandleScrapeRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ScrapeRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Scrape recipe"); err != nil {
			return
		}

		created, err := svc.ScrapeRecipe(r.Context(), req.URL)
		if err != nil {
			respondServiceError(w, r, "Scrape recipe", err)
			return
		}

		log.Info("Recipe scraped", "recipeID", created.ID, "url", req.URL)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListRecipes handles listing all stored recipes
// @Summary List recipes
// @Description Retrieve all stored recipes with their ingredient lines
// @Tags recipes
// @Produce json
// @Success 200 {array} domain.Recipe
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func HandleListRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.ListRecipes(r.Context())
		if err != nil {
			respondServiceError(w, r, "List recipes", err)
			return
		}

		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecipe handles retrieving one recipe by ID
// @Summary Get recipe
// @Description Retrieve one recipe by ID
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{id} [get]
func HandleGetRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID := chi.URLParam(r, "id")

		found, err := svc.GetRecipe(r.Context(), recipeID)
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}
