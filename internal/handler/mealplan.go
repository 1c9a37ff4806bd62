package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/logger"
	"github.com/pantryops/shoplist/internal/mealplan"
)

// MealPlanEntryRequest assigns a recipe to one slot of a plan
type MealPlanEntryRequest struct {
	Day      string   `json:"day" validate:"required,weekday"`
	Meal     string   `json:"meal" validate:"required,max=20"`
	RecipeID string   `json:"recipe_id" validate:"required,uuid"`
	Servings *float64 `json:"servings" validate:"omitempty,gt=0"`
}

// CreateMealPlanRequest represents the request to create a week's plan
type CreateMealPlanRequest struct {
	WeekStart string                 `json:"week_start" validate:"required,datetime=2006-01-02"`
	Entries   []MealPlanEntryRequest `json:"entries" validate:"dive"`
}

// HandleCreateMealPlan handles creating or replacing a week's plan
// @Summary Create meal plan
// @Description Store a week's plan, replacing any existing plan for the same week
// @Tags meal-plans
// @Accept json
// @Produce json
// @Param request body CreateMealPlanRequest true "Plan details"
// @Success 201 {object} domain.MealPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /meal-plans [post]
func HandleCreateMealPlan(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateMealPlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create meal plan"); err != nil {
			return
		}

		weekStart, err := domain.ParseDate(req.WeekStart)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidWeekStart)
			return
		}

		entries := make([]domain.MealPlanEntryInput, 0, len(req.Entries))
		for _, entry := range req.Entries {
			servings := 1.0
			if entry.Servings != nil {
				servings = *entry.Servings
			}
			entries = append(entries, domain.MealPlanEntryInput{
				Day:      entry.Day,
				Meal:     entry.Meal,
				RecipeID: entry.RecipeID,
				Servings: servings,
			})
		}

		plan, err := svc.CreatePlan(r.Context(), weekStart, entries)
		if err != nil {
			respondServiceError(w, r, "Create meal plan", err)
			return
		}

		log.Info("Meal plan created", "planID", plan.ID, "weekStart", plan.WeekStart.String(), "entries", len(plan.Entries))
		respondJSON(w, http.StatusCreated, plan)
	}
}

// HandleGetMealPlan handles retrieving the plan for a week
// @Summary Get meal plan
// @Description Retrieve the plan for the week given by the week_start query parameter
// @Tags meal-plans
// @Produce json
// @Param week_start query string true "Week start date (YYYY-MM-DD)"
// @Success 200 {object} domain.MealPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /meal-plans [get]
func HandleGetMealPlan(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekStart, ok := GetWeekStartParam(r, w)
		if !ok {
			return
		}

		plan, err := svc.GetPlanByWeek(r.Context(), weekStart)
		if err != nil {
			respondServiceError(w, r, "Get meal plan", err)
			return
		}

		respondJSON(w, http.StatusOK, plan)
	}
}

// ConsumeMealRequest represents the request to consume one planned meal
type ConsumeMealRequest struct {
	Day  string `json:"day" validate:"required,weekday"`
	Meal string `json:"meal" validate:"required,max=20"`
}

// HandleConsumeMeal handles deducting a planned meal's ingredients from inventory
// @Summary Consume planned meal
// @Description Deduct one planned meal's ingredients from inventory, flooring at zero
// @Tags meal-plans
// @Accept json
// @Produce json
// @Param id path string true "Meal plan ID"
// @Param request body ConsumeMealRequest true "Slot to consume"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /meal-plans/{id}/consume [post]
func HandleConsumeMeal(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		planID := chi.URLParam(r, "id")

		var req ConsumeMealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Consume meal"); err != nil {
			return
		}

		if err := svc.ConsumeMeal(r.Context(), planID, req.Day, req.Meal); err != nil {
			respondServiceError(w, r, "Consume meal", err)
			return
		}

		log.Info("Meal consumed", "planID", planID, "day", req.Day, "meal", req.Meal)
		respondJSON(w, http.StatusOK, StatusResponse{Status: MsgMealConsumedSuccess})
	}
}
