package handler

import (
	"net/http"

	"github.com/pantryops/shoplist/internal/shopping"
)

// HandleGetShoppingList handles generating the deficit list for a week
// @Summary Generate shopping list
// @Description Compute the week's aggregated recipe demand minus tracked inventory
// @Tags shopping-list
// @Produce json
// @Param week_start query string true "Week start date (YYYY-MM-DD)"
// @Success 200 {object} domain.ShoppingList
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shopping-list [get]
func HandleGetShoppingList(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekStart, ok := GetWeekStartParam(r, w)
		if !ok {
			return
		}

		list, err := svc.GenerateList(r.Context(), weekStart)
		if err != nil {
			respondServiceError(w, r, "Generate shopping list", err)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}
