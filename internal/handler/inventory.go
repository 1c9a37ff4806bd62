package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/inventory"
	"github.com/pantryops/shoplist/internal/logger"
)

// AddInventoryItemRequest represents the request to add stock
type AddInventoryItemRequest struct {
	Name      string       `json:"name" validate:"required,max=255"`
	Quantity  float64      `json:"quantity" validate:"gte=0"`
	Unit      *string      `json:"unit" validate:"omitempty,max=50"`
	ExpiresOn *domain.Date `json:"expires_on"`
}

// HandleAddInventoryItem handles adding stock to the inventory
// @Summary Add inventory item
// @Description Add stock; items with a matching normalized name merge into one row
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddInventoryItemRequest true "Item details"
// @Success 201 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [post]
func HandleAddInventoryItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddInventoryItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add inventory item"); err != nil {
			return
		}

		stored, err := svc.AddItem(r.Context(), domain.InventoryItemInput{
			Name:      req.Name,
			Quantity:  req.Quantity,
			Unit:      req.Unit,
			ExpiresOn: req.ExpiresOn,
		})
		if err != nil {
			respondServiceError(w, r, "Add inventory item", err)
			return
		}

		log.Info("Inventory item added", "itemID", stored.ID, "name", stored.Name, "quantity", stored.Quantity)
		respondJSON(w, http.StatusCreated, stored)
	}
}

// HandleListInventory handles listing all inventory items
// @Summary List inventory
// @Description Retrieve all inventory items ordered by display name
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.InventoryItem
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func HandleListInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, "List inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// ConsumeItemRequest represents the request to consume stock directly
type ConsumeItemRequest struct {
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

// HandleConsumeItem handles consuming stock from one inventory item
// @Summary Consume inventory item
// @Description Subtract quantity from an item; the row is deleted when nothing remains
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory item ID"
// @Param request body ConsumeItemRequest true "Quantity to consume"
// @Success 200 {object} domain.ConsumeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id}/consume [post]
func HandleConsumeItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		itemID := chi.URLParam(r, "id")

		var req ConsumeItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Consume inventory item"); err != nil {
			return
		}

		result, err := svc.ConsumeItem(r.Context(), itemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Consume inventory item", err)
			return
		}

		log.Info("Inventory item consumed", "itemID", itemID, "quantity", req.Quantity, "removed", result.Removed)
		respondJSON(w, http.StatusOK, result)
	}
}
