package inventory

import (
	"context"
	"fmt"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/ingredient"
	"github.com/pantryops/shoplist/internal/logger"
	"github.com/pantryops/shoplist/internal/repository"
)

// Service defines the inventory business logic
type Service interface {
	// AddItem adds stock; an item whose normalized name matches an existing
	// row merges into it
	AddItem(ctx context.Context, input domain.InventoryItemInput) (*domain.InventoryItem, error)
	// ListItems retrieves all items ordered by display name
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	// ConsumeItem subtracts quantity from an item; the row is deleted when
	// nothing remains
	ConsumeItem(ctx context.Context, itemID string, quantity float64) (*domain.ConsumeResult, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

// AddItem adds stock, merging into any existing row with the same
// normalized name
func (s *service) AddItem(ctx context.Context, input domain.InventoryItemInput) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)
	log.Info("AddItem called", "name", input.Name, "quantity", input.Quantity)

	item := &domain.InventoryItem{
		Name:           input.Name,
		NormalizedName: ingredient.Normalize(input.Name),
		Quantity:       input.Quantity,
		Unit:           input.Unit,
		ExpiresOn:      input.ExpiresOn,
	}

	stored, err := s.repo.UpsertItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}

	return stored, nil
}

// ListItems retrieves all items ordered by display name
func (s *service) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// ConsumeItem subtracts quantity from an item. Consuming the full remaining
// amount (or more) deletes the row and reports it removed.
func (s *service) ConsumeItem(ctx context.Context, itemID string, quantity float64) (*domain.ConsumeResult, error) {
	log := logger.FromContext(ctx)
	log.Info("ConsumeItem called", "itemID", itemID, "quantity", quantity)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemByIDForUpdate(ctx, itemID)
	if err != nil {
		return nil, err
	}

	remaining := item.Quantity - quantity
	if remaining <= 0 {
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit consume: %w", err)
		}
		log.Info("Inventory item depleted", "itemID", item.ID, "name", item.Name)
		return &domain.ConsumeResult{ID: item.ID, Name: item.Name, Removed: true}, nil
	}

	if err := tx.UpdateItemQuantity(ctx, item.ID, remaining); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit consume: %w", err)
	}

	return &domain.ConsumeResult{ID: item.ID, Name: item.Name, Quantity: &remaining}, nil
}
