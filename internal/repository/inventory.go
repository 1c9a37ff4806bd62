package repository

import (
	"context"

	"github.com/pantryops/shoplist/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	// Item operations
	UpsertItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error

	// BeginTx starts a transaction for multi-row quantity adjustments
	BeginTx(ctx context.Context) (Tx, error)
}
