package repository

import (
	"context"

	"github.com/pantryops/shoplist/internal/domain"
)

// Tx defines the interface for transactional inventory operations
type Tx interface {
	GetItemByIDForUpdate(ctx context.Context, id string) (*domain.InventoryItem, error)
	GetItemByNormalizedNameForUpdate(ctx context.Context, normalizedName string) (*domain.InventoryItem, error)
	UpdateItemQuantity(ctx context.Context, id string, quantity float64) error
	DeleteItem(ctx context.Context, id string) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
