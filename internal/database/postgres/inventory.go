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

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{pool: pool}
}

const inventoryColumns = `inventory_item_id, item_name, normalized_name, quantity, unit, expires_on, created_at, updated_at`

// UpsertItem inserts an inventory row or merges into the row with the same
// normalized name: quantities add, the stored display name is kept, and
// unit/expiry only change when the new values are present
func (r *InventoryRepository) UpsertItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO inventory_items (item_name, normalized_name, quantity, unit, expires_on)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (normalized_name) DO UPDATE SET
		     quantity = inventory_items.quantity + EXCLUDED.quantity,
		     unit = COALESCE(EXCLUDED.unit, inventory_items.unit),
		     expires_on = COALESCE(EXCLUDED.expires_on, inventory_items.expires_on),
		     updated_at = NOW()
		 RETURNING `+inventoryColumns,
		item.Name, item.NormalizedName, item.Quantity, item.Unit, expiresOnArg(item.ExpiresOn),
	)

	stored, err := scanInventoryItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert inventory item: %w", err)
	}
	return stored, nil
}

// GetItemByID retrieves an inventory item by ID
func (r *InventoryRepository) GetItemByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 WHERE inventory_item_id = $1`,
		id,
	)

	item, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// ListItems retrieves all inventory items ordered by display name
func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 ORDER BY item_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory items: %w", err)
	}

	return items, nil
}

// DeleteItem removes an inventory item by ID
func (r *InventoryRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE inventory_item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// BeginTx starts a transaction for multi-row quantity adjustments
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &inventoryTx{tx: tx}, nil
}

// inventoryTx implements repository.Tx for inventory adjustments
type inventoryTx struct {
	tx pgx.Tx
}

func (t *inventoryTx) GetItemByIDForUpdate(ctx context.Context, id string) (*domain.InventoryItem, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 WHERE inventory_item_id = $1
		 FOR UPDATE`,
		id,
	)

	item, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item for update: %w", err)
	}
	return item, nil
}

func (t *inventoryTx) GetItemByNormalizedNameForUpdate(ctx context.Context, normalizedName string) (*domain.InventoryItem, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 WHERE normalized_name = $1
		 FOR UPDATE`,
		normalizedName,
	)

	item, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item for update: %w", err)
	}
	return item, nil
}

func (t *inventoryTx) UpdateItemQuantity(ctx context.Context, id string, quantity float64) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE inventory_items SET quantity = $2, updated_at = NOW() WHERE inventory_item_id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (t *inventoryTx) DeleteItem(ctx context.Context, id string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM inventory_items WHERE inventory_item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// scanInventoryItem maps one inventory row; DATE columns round-trip through
// time.Time
func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	var expiresOn *time.Time
	err := row.Scan(&item.ID, &item.Name, &item.NormalizedName, &item.Quantity, &item.Unit, &expiresOn, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if expiresOn != nil {
		d := domain.DateOf(*expiresOn)
		item.ExpiresOn = &d
	}
	return item, nil
}

func expiresOnArg(d *domain.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
