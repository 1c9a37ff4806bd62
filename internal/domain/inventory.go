package domain

import "time"

// InventoryItem is one tracked pantry row. Rows are unique per
// NormalizedName: adding an item whose normalized name matches an existing
// row merges into it instead of creating a second row.
type InventoryItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"-"`
	Quantity       float64   `json:"quantity"`
	Unit           *string   `json:"unit"`
	ExpiresOn      *Date     `json:"expires_on"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// InventoryItemInput carries the fields needed to add stock.
type InventoryItemInput struct {
	Name      string
	Quantity  float64
	Unit      *string
	ExpiresOn *Date
}

// ConsumeResult reports the outcome of a direct inventory consumption.
// When the remaining quantity reaches zero or below the row is deleted and
// Removed is true; Quantity then holds nothing meaningful.
type ConsumeResult struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Removed  bool     `json:"removed"`
}
