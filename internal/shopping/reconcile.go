package shopping

import (
	"math"

	"github.com/pantryops/shoplist/internal/domain"
)

// IngredientNameLookup resolves a display name for a normalized name from
// stored recipe ingredients. It reports false when no ingredient matches.
type IngredientNameLookup func(normalizedName string) (string, bool)

// Reconcile nets aggregated demand against inventory and returns only the
// positive deficits, quantities rounded to 2 decimals. Display names are
// resolved per key: an inventory row with the same normalized name (unit
// ignored) wins, then any stored recipe ingredient, then the normalized
// name itself.
func Reconcile(demand *Demand, inventory []domain.InventoryItem, lookupName IngredientNameLookup) []domain.ShoppingListItem {
	available := make(map[Key]float64, len(inventory))
	for _, item := range inventory {
		key := Key{NormalizedName: item.NormalizedName, Unit: unitString(item.Unit)}
		available[key] += item.Quantity
	}

	items := make([]domain.ShoppingListItem, 0)
	for _, key := range demand.Keys() {
		deficit := demand.Quantity(key) - available[key]
		if deficit <= 0 {
			continue
		}
		items = append(items, domain.ShoppingListItem{
			Name:     resolveDisplayName(key.NormalizedName, inventory, lookupName),
			Quantity: round2(deficit),
			Unit:     demand.Unit(key),
		})
	}

	return items
}

func resolveDisplayName(normalizedName string, inventory []domain.InventoryItem, lookupName IngredientNameLookup) string {
	for _, item := range inventory {
		if item.NormalizedName == normalizedName {
			return item.Name
		}
	}
	if lookupName != nil {
		if name, ok := lookupName(normalizedName); ok {
			return name
		}
	}
	return normalizedName
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
