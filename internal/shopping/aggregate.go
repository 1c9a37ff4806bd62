// Package shopping computes deficit-driven shopping lists: it aggregates
// ingredient demand over a meal plan's entries and nets it against tracked
// inventory.
package shopping

import (
	"github.com/pantryops/shoplist/internal/domain"
)

// Key identifies matchable demand and supply. The unit component is the
// literal unit string (empty when absent), not a normalized form: "Cup"
// and "cup" deliberately do not match. Names, by contrast, are matched on
// their normalized form.
type Key struct {
	NormalizedName string
	Unit           string
}

// Demand maps keys to accumulated required quantities. Key order is the
// order of first observation, so list generation is deterministic for a
// given plan.
type Demand struct {
	quantities map[Key]float64
	units      map[Key]*string
	order      []Key
}

// NewDemand creates an empty demand accumulator.
func NewDemand() *Demand {
	return &Demand{
		quantities: make(map[Key]float64),
		units:      make(map[Key]*string),
	}
}

// Add accumulates quantity for a key and records its display unit.
func (d *Demand) Add(key Key, quantity float64, unit *string) {
	if _, seen := d.quantities[key]; !seen {
		d.order = append(d.order, key)
	}
	d.quantities[key] += quantity
	d.units[key] = unit
}

// Keys returns all demand keys in first-observation order.
func (d *Demand) Keys() []Key {
	return d.order
}

// Quantity returns the accumulated demand for key.
func (d *Demand) Quantity(key Key) float64 {
	return d.quantities[key]
}

// Unit returns the display unit recorded for key.
func (d *Demand) Unit(key Key) *string {
	return d.units[key]
}

// AggregateDemand computes total required quantity per key across a plan's
// entries: each ingredient contributes quantity * servings. Entries whose
// recipe is missing from the lookup are skipped; resolving references is
// the caller's job.
func AggregateDemand(entries []domain.MealPlanEntry, recipes map[string]domain.Recipe) *Demand {
	demand := NewDemand()

	for _, entry := range entries {
		recipe, ok := recipes[entry.RecipeID]
		if !ok {
			continue
		}
		for _, ing := range recipe.Ingredients {
			key := Key{NormalizedName: ing.NormalizedName, Unit: unitString(ing.Unit)}
			demand.Add(key, ing.Quantity*entry.Servings, ing.Unit)
		}
	}

	return demand
}

func unitString(unit *string) string {
	if unit == nil {
		return ""
	}
	return *unit
}
