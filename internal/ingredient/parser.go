// Package ingredient parses free-text ingredient lines into structured
// quantity/unit/name triples and derives the normalized matching keys used
// for demand aggregation and inventory reconciliation.
package ingredient

import (
	"strconv"
	"strings"

	"github.com/pantryops/shoplist/internal/domain"
)

// commonUnits is the fixed vocabulary of cooking units recognised when
// splitting an ingredient line. Anything outside this set stays part of the
// ingredient name ("3 eggs" keeps "eggs" as the name, not a unit).
var commonUnits = map[string]bool{
	"g":           true,
	"gram":        true,
	"grams":       true,
	"kg":          true,
	"ml":          true,
	"l":           true,
	"litre":       true,
	"litres":      true,
	"liter":       true,
	"liters":      true,
	"cup":         true,
	"cups":        true,
	"tsp":         true,
	"teaspoon":    true,
	"teaspoons":   true,
	"tbsp":        true,
	"tablespoon":  true,
	"tablespoons": true,
	"ounce":       true,
	"ounces":      true,
	"oz":          true,
	"lb":          true,
	"lbs":         true,
	"pound":       true,
	"pounds":      true,
	"clove":       true,
	"cloves":      true,
	"count":       true,
	"piece":       true,
	"pieces":      true,
	"pinch":       true,
}

// Parse splits a free-text ingredient line into quantity, unit and name.
// It never fails: malformed numeric prefixes are treated as absent and the
// quantity defaults to 1. When the whole line is consumed by quantity and
// unit the original input is kept as the name so the name is never empty
// for non-empty input.
func Parse(text string) domain.ParsedIngredient {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return domain.ParsedIngredient{Quantity: 1.0, Name: ""}
	}

	quantity := 1.0
	var unit *string
	rest := tokens

	if value, consumed, ok := parseQuantity(tokens); ok {
		quantity = value
		rest = tokens[consumed:]
		if len(rest) > 0 {
			candidate := strings.ToLower(strings.TrimRight(rest[0], ".,"))
			if commonUnits[candidate] {
				u := rest[0]
				unit = &u
				rest = rest[1:]
			}
		}
	}

	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		name = text
	}

	return domain.ParsedIngredient{Quantity: quantity, Unit: unit, Name: name}
}

// parseQuantity reads a numeric quantity from the front of the token list.
// It returns the value, the number of tokens consumed and whether a
// quantity was found. A leading integer followed by a simple fraction is a
// mixed number ("2 1/2" -> 2.5) and consumes two tokens.
func parseQuantity(tokens []string) (float64, int, bool) {
	value, ok := parseNumeric(tokens[0])
	if !ok {
		return 0, 0, false
	}

	if whole, err := strconv.Atoi(tokens[0]); err == nil && len(tokens) > 1 {
		if frac, fracOK := parseFraction(tokens[1]); fracOK {
			return float64(whole) + frac, 2, true
		}
	}

	return value, 1, true
}

// parseNumeric parses a plain integer/decimal or a simple fraction "a/b".
// Zero denominators and anything else unparseable report failure; the
// caller falls back to the default quantity.
func parseNumeric(token string) (float64, bool) {
	if value, err := strconv.ParseFloat(token, 64); err == nil {
		return value, true
	}
	return parseFraction(token)
}

func parseFraction(token string) (float64, bool) {
	num, den, found := strings.Cut(token, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0, false
	}
	return float64(n) / float64(d), true
}
