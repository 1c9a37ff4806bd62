package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/ingredient"
)

// ScrapedRecipe is the extractor's output, ready to be stored as a Recipe.
type ScrapedRecipe struct {
	Title        string
	Instructions *string
	SourceURL    string
	Ingredients  []domain.ParsedIngredient
}

const untitledRecipe = "Untitled Recipe"

// FromHTML extracts a recipe from a fetched page. The JSON-LD path is
// tried first; the heuristic fallback only runs when no Recipe node was
// found. When neither path yields a title plus at least one ingredient it
// returns domain.ErrExtractionFailed - never a panic and never a partial
// recipe.
func FromHTML(html, sourceURL string) (*ScrapedRecipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	if node, ok := findJSONLDRecipe(doc); ok {
		return convertRecipeNode(node, sourceURL), nil
	}

	return fallbackExtract(doc, sourceURL)
}

// findJSONLDRecipe scans every ld+json script block for a Recipe node.
// Malformed blocks are skipped so one broken script does not hide a valid
// recipe elsewhere on the page.
func findJSONLDRecipe(doc *goquery.Document) (map[string]json.RawMessage, bool) {
	var node map[string]json.RawMessage
	found := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var raw json.RawMessage
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return true // skip malformed block, keep scanning
		}
		if n, ok := locateRecipeNode(raw); ok {
			node = n
			found = true
			return false
		}
		return true
	})

	return node, found
}

// locateRecipeNode searches a parsed JSON-LD tree depth-first for the
// first node typed as Recipe. The tree is a closed variant: object, array
// or scalar. Objects are only descended through their @graph container,
// matching how sites aggregate schema.org nodes.
func locateRecipeNode(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	switch variantOf(raw) {
	case variantObject:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false
		}
		if isRecipeType(obj["@type"]) {
			return obj, true
		}
		if graph, ok := obj["@graph"]; ok {
			return locateRecipeNode(graph)
		}
		return nil, false

	case variantArray:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, false
		}
		for _, item := range items {
			if node, ok := locateRecipeNode(item); ok {
				return node, true
			}
		}
		return nil, false

	default:
		return nil, false
	}
}

type jsonVariant int

const (
	variantScalar jsonVariant = iota
	variantObject
	variantArray
)

// variantOf classifies a raw JSON value by its first non-space byte.
func variantOf(raw json.RawMessage) jsonVariant {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return variantObject
		case '[':
			return variantArray
		default:
			return variantScalar
		}
	}
	return variantScalar
}

// isRecipeType accepts both a bare "Recipe" string tag and an array
// containing it, the two shapes seen in the wild.
func isRecipeType(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single == "Recipe"
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, t := range many {
			if t == "Recipe" {
				return true
			}
		}
	}
	return false
}

// convertRecipeNode maps a schema.org Recipe node onto a ScrapedRecipe.
func convertRecipeNode(node map[string]json.RawMessage, sourceURL string) *ScrapedRecipe {
	title := stringField(node, "name")
	if title == "" {
		title = untitledRecipe
	}

	rawIngredients := node["recipeIngredient"]
	if rawIngredients == nil {
		rawIngredients = node["ingredients"]
	}

	return &ScrapedRecipe{
		Title:        title,
		Instructions: flattenInstructions(node["recipeInstructions"]),
		SourceURL:    sourceURL,
		Ingredients:  parseIngredientList(rawIngredients),
	}
}

func stringField(node map[string]json.RawMessage, key string) string {
	raw, ok := node[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// parseIngredientList runs every raw ingredient entry through the
// quantity/unit parser. Entries are either plain strings or objects
// carrying a name/text field.
func parseIngredientList(raw json.RawMessage) []domain.ParsedIngredient {
	if raw == nil {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	parsed := make([]domain.ParsedIngredient, 0, len(entries))
	for _, entry := range entries {
		parsed = append(parsed, ingredient.Parse(ingredientText(entry)))
	}
	return parsed
}

func ingredientText(entry json.RawMessage) string {
	var s string
	if err := json.Unmarshal(entry, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(entry, &obj); err != nil {
		return ""
	}
	if name := stringField(obj, "name"); name != "" {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(stringField(obj, "text"))
}
