package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pantryops/shoplist/internal/domain"
	"github.com/pantryops/shoplist/internal/ingredient"
)

// Selector sets for pages without machine-readable metadata. Kept small on
// purpose: the fallback targets the common hand-rolled recipe markup, not
// arbitrary pages.
const (
	titleSelector       = "h1"
	ingredientSelector  = "li.ingredient, .ingredients li"
	instructionSelector = "li.instruction, .instructions li, .direction"
)

// fallbackExtract guesses a recipe from markup structure. A title without
// any ingredient candidates is not a usable recipe, so both are required.
func fallbackExtract(doc *goquery.Document, sourceURL string) (*ScrapedRecipe, error) {
	title := nodeText(doc.Find(titleSelector).First())
	if title == "" {
		title = nodeText(doc.Find("title").First())
	}
	if title == "" {
		return nil, fmt.Errorf("%w: no title element", domain.ErrExtractionFailed)
	}

	ingredientNodes := doc.Find(ingredientSelector)
	if ingredientNodes.Length() == 0 {
		return nil, fmt.Errorf("%w: no ingredient elements", domain.ErrExtractionFailed)
	}

	parsed := make([]domain.ParsedIngredient, 0, ingredientNodes.Length())
	ingredientNodes.Each(func(_ int, s *goquery.Selection) {
		parsed = append(parsed, ingredient.Parse(nodeText(s)))
	})

	var instructions *string
	var steps []string
	doc.Find(instructionSelector).Each(func(_ int, s *goquery.Selection) {
		if text := nodeText(s); text != "" {
			steps = append(steps, text)
		}
	})
	if len(steps) > 0 {
		joined := strings.Join(steps, "\n")
		instructions = &joined
	}

	return &ScrapedRecipe{
		Title:        title,
		Instructions: instructions,
		SourceURL:    sourceURL,
		Ingredients:  parsed,
	}, nil
}

// nodeText extracts an element's text with inner whitespace collapsed to
// single spaces.
func nodeText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
