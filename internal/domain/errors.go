package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Not-found errors
	ErrMsgRecipeNotFound   = "recipe not found"
	ErrMsgItemNotFound     = "inventory item not found"
	ErrMsgMealPlanNotFound = "meal plan not found"
	ErrMsgEntryNotFound    = "meal plan entry not found"

	// Scrape errors
	ErrMsgExtractionFailed = "unable to extract recipe"
	ErrMsgFetchFailed      = "failed to fetch page"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Not-found errors
	ErrRecipeNotFound   = errors.New(ErrMsgRecipeNotFound)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrMealPlanNotFound = errors.New(ErrMsgMealPlanNotFound)
	ErrEntryNotFound    = errors.New(ErrMsgEntryNotFound)

	// Scrape errors
	// ErrExtractionFailed means the page was fetched but yielded no usable
	// recipe; ErrFetchFailed means the page could not be retrieved at all.
	// The two are never folded into each other.
	ErrExtractionFailed = errors.New(ErrMsgExtractionFailed)
	ErrFetchFailed      = errors.New(ErrMsgFetchFailed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
