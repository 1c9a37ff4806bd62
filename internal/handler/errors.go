package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidWeekStart  = "Invalid week_start date, expected YYYY-MM-DD"

	// Recipe operation error messages
	ErrMsgCreateRecipeFailed = "Failed to create recipe"
	ErrMsgScrapeRecipeFailed = "Failed to scrape recipe"
	ErrMsgListRecipesFailed  = "Failed to list recipes"
	ErrMsgGetRecipeFailed    = "Failed to get recipe"

	// Inventory operation error messages
	ErrMsgAddItemFailed       = "Failed to add item"
	ErrMsgListInventoryFailed = "Failed to list inventory"
	ErrMsgConsumeItemFailed   = "Failed to consume item"

	// Meal plan operation error messages
	ErrMsgCreatePlanFailed  = "Failed to create meal plan"
	ErrMsgGetPlanFailed     = "Failed to get meal plan"
	ErrMsgConsumeMealFailed = "Failed to consume meal"

	// Shopping list operation error messages
	ErrMsgGenerateListFailed = "Failed to generate shopping list"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgMealConsumedSuccess = "ok"
)
