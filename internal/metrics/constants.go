package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRecipesCreated         = "recipes_created_total"
	MetricNameRecipesScraped         = "recipes_scraped_total"
	MetricNameScrapeFailures         = "recipe_scrape_failures_total"
	MetricNameShoppingListsGenerated = "shopping_lists_generated_total"
	MetricNameMealsConsumed          = "meals_consumed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRecipesCreated         = "Total number of recipes created"
	HelpTextRecipesScraped         = "Total number of recipes successfully scraped from URLs"
	HelpTextScrapeFailures         = "Total number of recipe scrape attempts that failed"
	HelpTextShoppingListsGenerated = "Total number of shopping lists generated"
	HelpTextMealsConsumed          = "Total number of planned meals consumed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
