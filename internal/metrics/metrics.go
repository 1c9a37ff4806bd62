package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RecipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesCreated,
			Help: HelpTextRecipesCreated,
		},
	)

	RecipesScraped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesScraped,
			Help: HelpTextRecipesScraped,
		},
	)

	ScrapeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScrapeFailures,
			Help: HelpTextScrapeFailures,
		},
	)

	ShoppingListsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListsGenerated,
			Help: HelpTextShoppingListsGenerated,
		},
	)

	MealsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMealsConsumed,
			Help: HelpTextMealsConsumed,
		},
	)
)
