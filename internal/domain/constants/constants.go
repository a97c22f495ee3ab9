// Package constants contains values shared between configuration and wiring code.
package constants

// Pub/Sub providers for analysis job delivery.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	// PubSubProviderInline runs the analysis in-process instead of going through a broker.
	PubSubProviderInline = "inline"
)

const (
	// DefaultTimezone is used when ledger.timezone is not configured.
	DefaultTimezone = "UTC"

	// DefaultReviewConfidenceThreshold sends analyzer results below this mean confidence to review.
	DefaultReviewConfidenceThreshold = 0.5

	// DefaultGeminiModel matches the model the analysis prompt was tuned for.
	DefaultGeminiModel = "gemini-2.5-flash-lite"
)
