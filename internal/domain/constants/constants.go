package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache key prefixes
const (
	AnalyticsSummaryCacheKeyPrefix = "analytics:summary:"
)

// Echo context keys
const (
	ContextKeyUsername  = "username"
	ContextKeyRequestID = "request_id"
)
