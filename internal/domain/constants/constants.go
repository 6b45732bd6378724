package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for collection request events
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in Pub/Sub message attributes
const (
	EventTypeCollectionRequested = "collection.requested"
)
