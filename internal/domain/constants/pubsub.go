// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)
