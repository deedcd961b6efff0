// Package constants defines identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in config.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session store names accepted in config.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Checkout event types published by the checkout orchestrator.
const (
	EventIntentCreated      = "intent_created"
	EventPaymentFailed      = "payment_failed"
	EventVerificationFailed = "verification_failed"
	EventOrderConfirmed     = "order_confirmed"
)

// LoginPath is where a client is sent when its backend credential lapses.
const LoginPath = "/login"
