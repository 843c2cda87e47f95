package constant

import "time"

const (
	// BearerPrefix is the literal prefix expected on the Authorization header.
	BearerPrefix = "Bearer "

	// TokenTTL is the fixed validity window of an issued identity token.
	// Not externally configurable.
	TokenTTL = 24 * time.Hour

	// CacheTTL bounds how long cached marketplace reads stay fresh.
	CacheTTL = 10 * time.Minute

	// NotificationsTopic is the Kafka topic notifications are published to.
	NotificationsTopic = "notifications-topic"
)
