package ports

import (
	"context"

	"order-webhook/internal/config"
	"order-webhook/internal/domain"
)

// Dispatcher delivers a template message to the messaging API.
type Dispatcher interface {
	// Send performs exactly one delivery attempt.
	Send(ctx context.Context, creds config.SaaSCredentials, msg domain.TemplateMessage) error
}

// SettingsSource resolves the messaging API credentials for an event.
type SettingsSource interface {
	// Credentials returns a *domain.ConfigError when any credential is missing.
	Credentials(ctx context.Context) (config.SaaSCredentials, error)
}
