package config

import (
	"os"
	"time"
)

// AppConfig holds application-level configuration.
type AppConfig struct {
	Server ServerConfig
	SaaS   SaaSSettings
	Stores StoreSettings
}

// ServerConfig holds the local HTTP server settings.
type ServerConfig struct {
	Port string
}

// SaaSSettings holds the non-secret settings of the messaging API client.
// Credentials are resolved per event by a Resolver.
type SaaSSettings struct {
	SecretName string
	Timeout    time.Duration
}

// StoreSettings controls store selection.
type StoreSettings struct {
	DefaultTag string
}

// Environment variables holding the messaging API credentials.
const (
	EnvBaseURL   = "SAAS_API_BASE_URL"
	EnvVendorUID = "SAAS_VENDOR_UID"
	EnvAPIToken  = "SAAS_API_TOKEN"
)

// LoadFromEnv loads configuration from environment variables with sensible defaults.
func LoadFromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		SaaS: SaaSSettings{
			SecretName: os.Getenv("SAAS_SECRET_NAME"),
			Timeout:    parseDuration(getEnvOrDefault("SAAS_TIMEOUT", "10s")),
		},
		Stores: StoreSettings{
			DefaultTag: getEnvOrDefault("DEFAULT_STORE_TAG", "EQ"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
