package config

import (
	"errors"
	"fmt"
)

// Validate validates the application configuration.
func (c *AppConfig) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	}

	if c.SaaS.Timeout <= 0 {
		errs = append(errs, errors.New("saas timeout must be a positive duration"))
	}

	if c.Stores.DefaultTag == "" {
		errs = append(errs, errors.New("default store tag is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %w", errors.Join(errs...))
	}

	return nil
}

// Missing returns the names of the credential variables that are empty.
func (c SaaSCredentials) Missing() []string {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, EnvBaseURL)
	}
	if c.VendorUID == "" {
		missing = append(missing, EnvVendorUID)
	}
	if c.APIToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	return missing
}
