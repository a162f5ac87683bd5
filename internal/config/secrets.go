package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"order-webhook/internal/domain"
)

// SaaSCredentials are the three settings required to reach the messaging API.
type SaaSCredentials struct {
	BaseURL   string `json:"base_url"`
	VendorUID string `json:"vendor_uid"`
	APIToken  string `json:"api_token"`
}

// SecretFetcher reads messaging API credentials from a secret store.
type SecretFetcher interface {
	GetSaaSSecret(ctx context.Context, secretName string) (*SaaSCredentials, error)
}

// SecretsManagerClient wraps AWS Secrets Manager operations.
type SecretsManagerClient struct {
	client *secretsmanager.Client
}

// NewSecretsManagerClient creates a new Secrets Manager client.
// Credentials come from the default chain (the Lambda execution role in AWS).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SecretsManagerClient{
		client: secretsmanager.NewFromConfig(cfg),
	}, nil
}

// GetSaaSSecret fetches and parses the messaging API credentials.
// Fields absent from the secret are left empty.
func (c *SecretsManagerClient) GetSaaSSecret(ctx context.Context, secretName string) (*SaaSCredentials, error) {
	if secretName == "" {
		return nil, fmt.Errorf("secret name is empty")
	}

	output, err := c.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch secret %q from secrets manager: %w", secretName, err)
	}

	if output.SecretString == nil {
		return nil, fmt.Errorf("secret %q has no string value (binary secrets not supported)", secretName)
	}

	var creds SaaSCredentials
	if err := json.Unmarshal([]byte(*output.SecretString), &creds); err != nil {
		return nil, fmt.Errorf("parse secret %q as JSON: %w", secretName, err)
	}

	return &creds, nil
}

// Resolver resolves messaging API credentials for each event.
// Environment values win; a configured secret fills whatever is missing.
type Resolver struct {
	secretName string
	fetcher    SecretFetcher
	lookupEnv  func(string) string

	mu     sync.Mutex
	cached *SaaSCredentials
}

// NewResolver creates a credential resolver. fetcher may be nil when no secret is configured.
func NewResolver(secretName string, fetcher SecretFetcher) *Resolver {
	return &Resolver{
		secretName: secretName,
		fetcher:    fetcher,
		lookupEnv:  os.Getenv,
	}
}

// WithLookup replaces the environment lookup. Used by tests.
func (r *Resolver) WithLookup(lookup func(string) string) *Resolver {
	r.lookupEnv = lookup
	return r
}

// Credentials returns complete credentials or a *domain.ConfigError wrapping
// domain.ErrMissingConfiguration.
func (r *Resolver) Credentials(ctx context.Context) (SaaSCredentials, error) {
	creds := SaaSCredentials{
		BaseURL:   strings.TrimRight(strings.TrimSpace(r.lookupEnv(EnvBaseURL)), "/"),
		VendorUID: strings.TrimSpace(r.lookupEnv(EnvVendorUID)),
		APIToken:  strings.TrimSpace(r.lookupEnv(EnvAPIToken)),
	}

	if len(creds.Missing()) > 0 && r.secretName != "" && r.fetcher != nil {
		secret, err := r.secret(ctx)
		if err != nil {
			return SaaSCredentials{}, &domain.ConfigError{
				ConfigName: "saas",
				Missing:    creds.Missing(),
				Err:        fmt.Errorf("%w: %v", domain.ErrMissingConfiguration, err),
			}
		}
		creds = merge(creds, *secret)
	}

	if missing := creds.Missing(); len(missing) > 0 {
		return SaaSCredentials{}, &domain.ConfigError{
			ConfigName: "saas",
			Missing:    missing,
			Err:        domain.ErrMissingConfiguration,
		}
	}

	return creds, nil
}

func (r *Resolver) secret(ctx context.Context) (*SaaSCredentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return r.cached, nil
	}

	secret, err := r.fetcher.GetSaaSSecret(ctx, r.secretName)
	if err != nil {
		return nil, err
	}

	r.cached = secret
	return secret, nil
}

func merge(env, secret SaaSCredentials) SaaSCredentials {
	if env.BaseURL == "" {
		env.BaseURL = strings.TrimRight(strings.TrimSpace(secret.BaseURL), "/")
	}
	if env.VendorUID == "" {
		env.VendorUID = strings.TrimSpace(secret.VendorUID)
	}
	if env.APIToken == "" {
		env.APIToken = strings.TrimSpace(secret.APIToken)
	}
	return env
}
