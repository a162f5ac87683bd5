package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"order-webhook/internal/config"
	"order-webhook/internal/domain"
)

// Client implements ports.Dispatcher against the template-messaging API.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a messaging client. Each Send is a single attempt.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug("http request", "method", req.Method, "url", req.URL)
		return nil
	})

	return &Client{
		http:   client,
		logger: logger,
	}
}

// Endpoint returns the send-template-message URL for creds.
func Endpoint(creds config.SaaSCredentials) string {
	return fmt.Sprintf("%s/%s/contact/send-template-message", creds.BaseURL, url.PathEscape(creds.VendorUID))
}

// Send posts msg once. A transport error, a non-2xx status, or a body whose
// result is "failed" yields a *domain.DispatchError wrapping domain.ErrDispatchFailure.
func (c *Client) Send(ctx context.Context, creds config.SaaSCredentials, msg domain.TemplateMessage) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(creds.APIToken).
		SetBody(msg).
		Post(Endpoint(creds))
	if err != nil {
		return &domain.DispatchError{
			Phone:    msg.PhoneNumber,
			Template: msg.TemplateName,
			Err:      fmt.Errorf("%w: %w", domain.ErrDispatchFailure, err),
		}
	}

	data := decodeBody(resp.Body())

	if !resp.IsSuccess() {
		return &domain.DispatchError{
			Phone:        msg.PhoneNumber,
			Template:     msg.TemplateName,
			StatusCode:   resp.StatusCode(),
			ResponseData: data,
			Err:          fmt.Errorf("%w: unexpected status %d", domain.ErrDispatchFailure, resp.StatusCode()),
		}
	}

	if reportsFailure(data) {
		return &domain.DispatchError{
			Phone:        msg.PhoneNumber,
			Template:     msg.TemplateName,
			StatusCode:   resp.StatusCode(),
			ResponseData: data,
			Err:          fmt.Errorf("%w: api reported failure", domain.ErrDispatchFailure),
		}
	}

	c.logger.Debug("template message accepted",
		"status", resp.StatusCode(),
		"template", msg.TemplateName,
		"duration", resp.Time(),
	)

	return nil
}

// decodeBody returns the JSON body, or nil when it is empty or not JSON.
func decodeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil
	}
	return v
}

func reportsFailure(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	result, _ := m["result"].(string)
	return result == "failed"
}
