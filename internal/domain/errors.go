package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure class surfaced by the webhook.
var (
	ErrInvalidMethod        = errors.New("invalid method")
	ErrInvalidPhone         = errors.New("invalid phone")
	ErrMissingConfiguration = errors.New("missing configuration")
	ErrDispatchFailure      = errors.New("dispatch failure")
	ErrInternal             = errors.New("internal error")
	ErrInvalidStoreCatalog  = errors.New("invalid store catalog")
)

// PhoneErrorReason tells why a phone number could not be canonicalized.
type PhoneErrorReason string

const (
	PhoneEmpty    PhoneErrorReason = "empty"
	PhoneTooShort PhoneErrorReason = "too_short"
)

// PhoneError is returned by the canonicalizer.
type PhoneError struct {
	Reason PhoneErrorReason
	Digits string
}

func (e *PhoneError) Error() string {
	if e.Digits != "" {
		return fmt.Sprintf("phone %s: %q", e.Reason, e.Digits)
	}
	return fmt.Sprintf("phone %s", e.Reason)
}

func (e *PhoneError) Unwrap() error {
	return ErrInvalidPhone
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	ConfigName string
	Missing    []string // names of absent settings
	Err        error
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("config %s: missing %s: %v", e.ConfigName, strings.Join(e.Missing, ", "), e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.ConfigName, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DispatchError represents a rejected or failed outbound notification.
type DispatchError struct {
	Phone        string
	Template     string
	StatusCode   int
	ResponseData any // decoded response body, nil when it was not JSON
	Err          error
}

func (e *DispatchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dispatch: phone=%s template=%s status=%d: %v", e.Phone, e.Template, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("dispatch: phone=%s template=%s: %v", e.Phone, e.Template, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// EventError carries the pipeline stage that failed for a single webhook event.
type EventError struct {
	EventID string
	Op      string // operation that failed
	Err     error  // underlying error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("%s: event=%s: %v", e.Op, e.EventID, e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}
