package service

import (
	"context"
	"fmt"
	"log/slog"

	"order-webhook/internal/domain"
	"order-webhook/internal/payload"
	"order-webhook/internal/ports"
	"order-webhook/internal/stores"
)

// Event is one inbound webhook delivery.
type Event struct {
	ID       string
	Body     []byte
	StoreTag string // from the query string; the body field is used when empty
}

// Result describes a dispatched notification.
type Result struct {
	Store string
	Shape domain.OrderShape
	Phone domain.CanonicalPhone
}

// Processor runs the normalization pipeline for one event at a time.
// It holds no per-event state and is safe for concurrent use.
type Processor struct {
	catalog    *stores.Catalog
	settings   ports.SettingsSource
	dispatcher ports.Dispatcher
	logger     *slog.Logger
}

// NewProcessor creates a new processor with injected dependencies.
func NewProcessor(
	catalog *stores.Catalog,
	settings ports.SettingsSource,
	dispatcher ports.Dispatcher,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		catalog:    catalog,
		settings:   settings,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Process normalizes the event payload and dispatches the notification.
// Errors are *domain.EventError values wrapping one of the domain sentinels.
func (p *Processor) Process(ctx context.Context, ev Event) (*Result, error) {
	logger := p.logger.With("event_id", ev.ID)

	creds, err := p.settings.Credentials(ctx)
	if err != nil {
		return nil, &domain.EventError{EventID: ev.ID, Op: "ResolveCredentials", Err: err}
	}

	raw, err := payload.Decode(ev.Body)
	if err != nil {
		return nil, &domain.EventError{
			EventID: ev.ID,
			Op:      "DecodePayload",
			Err:     fmt.Errorf("%w: %w", domain.ErrInternal, err),
		}
	}

	tag := ev.StoreTag
	if tag == "" {
		tag = raw.Text("storeTag")
	}
	store := p.catalog.Lookup(tag)

	order := Extract(raw, store)
	logger = logger.With("store", store.Tag, "shape", order.Shape.String())
	logger.Debug("order extracted",
		"order_id", order.OrderID,
		"country_hint", order.CountryHint,
		"quantity", order.Quantity,
	)

	phone, err := Canonicalize(order.CustomerPhoneRaw, order.CountryHint)
	if err != nil {
		logger.Warn("phone rejected", "order_id", order.OrderID, "error", err)
		return nil, &domain.EventError{EventID: ev.ID, Op: "CanonicalizePhone", Err: err}
	}
	if !Plausible(phone) {
		logger.Warn("phone failed plausibility check", "phone", phone.E164())
	}

	fields := BuildNotificationFields(order, phone, store)
	msg := domain.NewTemplateMessage(fields, store)

	if err := p.dispatcher.Send(ctx, creds, msg); err != nil {
		logger.Error("notification dispatch failed", "phone", phone.E164(), "error", err)
		return nil, &domain.EventError{EventID: ev.ID, Op: "Dispatch", Err: err}
	}

	logger.Info("notification sent",
		"order_id", order.OrderID,
		"phone", phone.E164(),
		"template", store.TemplateName,
	)

	return &Result{
		Store: store.Tag,
		Shape: order.Shape,
		Phone: phone,
	}, nil
}
