package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"order-webhook/internal/domain"
	"order-webhook/internal/models"
	"order-webhook/internal/service"
)

// Pipeline processes one webhook event.
type Pipeline interface {
	Process(ctx context.Context, ev service.Event) (*service.Result, error)
}

// APIHandler handles webhook requests from API Gateway.
type APIHandler struct {
	pipeline Pipeline
	logger   *slog.Logger
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(pipeline Pipeline, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Handle dispatches on the HTTP method: GET is a liveness probe, POST runs the
// pipeline, anything else is rejected. Failures are reported in the response,
// never as a Lambda error.
func (h *APIHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	eventID := req.RequestContext.RequestID
	if eventID == "" {
		eventID = uuid.NewString()
	}
	logger := h.logger.With("event_id", eventID)

	logger.Info("request received",
		"path", req.Path,
		"method", req.HTTPMethod)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while handling request", "panic", r)
			resp = models.NewErrorResponse(http.StatusInternalServerError, models.ErrorResponse{
				Error:   models.CodeInternalError,
				Message: fmt.Sprint(r),
			})
			err = nil
		}
	}()

	switch strings.ToUpper(req.HTTPMethod) {
	case http.MethodGet:
		return models.NewJSONResponse(http.StatusOK, models.StatusResponse{
			Status:  "ok",
			Message: "Webhook Running ✅",
		}), nil
	case http.MethodPost:
		return h.handleWebhook(ctx, eventID, req, logger), nil
	default:
		logger.Warn("method not allowed", "method", req.HTTPMethod)
		rejected := models.NewErrorResponse(http.StatusMethodNotAllowed, models.ErrorResponse{
			Error:   models.CodeMethodNotAllowed,
			Message: fmt.Sprintf("%v: %s", domain.ErrInvalidMethod, req.HTTPMethod),
		})
		rejected.Headers["Allow"] = "GET, POST"
		return rejected, nil
	}
}

func (h *APIHandler) handleWebhook(ctx context.Context, eventID string, req events.APIGatewayProxyRequest, logger *slog.Logger) events.APIGatewayProxyResponse {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			logger.Warn("invalid base64 body", "error", err)
			return errorResponse(fmt.Errorf("%w: decode base64 body: %w", domain.ErrInternal, err))
		}
		body = decoded
	}

	result, err := h.pipeline.Process(ctx, service.Event{
		ID:       eventID,
		Body:     body,
		StoreTag: req.QueryStringParameters["storeTag"],
	})
	if err != nil {
		logger.Warn("webhook rejected", "error", err)
		return errorResponse(err)
	}

	return models.NewJSONResponse(http.StatusOK, models.SentResponse{
		Status: "sent",
		Store:  result.Store,
	})
}

// errorResponse maps the error taxonomy onto HTTP responses.
func errorResponse(err error) events.APIGatewayProxyResponse {
	var (
		cfgErr      *domain.ConfigError
		dispatchErr *domain.DispatchError
	)

	switch {
	case errors.Is(err, domain.ErrInvalidPhone):
		return models.NewErrorResponse(http.StatusBadRequest, models.ErrorResponse{
			Error: models.CodeInvalidPhone,
		})
	case errors.As(err, &cfgErr) && errors.Is(err, domain.ErrMissingConfiguration):
		return models.NewErrorResponse(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.CodeMissingEnv,
			Message: "missing " + strings.Join(cfgErr.Missing, ", "),
		})
	case errors.Is(err, domain.ErrMissingConfiguration):
		return models.NewErrorResponse(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.CodeMissingEnv,
		})
	case errors.Is(err, domain.ErrDispatchFailure):
		var data any
		if errors.As(err, &dispatchErr) {
			data = dispatchErr.ResponseData
		}
		return models.NewErrorResponse(http.StatusInternalServerError, models.ErrorResponse{
			Error:        models.CodeSaaSError,
			ResponseData: data,
		})
	default:
		return models.NewErrorResponse(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.CodeInternalError,
			Message: err.Error(),
		})
	}
}
