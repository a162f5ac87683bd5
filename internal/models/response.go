package models

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Error codes returned in the "error" field.
const (
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInvalidPhone     = "invalid_phone"
	CodeMissingEnv       = "missing_env"
	CodeSaaSError        = "saas_error"
	CodeInternalError    = "internal_error"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message,omitempty"`
	ResponseData any    `json:"responseData,omitempty"`
}

// SentResponse is returned once a notification has been accepted upstream.
type SentResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// StatusResponse is returned by the liveness probe.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse creates an API Gateway error response.
func NewErrorResponse(statusCode int, body ErrorResponse) events.APIGatewayProxyResponse {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		slog.Error("failed to marshal error response",
			"error", err,
			"status_code", statusCode,
			"code", body.Error)
		return fallback(`{"error":"internal_error","message":"failed to build error response"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    jsonHeaders(),
		Body:       string(bodyJSON),
	}
}

// NewJSONResponse creates an API Gateway response with data as the JSON body.
func NewJSONResponse(statusCode int, data any) events.APIGatewayProxyResponse {
	bodyJSON, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal response",
			"error", err,
			"status_code", statusCode)
		return fallback(`{"error":"internal_error","message":"failed to build response"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    jsonHeaders(),
		Body:       string(bodyJSON),
	}
}

func fallback(body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    jsonHeaders(),
		Body:       body,
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json; charset=utf-8",
	}
}
