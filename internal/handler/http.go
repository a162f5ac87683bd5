package handler

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"order-webhook/internal/models"
)

// maxBodyBytes bounds the request body read by the local server.
const maxBodyBytes = 1 << 20

// HTTPAdapter serves an APIHandler over net/http for local runs.
type HTTPAdapter struct {
	api *APIHandler
}

// NewHTTPAdapter wraps api as an http.Handler.
func NewHTTPAdapter(api *APIHandler) *HTTPAdapter {
	return &HTTPAdapter{api: api}
}

func (a *HTTPAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		a.api.logger.Error("failed to read request body", "error", err)
		write(w, models.NewErrorResponse(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.CodeInternalError,
			Message: "failed to read request body",
		}))
		return
	}
	defer r.Body.Close()

	resp, _ := a.api.Handle(r.Context(), events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               flatten(r.Header),
		QueryStringParameters: flatten(r.URL.Query()),
		Body:                  string(body),
	})

	write(w, resp)
}

func write(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}

// flatten keeps the first value of each key.
func flatten(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
