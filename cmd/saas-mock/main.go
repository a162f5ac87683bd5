package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"order-webhook/internal/domain"
	"order-webhook/internal/logging"
)

const (
	defaultPort = "8081"
	sendSuffix  = "/contact/send-template-message"
)

// Server mocks the template-messaging API.
type Server struct {
	logger *slog.Logger
}

// SendResponse mirrors the API's reply to send-template-message.
type SendResponse struct {
	Result    string `json:"result"`
	Message   string `json:"message,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

func NewServer(logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	s.logger.Info("incoming request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
	)

	if r.URL.Path == "/health" {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
		return
	}

	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, sendSuffix) {
		w.WriteHeader(http.StatusNotFound)
		s.logger.Warn("route not found", "method", r.Method, "path", r.URL.Path)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, SendResponse{Result: "failed", Message: "missing bearer token"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		s.logger.Error("failed to read request body", "error", err)
		return
	}
	defer r.Body.Close()

	var msg domain.TemplateMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		writeJSON(w, http.StatusBadRequest, SendResponse{Result: "failed", Message: "invalid json"})
		s.logger.Error("failed to parse request JSON", "error", err)
		return
	}

	vendor := strings.Trim(strings.TrimSuffix(r.URL.Path, sendSuffix), "/")
	s.logger.Info("template message",
		"vendor", vendor,
		"to", msg.PhoneNumber,
		"template", msg.TemplateName,
		"language", msg.TemplateLanguage,
		"name", msg.Field1,
		"order", msg.Field2,
		"product", msg.Field3,
		"quantity", msg.Field4,
		"total", msg.Field7,
	)

	// Numbers ending in 000 exercise the webhook's failure path.
	if strings.HasSuffix(msg.PhoneNumber, "000") {
		writeJSON(w, http.StatusOK, SendResponse{Result: "failed", Message: "recipient rejected"})
		s.logger.Warn("mock rejection", "to", msg.PhoneNumber)
		return
	}

	messageID := fmt.Sprintf("mock-%s", uuid.New().String())
	writeJSON(w, http.StatusOK, SendResponse{Result: "success", MessageID: messageID})

	s.logger.Info("message accepted",
		"message_id", messageID,
		"to", msg.PhoneNumber,
		"duration", time.Since(start),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	logger := logging.WithComponent(logging.New(logging.DefaultConfig()), "saas-mock")

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	server := NewServer(logger)

	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting messaging API mock",
		"port", port,
		"endpoint", fmt.Sprintf("http://localhost:%s/{vendor}%s", port, sendSuffix),
	)

	if err := http.ListenAndServe(addr, server); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
