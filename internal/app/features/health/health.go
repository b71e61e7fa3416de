// internal/app/features/health/health.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler provides health check endpoints.
type Handler struct {
	mongoClient *mongo.Client
	environment string
	logger      *zap.Logger
}

// NewHandler creates a new health check Handler. environment is the
// deployment name echoed back in responses ("development", "production").
func NewHandler(mongoClient *mongo.Client, environment string, logger *zap.Logger) *Handler {
	return &Handler{
		mongoClient: mongoClient,
		environment: environment,
		logger:      logger,
	}
}

// Response is the health check response body.
type Response struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Timestamp   string            `json:"timestamp"`
	Environment string            `json:"environment"`
	Services    map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides / (basic), /ready (Mongo ping), and /live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds probe endpoints directly on the root router,
// following the usual Kubernetes conventions.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check reports service status without touching dependencies. This is the
// endpoint the client polls.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Success:     true,
		Message:     "API is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.environment,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Ready checks readiness including database connectivity. Used by
// readiness probes.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Success:     true,
		Message:     "ready",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.environment,
		Services:    map[string]string{"mongodb": "ok"},
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		h.logger.Warn("readiness check: mongodb ping failed", zap.Error(err))
		resp.Success = false
		resp.Message = "not ready"
		resp.Services["mongodb"] = "unavailable"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// Live reports process liveness. Used by liveness probes.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true,"message":"alive"}`))
}
