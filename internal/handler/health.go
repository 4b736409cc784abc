package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/osse101/WorldLoot_Go/internal/logger"
)

// HealthCheckTimeout bounds every readiness probe
const HealthCheckTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker
type HealthCheckFunc func(ctx context.Context) error

// CheckHealth implements HealthChecker
func (f HealthCheckFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz runs every named check in name order and reports the first failure
func HandleReadyz(checks map[string]HealthChecker) http.HandlerFunc {
	names := lo.Keys(checks)
	slices.Sort(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), HealthCheckTimeout)
		defer cancel()

		for _, name := range names {
			if err := checks[name].CheckHealth(ctx); err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "check", name, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  HealthStatusUnavailable,
					Message: name + " check failed",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
