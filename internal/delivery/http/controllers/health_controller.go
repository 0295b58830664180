package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

const pingTimeout = 2 * time.Second

// StoreResolver returns the current store, connecting on first use.
type StoreResolver interface {
	Get(ctx context.Context) (*domain.Store, error)
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthController struct {
	Logger *slog.Logger
	Stores StoreResolver
}

func NewHealthController(logger *slog.Logger, stores StoreResolver) *HealthController {
	return &HealthController{Logger: logger, Stores: stores}
}

// Health godoc
// @Summary Liveness and database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	store, err := c.Stores.Get(ctx)
	if err == nil {
		err = store.Ping(ctx)
	}
	if err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
