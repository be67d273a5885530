package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Pinger reports store liveness as a boolean, never an error.
type Pinger interface {
	Ping(ctx context.Context) bool
}

// Handler handles health check operations.
type Handler struct {
	store Pinger
}

// NewHandler creates a new health handler.
func NewHandler(store Pinger) *Handler {
	return &Handler{store: store}
}

// Response is the response for the health check endpoint.
type Response struct {
	Body struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
}

// Check reports the health of the service and its store.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"

	if h.store.Ping(ctx) {
		resp.Body.Store = "healthy"
	} else {
		resp.Body.Store = "unhealthy"
		resp.Body.Status = "degraded"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
