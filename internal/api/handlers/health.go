// Package handlers implements HTTP handlers for the catalog fixture API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-discovery/internal/catalog"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	source catalog.ProductSource
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s catalog.ProductSource) *HealthHandler {
	return &HealthHandler{source: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the catalog has visible products, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.source.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
