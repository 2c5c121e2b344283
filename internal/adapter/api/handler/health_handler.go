package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gamevault/internal/domain/repository"
	"gamevault/pkg/logger"
)

type HealthHandler struct {
	store repository.DocumentStore
}

func NewHealthHandler(store repository.DocumentStore) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckStoreHealth(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		logger.Warn("Document store health check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Document store unreachable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Document store connected",
	})
}
