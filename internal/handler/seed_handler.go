package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/repository"
	"sitefix/internal/store"
)

// SeedHandler resets every collection to its seed value.
type SeedHandler struct {
	store *store.Store
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(st *store.Store) *SeedHandler {
	return &SeedHandler{store: st}
}

// Reset godoc
// @Summary Reset all collections to seed data
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/seed [post]
func (h *SeedHandler) Reset(c echo.Context) error {
	repository.SeedAll(c.Request().Context(), h.store)
	return c.JSON(http.StatusOK, map[string]string{"status": "seeded"})
}
