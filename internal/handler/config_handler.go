package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// ConfigHandler handles the singleton site configuration record.
type ConfigHandler struct {
	config repository.ConfigRepository
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(config repository.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// GetPublic godoc
// @Summary Site configuration for public pages
// @Tags site
// @Produce json
// @Success 200 {object} model.SiteConfig
// @Router /config [get]
func (h *ConfigHandler) GetPublic(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config.Get(c.Request().Context()).Public())
}

// Get returns the full record, API key included, for the admin settings screen.
func (h *ConfigHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config.Get(c.Request().Context()))
}

// Save godoc
// @Summary Replace the site configuration
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.SiteConfig true "Whole configuration record"
// @Success 200 {object} model.SiteConfig
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/config [put]
func (h *ConfigHandler) Save(c echo.Context) error {
	var cfg model.SiteConfig
	if err := bindAndValidate(c, &cfg); err != nil {
		return err
	}
	// whole-object replace; partial updates are not supported by contract
	h.config.Save(c.Request().Context(), cfg)
	return c.JSON(http.StatusOK, cfg)
}
