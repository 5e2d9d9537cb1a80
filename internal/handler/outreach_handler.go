package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/repository"
	"sitefix/internal/service"
)

// OutreachHandler builds the fire-and-forget deep links used by the contact
// form and the lead-capture widget.
type OutreachHandler struct {
	config repository.ConfigRepository
}

// NewOutreachHandler creates a new outreach handler.
func NewOutreachHandler(config repository.ConfigRepository) *OutreachHandler {
	return &OutreachHandler{config: config}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// LeadRequest represents a lead widget message.
type LeadRequest struct {
	Message string `json:"message" validate:"required"`
}

// LinkResponse carries the constructed deep link; no response handling follows.
type LinkResponse struct {
	URL string `json:"url"`
}

// Contact godoc
// @Summary Build a mail-client deep link for the contact form
// @Tags site
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form content"
// @Success 200 {object} LinkResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /outreach/contact [post]
func (h *OutreachHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cfg := h.config.Get(c.Request().Context())
	return c.JSON(http.StatusOK, LinkResponse{URL: service.MailtoLink(cfg, req.Subject, req.Message)})
}

// Lead godoc
// @Summary Build a chat deep link for the lead widget
// @Tags site
// @Accept json
// @Produce json
// @Param request body LeadRequest true "Lead message"
// @Success 200 {object} LinkResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /outreach/lead [post]
func (h *OutreachHandler) Lead(c echo.Context) error {
	var req LeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cfg := h.config.Get(c.Request().Context())
	return c.JSON(http.StatusOK, LinkResponse{URL: service.WhatsAppLink(cfg.ContactPhone, req.Message)})
}
