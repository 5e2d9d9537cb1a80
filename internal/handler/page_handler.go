package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// PageHandler handles custom-page reads and admin page management.
type PageHandler struct {
	pages repository.PageRepository
}

// NewPageHandler creates a new page handler.
func NewPageHandler(pages repository.PageRepository) *PageHandler {
	return &PageHandler{pages: pages}
}

// PageRequest represents an admin create/update payload. The slug is derived
// from the title; collisions are not checked.
type PageRequest struct {
	Title        string              `json:"title" validate:"required"`
	Content      string              `json:"content"`
	Status       model.ContentStatus `json:"status" validate:"required,oneof=draft published"`
	ShowInHeader bool                `json:"showInHeader"`
	ShowInFooter bool                `json:"showInFooter"`
}

// Get godoc
// @Summary Read a published page by slug
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} model.Page
// @Failure 404 {object} errors.ErrorResponse
// @Router /pages/{slug} [get]
func (h *PageHandler) Get(c echo.Context) error {
	page, err := h.pages.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil || page.Status != model.ContentStatusPublished {
		httpErr := errors.MapErrorToHTTP(errors.ErrRecordNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, page)
}

// ListAll returns every page, drafts included, for the admin console.
func (h *PageHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pages.GetAll(c.Request().Context()))
}

// Create adds a page with a slug derived from its title.
func (h *PageHandler) Create(c echo.Context) error {
	var req PageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	page := model.Page{
		ID:           model.NewID(),
		Title:        req.Title,
		Slug:         model.Slugify(req.Title),
		Content:      req.Content,
		Status:       req.Status,
		ShowInHeader: req.ShowInHeader,
		ShowInFooter: req.ShowInFooter,
		Date:         time.Now().Format("2006-01-02"),
	}
	h.pages.Add(c.Request().Context(), page)
	return c.JSON(http.StatusCreated, page)
}

// Update replaces a page by id; the slug is re-derived from the new title.
func (h *PageHandler) Update(c echo.Context) error {
	var req PageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	var existing *model.Page
	for _, p := range h.pages.GetAll(ctx) {
		if p.ID == c.Param("id") {
			existing = &p
			break
		}
	}
	if existing == nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrRecordNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	existing.Title = req.Title
	existing.Slug = model.Slugify(req.Title)
	existing.Content = req.Content
	existing.Status = req.Status
	existing.ShowInHeader = req.ShowInHeader
	existing.ShowInFooter = req.ShowInFooter
	if err := h.pages.Update(ctx, *existing); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, existing)
}

// Delete removes a page by id.
func (h *PageHandler) Delete(c echo.Context) error {
	h.pages.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
