package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// BlogHandler handles public blog reads and admin post management.
type BlogHandler struct {
	posts repository.PostRepository
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(posts repository.PostRepository) *BlogHandler {
	return &BlogHandler{posts: posts}
}

// PostRequest represents an admin create/update payload.
type PostRequest struct {
	Title   string              `json:"title" validate:"required"`
	Excerpt string              `json:"excerpt"`
	Content string              `json:"content"`
	Status  model.ContentStatus `json:"status" validate:"required,oneof=draft published"`
	Author  string              `json:"author"`
}

// List godoc
// @Summary List published posts
// @Tags blog
// @Produce json
// @Success 200 {array} model.Post
// @Router /posts [get]
func (h *BlogHandler) List(c echo.Context) error {
	var published []model.Post
	for _, p := range h.posts.GetAll(c.Request().Context()) {
		if p.Status == model.ContentStatusPublished {
			published = append(published, p)
		}
	}
	if published == nil {
		published = []model.Post{}
	}
	return c.JSON(http.StatusOK, published)
}

// Get godoc
// @Summary Read a post and bump its view counter
// @Tags blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := h.posts.FindByID(ctx, c.Param("id"))
	if err != nil || post.Status != model.ContentStatusPublished {
		httpErr := errors.MapErrorToHTTP(errors.ErrRecordNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	// best-effort, like every other write
	_ = h.posts.IncrementViews(ctx, post.ID)
	post.Views++
	return c.JSON(http.StatusOK, post)
}

// ListAll returns every post, drafts included, for the admin console.
func (h *BlogHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.posts.GetAll(c.Request().Context()))
}

// Create godoc
// @Summary Create a post
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PostRequest true "Post data"
// @Success 201 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/posts [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	author := req.Author
	if author == "" {
		if u := sessionUser(c); u != nil {
			author = u.Name
		}
	}
	post := model.Post{
		ID:      model.NewID(),
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Status:  req.Status,
		Date:    time.Now().Format("2006-01-02"),
		Author:  author,
	}
	h.posts.Add(c.Request().Context(), post)
	return c.JSON(http.StatusCreated, post)
}

// Update replaces a post by id, preserving its view counter.
func (h *BlogHandler) Update(c echo.Context) error {
	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	existing, err := h.posts.FindByID(ctx, c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	existing.Title = req.Title
	existing.Excerpt = req.Excerpt
	existing.Content = req.Content
	existing.Status = req.Status
	if req.Author != "" {
		existing.Author = req.Author
	}
	if err := h.posts.Update(ctx, *existing); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, existing)
}

// Delete removes a post by id.
func (h *BlogHandler) Delete(c echo.Context) error {
	h.posts.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
