package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sitefix/internal/assist"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// AssistHandler exposes the generative assistant: public chat estimates and
// admin bulk blog drafting.
type AssistHandler struct {
	client *assist.Client
	posts  repository.PostRepository
}

// NewAssistHandler creates a new assist handler.
func NewAssistHandler(client *assist.Client, posts repository.PostRepository) *AssistHandler {
	return &AssistHandler{client: client, posts: posts}
}

// ChatRequest represents a visitor message to the estimate assistant.
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// ChatResponse carries the assistant's plain-text reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// DraftRequest represents an admin bulk drafting request.
type DraftRequest struct {
	Topics []string `json:"topics" validate:"required,min=1,dive,required"`
}

// DraftResult reports one topic's outcome; failures are inline text, never fatal.
type DraftResult struct {
	Topic string      `json:"topic"`
	Post  *model.Post `json:"post,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Chat godoc
// @Summary Ask the project estimate assistant
// @Tags assist
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Visitor prompt"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /assist/chat [post]
func (h *AssistHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	reply := h.client.Chat(c.Request().Context(), req.Prompt)
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// Draft godoc
// @Summary Bulk-draft blog posts from topics
// @Tags admin
// @Accept json
// @Produce json
// @Param request body DraftRequest true "Topics to draft"
// @Success 200 {array} DraftResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/assist/drafts [post]
func (h *AssistHandler) Draft(c echo.Context) error {
	var req DraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	author := "SiteFix Assistant"
	if u := sessionUser(c); u != nil {
		author = u.Name
	}

	results := make([]DraftResult, 0, len(req.Topics))
	for _, topic := range req.Topics {
		draft, err := h.client.DraftPost(ctx, topic)
		if err != nil {
			results = append(results, DraftResult{Topic: topic, Error: draftError(err)})
			continue
		}
		post := model.Post{
			ID:      model.NewID(),
			Title:   draft.Title,
			Excerpt: draft.Excerpt,
			Content: draft.Content,
			Status:  model.ContentStatusDraft,
			Date:    time.Now().Format("2006-01-02"),
			Author:  author,
		}
		h.posts.Add(ctx, post)
		results = append(results, DraftResult{Topic: topic, Post: &post})
	}
	return c.JSON(http.StatusOK, results)
}

func draftError(err error) string {
	if err == assist.ErrNoKey {
		return assist.KeyMissingMessage
	}
	return "Could not draft this topic. Try again later."
}
