package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// TeamHandler handles team bio endpoints.
type TeamHandler struct {
	team repository.TeamRepository
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(team repository.TeamRepository) *TeamHandler {
	return &TeamHandler{team: team}
}

// TeamMemberRequest represents an admin create/update payload.
type TeamMemberRequest struct {
	Name    string            `json:"name" validate:"required"`
	Role    string            `json:"role" validate:"required"`
	Bio     string            `json:"bio"`
	Image   string            `json:"image"`
	Socials model.SocialLinks `json:"socials"`
}

// List godoc
// @Summary List team members
// @Tags team
// @Produce json
// @Success 200 {array} model.TeamMember
// @Router /team [get]
func (h *TeamHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.team.GetAll(c.Request().Context()))
}

// Create adds a team member.
func (h *TeamHandler) Create(c echo.Context) error {
	var req TeamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	member := model.TeamMember{
		ID:      model.NewID(),
		Name:    req.Name,
		Role:    req.Role,
		Bio:     req.Bio,
		Image:   req.Image,
		Socials: req.Socials,
	}
	h.team.Add(c.Request().Context(), member)
	return c.JSON(http.StatusCreated, member)
}

// Update replaces a team member by id.
func (h *TeamHandler) Update(c echo.Context) error {
	var req TeamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	member := model.TeamMember{
		ID:      c.Param("id"),
		Name:    req.Name,
		Role:    req.Role,
		Bio:     req.Bio,
		Image:   req.Image,
		Socials: req.Socials,
	}
	if err := h.team.Update(c.Request().Context(), member); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, member)
}

// Delete removes a team member by id.
func (h *TeamHandler) Delete(c echo.Context) error {
	h.team.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
