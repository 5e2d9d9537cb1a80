package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitefix/internal/model"
	"sitefix/internal/repository"
	"sitefix/internal/service"
)

// ViewHandler is the state host: it resolves a path to a view and hands back
// a freshly loaded snapshot of every collection. Consistency is entirely
// reload-driven; there is no push notification between screens.
type ViewHandler struct {
	snapshots   service.SnapshotService
	authService service.AuthService
	pages       repository.PageRepository
}

// NewViewHandler creates a new view handler.
func NewViewHandler(snapshots service.SnapshotService, authService service.AuthService, pages repository.PageRepository) *ViewHandler {
	return &ViewHandler{snapshots: snapshots, authService: authService, pages: pages}
}

// ViewResponse pairs the resolved view with the full state snapshot.
type ViewResponse struct {
	Resolution service.Resolution `json:"resolution"`
	Snapshot   *service.Snapshot  `json:"snapshot"`
}

// Resolve godoc
// @Summary Resolve a path to a view and load the full state snapshot
// @Tags site
// @Produce json
// @Param path path string false "Site path"
// @Success 200 {object} ViewResponse
// @Router /views/{path} [get]
func (h *ViewHandler) Resolve(c echo.Context) error {
	ctx := c.Request().Context()
	sess := h.authService.Current(ctx)
	resolution := service.ResolveView(c.Param("*"), sess, h.pages.GetAll(ctx))
	snapshot := h.snapshots.Load(ctx)
	// never leak credentials or keys through the public snapshot
	snapshot.Config = snapshot.Config.Public()
	if sess == nil || sess.Role != model.RoleAdmin {
		snapshot.Users = nil
		snapshot.Orders = nil
	}
	return c.JSON(http.StatusOK, ViewResponse{Resolution: resolution, Snapshot: snapshot})
}
