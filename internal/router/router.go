package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sitefix/internal/handler"
	"sitefix/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	viewHandler *handler.ViewHandler,
	productHandler *handler.ProductHandler,
	blogHandler *handler.BlogHandler,
	pageHandler *handler.PageHandler,
	teamHandler *handler.TeamHandler,
	paymentAccountHandler *handler.PaymentAccountHandler,
	orderHandler *handler.OrderHandler,
	configHandler *handler.ConfigHandler,
	assistHandler *handler.AssistHandler,
	outreachHandler *handler.OutreachHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/me", authHandler.Me)

	api.GET("/config", configHandler.GetPublic)
	api.GET("/products", productHandler.List)
	api.GET("/posts", blogHandler.List)
	api.GET("/posts/:id", blogHandler.Get)
	api.GET("/pages/:slug", pageHandler.Get)
	api.GET("/team", teamHandler.List)
	api.GET("/payment-accounts", paymentAccountHandler.List)
	api.POST("/orders", orderHandler.Checkout)
	api.POST("/assist/chat", assistHandler.Chat)
	api.POST("/outreach/contact", outreachHandler.Contact)
	api.POST("/outreach/lead", outreachHandler.Lead)

	// View resolution: any site path falls through to the landing view rather
	// than a 404, so the catch-all always answers 200.
	api.GET("/views", viewHandler.Resolve)
	api.GET("/views/*", viewHandler.Resolve)

	// Session-gated routes
	mine := api.Group("", handler.RequireUser(authService))
	mine.GET("/orders/mine", orderHandler.Mine)

	// Admin console routes (role-gated)
	admin := api.Group("/admin", handler.RequireAdmin(authService))

	admin.GET("/products", productHandler.List)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	admin.GET("/posts", blogHandler.ListAll)
	admin.POST("/posts", blogHandler.Create)
	admin.PUT("/posts/:id", blogHandler.Update)
	admin.DELETE("/posts/:id", blogHandler.Delete)

	admin.GET("/pages", pageHandler.ListAll)
	admin.POST("/pages", pageHandler.Create)
	admin.PUT("/pages/:id", pageHandler.Update)
	admin.DELETE("/pages/:id", pageHandler.Delete)

	admin.POST("/team", teamHandler.Create)
	admin.PUT("/team/:id", teamHandler.Update)
	admin.DELETE("/team/:id", teamHandler.Delete)

	admin.POST("/payment-accounts", paymentAccountHandler.Create)
	admin.PUT("/payment-accounts/:id", paymentAccountHandler.Update)
	admin.DELETE("/payment-accounts/:id", paymentAccountHandler.Delete)

	admin.GET("/orders", orderHandler.ListAll)
	admin.POST("/orders/:id/approve", orderHandler.Approve)
	admin.POST("/orders/:id/reject", orderHandler.Reject)
	admin.POST("/orders/:id/complete", orderHandler.Complete)

	admin.GET("/config", configHandler.Get)
	admin.PUT("/config", configHandler.Save)

	admin.POST("/assist/drafts", assistHandler.Draft)
	admin.POST("/seed", seedHandler.Reset)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
