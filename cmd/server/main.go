package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "sitefix/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sitefix/internal/assist"
	"sitefix/internal/config"
	"sitefix/internal/handler"
	"sitefix/internal/kv"
	"sitefix/internal/repository"
	"sitefix/internal/router"
	"sitefix/internal/service"
	"sitefix/internal/store"
)

// @title SiteFix API
// @version 1.0
// @description Marketing site and business-operations console for the SiteFix agency: shop, blog, custom pages, checkout with manual payment verification, and an admin console.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	e := echo.New()
	e.Use(middleware.RequestID())

	backend := kv.NewBackend(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR is empty, data lives in process memory only")
	}
	st := store.New(backend, logger)

	// Reset collections to seed data if RESET_STORE is set
	if os.Getenv("RESET_STORE") == "true" {
		log.Println("RESET_STORE=true detected, reseeding all collections...")
		repository.SeedAll(context.Background(), st)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(st)
	orderRepo := repository.NewOrderRepository(st)
	productRepo := repository.NewProductRepository(st)
	postRepo := repository.NewPostRepository(st)
	pageRepo := repository.NewPageRepository(st)
	teamRepo := repository.NewTeamRepository(st)
	configRepo := repository.NewConfigRepository(st)
	sessionRepo := repository.NewSessionRepository(st)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo)
	orderService := service.NewOrderService(orderRepo)
	snapshotService := service.NewSnapshotService(userRepo, orderRepo, productRepo, postRepo, pageRepo, teamRepo, configRepo)

	// The assist key lives in SiteConfig and falls back to the environment.
	assistClient := assist.New(func(ctx context.Context) string {
		if key := configRepo.Get(ctx).AIAPIKey; key != "" {
			return key
		}
		return cfg.AIAPIKey
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	viewHandler := handler.NewViewHandler(snapshotService, authService, pageRepo)
	productHandler := handler.NewProductHandler(productRepo)
	blogHandler := handler.NewBlogHandler(postRepo)
	pageHandler := handler.NewPageHandler(pageRepo)
	teamHandler := handler.NewTeamHandler(teamRepo)
	paymentAccountHandler := handler.NewPaymentAccountHandler(repository.NewPaymentAccountRepository(st))
	orderHandler := handler.NewOrderHandler(orderService, authService)
	configHandler := handler.NewConfigHandler(configRepo)
	assistHandler := handler.NewAssistHandler(assistClient, postRepo)
	outreachHandler := handler.NewOutreachHandler(configRepo)
	seedHandler := handler.NewSeedHandler(st)

	// Register routes
	router.Register(
		e,
		authService,
		authHandler,
		viewHandler,
		productHandler,
		blogHandler,
		pageHandler,
		teamHandler,
		paymentAccountHandler,
		orderHandler,
		configHandler,
		assistHandler,
		outreachHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
