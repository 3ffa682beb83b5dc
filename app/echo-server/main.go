package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starryNight/app/echo-server/router"
	"starryNight/business/catalog"
	"starryNight/business/ingest"
	"starryNight/business/recommend"
	"starryNight/internal/middleware"
	"starryNight/internal/repository/memory"
	"starryNight/internal/rest"
	"starryNight/pkg/config"
	"starryNight/pkg/database/redis"
	"starryNight/pkg/logger"
	"starryNight/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Starry Night API", "version", cfg.App.Version)

	metrics.Init()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redis.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	// Init repo
	artworkRepo := memory.NewArtworkRepository(memory.SeedArtworks())
	collectionRepo := memory.NewCollectionRepository(memory.SeedCollections())
	taxonomyRepo := memory.NewTaxonomyRepository(memory.SeedCategories(), memory.SeedArtists())

	// Init service
	recommendService := recommend.NewService(artworkRepo)
	ingestService := ingest.NewService()
	catalogService := catalog.NewCatalogService(artworkRepo, collectionRepo, taxonomyRepo)

	// Init handler
	trackingHandler := rest.NewTrackingHandler(ingestService)
	recommendationHandler := rest.NewRecommendationHandler(recommendService)
	preferencesHandler := rest.NewPreferencesHandler()
	catalogHandler := rest.NewCatalogHandler(catalogService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Trace())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	optionalAuth := middleware.OptionalAuth(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api")
	router.SetTrackingRoutes(api, trackingHandler)
	router.SetRecommendationRoutes(api, recommendationHandler, optionalAuth)
	router.SetPreferencesRoutes(api, preferencesHandler)
	router.SetCatalogRoutes(api, catalogHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		if err := redisClient.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
