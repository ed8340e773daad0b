package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobhive/market-system/internal/api/handler"
	"github.com/jobhive/market-system/internal/api/middleware"
	"github.com/jobhive/market-system/internal/core/service"
	"github.com/jobhive/market-system/internal/infrastructure/config"
	mongodb "github.com/jobhive/market-system/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("market"))

	// --- Dependencies ---
	jobRepo := mongodb.NewJobRepository(db)
	bidRepo := mongodb.NewBidRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, time.Hour)
	jobs := service.NewJobService(jobRepo, log)
	bids := service.NewBidService(bidRepo, log)

	authHandler := handler.NewAuthHandler(tokens, cfg.Production())
	jobHandler := handler.NewJobHandler(jobs)
	bidHandler := handler.NewBidHandler(bids)
	healthHandler := handler.NewHealthHandler(db)

	// --- Public routes ---
	e.GET("/", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/jwt", authHandler.Issue)
	e.GET("/logout", authHandler.Logout)
	e.GET("/all-jobs", jobHandler.Search)

	// --- Credential-gated routes ---
	guarded := e.Group("", middleware.Auth(tokens))
	guarded.GET("/market-jobs", jobHandler.List)
	guarded.GET("/market-jobs/:id", jobHandler.Get)
	guarded.POST("/market-jobs", jobHandler.Create)
	guarded.PUT("/market-jobs/:id", jobHandler.Replace)
	guarded.DELETE("/market-jobs/:id", jobHandler.Delete)
	guarded.GET("/market-bids", bidHandler.List)
	guarded.POST("/market-bids", bidHandler.Place)
	guarded.PATCH("/market-bids/:id", bidHandler.Update)

	return e
}
