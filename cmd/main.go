package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"creditapi/internal/config"
	"creditapi/internal/handlers"
	"creditapi/internal/repositories"
	"creditapi/internal/seed"
	"creditapi/internal/services"
	"creditapi/internal/validation"
	"creditapi/pkg/database"
)

const version = "1.0.0"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	// Database connection pool, created once and passed down.
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("database connected")

	if err := database.InitSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize schema")
	}

	// Create repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	creditRepo := repositories.NewCreditRepository(pool)

	// Create services
	companySvc := services.NewCompanyService(companyRepo)
	creditSvc := services.NewCreditService(companyRepo, creditRepo)

	if cfg.SeedData {
		if err := seed.New(companySvc, creditRepo, logger).Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	// Create handlers
	companyHandlers := handlers.NewCompanyHandlers(companySvc)
	creditHandlers := handlers.NewCreditHandlers(creditSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(logger)

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Health endpoints
	e.GET("/", healthHandlers.Welcome)
	e.GET("/health", healthHandlers.LivenessCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Company routes
	e.GET("/company/:id", companyHandlers.GetCompany)
	e.POST("/company", companyHandlers.CreateCompany)
	e.PUT("/company/:id", companyHandlers.UpdateCompany)

	// Credit routes
	e.GET("/credits", creditHandlers.GetAllCreditInfo)
	e.GET("/credits/:company_id", creditHandlers.GetCreditInfo)
	e.POST("/credits", creditHandlers.AddLoan)
	e.PUT("/credits/:company_id", creditHandlers.UpdateLoan)
	e.DELETE("/credits/:loan_id", creditHandlers.DeleteLoan)

	// Start server
	go func() {
		logger.Info().Str("version", version).Str("port", cfg.Port).Msg("credit information API starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped")
}
