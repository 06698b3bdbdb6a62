package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spa-records/internal/config"
	"spa-records/internal/handlers"
	"spa-records/internal/middleware"
	"spa-records/internal/repositories"
	"spa-records/internal/seed"
	"spa-records/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	slog.Info("Starting spa records API",
		"environment", cfg.Server.Environment,
		"spa_name", cfg.Spa.Name,
	)

	catalogRepo := repositories.NewCatalogRepository(cfg.Spa.DefaultCurrency)
	appointmentRepo := repositories.NewAppointmentRepository()
	expenseRepo := repositories.NewExpenseRepository(seed.Expenses())

	seedStores(cfg, catalogRepo, appointmentRepo)

	metrics := services.NewPrometheusMetrics()
	catalogService := services.NewCatalogService(catalogRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, catalogService)
	financeService := services.NewFinanceService(catalogService, appointmentService, expenseRepo, cfg.Spa.Name)
	recommendationService := services.NewRecommendationService(appointmentRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogService, metrics, cfg.Spa.Name, cfg.Storage.ServicesFile)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, metrics, cfg.Storage.AppointmentsFile)
	financeHandler := handlers.NewFinanceHandler(financeService, metrics)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, metrics)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	rateLimiter := middleware.NewRateLimiter(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	)
	defer rateLimiter.Stop()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	registerRoutes(e, catalogHandler, appointmentHandler, financeHandler, recommendationHandler, healthHandler)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err.Error())
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// seedStores fills the catalog and the appointment book. Persisted files win;
// when a file is missing the built-in demo data is loaded instead, so a fresh
// checkout starts with a usable dataset.
func seedStores(
	cfg *config.Config,
	catalogRepo repositories.CatalogRepositoryInterface,
	appointmentRepo repositories.AppointmentRepositoryInterface,
) {
	if err := catalogRepo.LoadFromFile(cfg.Storage.ServicesFile); err != nil {
		if !errors.Is(err, repositories.ErrFileNotFound) {
			slog.Warn("Could not load services file, seeding defaults",
				"path", cfg.Storage.ServicesFile, "error", err.Error())
		}
		for _, svc := range seed.Catalog() {
			if insertErr := catalogRepo.Insert(svc.Category, svc); insertErr != nil {
				slog.Error("Failed to seed service", "service", svc.Name, "error", insertErr.Error())
			}
		}
	}

	if err := appointmentRepo.LoadFromFile(cfg.Storage.AppointmentsFile); err != nil {
		if !errors.Is(err, repositories.ErrFileNotFound) {
			slog.Warn("Could not load appointments file, seeding defaults",
				"path", cfg.Storage.AppointmentsFile, "error", err.Error())
		}

		seeded := seed.Appointments(time.Now())
		if cfg.Storage.SeedMode == "random" {
			names := make([]string, 0)
			for _, category := range catalogRepo.Listing() {
				for _, svc := range category.Services {
					names = append(names, svc.Name)
				}
			}
			seeded = seed.RandomAppointments(time.Now(), len(seeded), names)
		}

		for _, appt := range seeded {
			if insertErr := appointmentRepo.Insert(appt); insertErr != nil {
				slog.Error("Failed to seed appointment", "phone_id", appt.PhoneID, "error", insertErr.Error())
			}
		}
	}
}

func registerRoutes(
	e *echo.Echo,
	catalog *handlers.CatalogHandler,
	appointments *handlers.AppointmentHandler,
	finance *handlers.FinanceHandler,
	recommendations *handlers.RecommendationHandler,
	health *handlers.HealthCheckHandler,
) {
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	svc := api.Group("/services")
	svc.GET("", catalog.ListCatalog)
	svc.POST("", catalog.CreateService)
	svc.GET("/:name", catalog.GetService)
	svc.PATCH("/:name", catalog.UpdateService)
	svc.DELETE("/:name", catalog.DeleteService)
	svc.PUT("/:name/price", catalog.SetPrice)
	svc.PUT("/currency", catalog.ChangeCurrency)
	svc.POST("/save", catalog.SaveCatalog)
	svc.POST("/load", catalog.LoadCatalog)

	appt := api.Group("/appointments")
	appt.GET("", appointments.ListAppointments)
	appt.POST("", appointments.CreateAppointment)
	appt.GET("/:phone_id", appointments.GetAppointment)
	appt.PATCH("/:phone_id", appointments.UpdateAppointment)
	appt.DELETE("/:phone_id", appointments.DeleteAppointment)
	appt.POST("/save", appointments.SaveAppointments)
	appt.POST("/load", appointments.LoadAppointments)

	api.GET("/finance/report", finance.GetReport)

	api.GET("/recommendations/popular", recommendations.GetPopularServices)
	api.GET("/recommendations/customers/:phone_id", recommendations.GetCustomerRecommendations)
}
