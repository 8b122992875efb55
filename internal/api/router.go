package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/boltdash/driver-dashboard/docs"
	"github.com/boltdash/driver-dashboard/internal/api/handler"
	"github.com/boltdash/driver-dashboard/internal/api/middleware"
	"github.com/boltdash/driver-dashboard/internal/core/service"
	"github.com/boltdash/driver-dashboard/internal/infrastructure/config"
	mongodb "github.com/boltdash/driver-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/boltdash/driver-dashboard/internal/infrastructure/db/redis"
	"github.com/boltdash/driver-dashboard/internal/infrastructure/http/handlers"
	"github.com/boltdash/driver-dashboard/internal/infrastructure/provider"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	credentials := mongodb.NewCredentialRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	expenses := mongodb.NewExpenseRepository(db)
	sessions := redisdb.NewSessionRegistry(rdb)
	idp := provider.NewLocalProvider(credentials, sessions, log)

	authService := service.NewAuthService(idp, profiles, cfg.JWTSecret, cfg.TokenTTL, log)
	expenseService := service.NewExpenseService(expenses, log)
	dashboardService := service.NewDashboardService(log)

	authHandler := handler.NewAuthHandler(authService, cfg.JWTSecret, cfg.TokenTTL, cfg.IsProduction())
	profileHandler := handler.NewProfileHandler(authService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	session := middleware.Session(cfg.JWTSecret)

	// --- Auth routes ---
	// Logout stays outside the session gate: expired credentials must
	// still get their cookie cleared.
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Authenticated API routes ---
	apiGroup := e.Group("/api", session)
	apiGroup.GET("/profile", profileHandler.Get)
	apiGroup.GET("/expenses", expenseHandler.List)
	apiGroup.POST("/add", expenseHandler.Add)
	apiGroup.GET("/dashboard", dashboardHandler.Get)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
