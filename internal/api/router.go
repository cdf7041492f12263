package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobs4devs/vacancy-api/internal/api/handler"
	"github.com/jobs4devs/vacancy-api/internal/api/middleware"
	"github.com/jobs4devs/vacancy-api/internal/core/domain"
	"github.com/jobs4devs/vacancy-api/internal/core/service"
	"github.com/jobs4devs/vacancy-api/internal/infrastructure/config"
	mongodb "github.com/jobs4devs/vacancy-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobs4devs/vacancy-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vacancy_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	lockout := redisdb.NewLockoutPolicy(rdb, cfg.Lockout.MaxAttempts, cfg.Lockout.Window())
	authService := service.NewAuthService(userRepo, lockout, cfg.JWTSecret, cfg.TokenTTL(), log)
	authHandler := handler.NewAuthHandler(authService)

	vacancyRepo := mongodb.NewVacancyRepository(db)
	vacancyService := service.NewVacancyService(vacancyRepo, log)
	vacancyHandler := handler.NewVacancyHandler(vacancyService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes (anonymous) ---
	e.POST("/user", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Vacancy routes ---
	// Listing is public; everything else requires a bearer token, and delete
	// additionally requires the DeleteVacancy claim.
	e.GET("/vacancy", vacancyHandler.List)
	e.GET("/vacancy/:id", vacancyHandler.Get, auth)
	e.POST("/vacancy", vacancyHandler.Create, auth)
	e.PUT("/vacancy/:id", vacancyHandler.Update, auth)
	e.DELETE("/vacancy/:id", vacancyHandler.Delete, auth, middleware.RequireClaim(domain.ClaimDeleteVacancy))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
