package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskhub/todo-system/docs"
	"github.com/taskhub/todo-system/internal/api/handler"
	"github.com/taskhub/todo-system/internal/api/middleware"
	"github.com/taskhub/todo-system/internal/core/ports"
	"github.com/taskhub/todo-system/internal/core/service"
	mongodb "github.com/taskhub/todo-system/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhub/todo-system/internal/infrastructure/db/redis"
	"github.com/taskhub/todo-system/internal/infrastructure/http/handlers"
	"github.com/taskhub/todo-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the token cache and its readiness check are then skipped.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	var tokenCache ports.TokenCache
	if rdb != nil {
		tokenCache = redisdb.NewTokenCache(rdb)
	}

	authService := service.NewAuthService(userRepo, tokenCache, cfg.JWTSecret, cfg.TokenTTL, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authGuard := middleware.Auth(cfg.JWTSecret)

	// --- User routes ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)

	// --- Task routes (token required) ---
	todos := e.Group("/todos", authGuard)
	todos.GET("", taskHandler.List)
	todos.POST("", taskHandler.Create)
	// The bulk route is registered before the parameterized ones so
	// "delete" never matches as a task id.
	todos.DELETE("/delete/all", taskHandler.DeleteAll)
	todos.PUT("/:id", taskHandler.Update)
	todos.DELETE("/:id", taskHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler(db)
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
