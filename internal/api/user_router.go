package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niini/minishop/internal/api/handler"
	"github.com/niini/minishop/internal/api/middleware"
	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/service"
	mongodb "github.com/niini/minishop/internal/infrastructure/db/mongo"
	redisdb "github.com/niini/minishop/internal/infrastructure/db/redis"
)

// UserServiceVersion is reported by the liveness probe.
const UserServiceVersion = "0.1.0"

// NewUserRouter builds the Echo instance for the user service with all routes
// registered.
func NewUserRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("minishop_user"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	identityCache := redisdb.NewIdentityCache(rdb, userRepo, log)

	tokenService := service.NewJWTTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, roleRepo, tokenService, log)
	userService := service.NewUserService(userRepo, identityCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authGate := middleware.Auth(tokenService, identityCache)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)

	// --- User routes (gated per the endpoint policy) ---
	users := e.Group("/users", authGate)
	users.GET("", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	users.GET("/me", userHandler.Me)
	users.GET("/:id", userHandler.Get) // admin, moderator, or self; checked in the handler
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler("user-service", UserServiceVersion)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
