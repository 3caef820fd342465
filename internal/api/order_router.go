package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niini/minishop/internal/api/handler"
	"github.com/niini/minishop/internal/core/ports"
	"github.com/niini/minishop/internal/core/service"
	mongodb "github.com/niini/minishop/internal/infrastructure/db/mongo"
)

// OrderServiceVersion is reported by the liveness probe.
const OrderServiceVersion = "0.1.0"

// NewOrderRouter builds the Echo instance for the order service. Order
// endpoints carry no auth gate; the service is deployed behind an internal
// trust boundary (see DESIGN.md).
func NewOrderRouter(db *mongo.Database, events ports.OrderEventSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("minishop_order"))

	// --- Dependencies ---
	orderRepo := mongodb.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, events, log)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- Order routes ---
	e.GET("/orders", orderHandler.List)
	e.POST("/orders", orderHandler.Create)
	e.GET("/orders/:id", orderHandler.Get)
	e.GET("/orders/user/:userId", orderHandler.ListByUser)
	e.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	e.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	e.DELETE("/orders/:id", orderHandler.Delete)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler("order-service", OrderServiceVersion)
	readinessHandler := handler.NewReadinessHandler(db, nil)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
