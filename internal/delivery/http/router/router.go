// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	httpmiddleware "autolot/internal/delivery/http/middleware"
	"autolot/internal/delivery/http/router/handler"
	"autolot/internal/infra/metrics"
	"autolot/internal/usecase"
)

// RouterParams holds the handlers and middleware the router wires up,
// injected by Fx.
type RouterParams struct {
	fx.In

	StoreHandler   *handler.StoreHandler
	UserHandler    *handler.UserHandler
	VehicleHandler *handler.VehicleHandler
	UnitHandler    *handler.UnitHandler
	AuthMiddleware *httpmiddleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Reads are
// open; every mutating route requires a bearer token, and destructive or
// account-administration routes additionally require the admin role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		r.params.Metrics.Registry,
		promhttp.HandlerOpts{},
	)))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	authenticated := r.params.AuthMiddleware.Authenticate
	adminOnly := r.params.AuthMiddleware.RequireRole("admin")

	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", r.params.StoreHandler.List)
		storeGroup.GET("/:id", r.params.StoreHandler.Get)
		storeGroup.POST("", r.params.StoreHandler.Create, authenticated)
		storeGroup.PUT("/:id", r.params.StoreHandler.Update, authenticated)
		storeGroup.DELETE("/:id", r.params.StoreHandler.Delete, authenticated, adminOnly)
	}

	userGroup := e.Group("/users")
	userGroup.Use(authenticated)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, adminOnly)

		userGroup.POST("/:id/activate", r.params.UserHandler.SetFlag(usecase.FlagActive, true), adminOnly)
		userGroup.POST("/:id/deactivate", r.params.UserHandler.SetFlag(usecase.FlagActive, false), adminOnly)
		userGroup.POST("/:id/confirm", r.params.UserHandler.SetFlag(usecase.FlagConfirmed, true), adminOnly)
		userGroup.POST("/:id/block", r.params.UserHandler.SetFlag(usecase.FlagBlocked, true), adminOnly)
	}

	vehicleGroup := e.Group("/vehicles")
	{
		vehicleGroup.GET("", r.params.VehicleHandler.List)
		vehicleGroup.GET("/:id", r.params.VehicleHandler.Get)
		vehicleGroup.POST("", r.params.VehicleHandler.Create, authenticated)
		vehicleGroup.PUT("/:id", r.params.VehicleHandler.Update, authenticated)
		vehicleGroup.DELETE("/:id", r.params.VehicleHandler.Delete, authenticated, adminOnly)
	}

	unitGroup := e.Group("/units")
	{
		unitGroup.GET("", r.params.UnitHandler.List)
		unitGroup.GET("/:id", r.params.UnitHandler.Get)
		unitGroup.POST("", r.params.UnitHandler.Create, authenticated)
		unitGroup.PUT("/:id", r.params.UnitHandler.Update, authenticated)
		unitGroup.DELETE("/:id", r.params.UnitHandler.Delete, authenticated, adminOnly)

		// Registered before the :id matcher would shadow it.
		unitGroup.POST("/expire", r.params.UnitHandler.Sweep, authenticated, adminOnly)
		unitGroup.POST("/:id/expire", r.params.UnitHandler.Expire, authenticated)
	}
}
