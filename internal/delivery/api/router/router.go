// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AirportHandler               *handler.AirportHandler
	DriverRateHandler            *handler.DriverRateHandler
	LabourRateHandler            *handler.LabourRateHandler
	PetrolBulkHandler            *handler.PetrolBulkHandler
	VegetableAvailabilityHandler *handler.VegetableAvailabilityHandler
	AdminNotificationHandler     *handler.AdminNotificationHandler
	DriverNotificationHandler    *handler.DriverNotificationHandler
	PreOrderHandler              *handler.PreOrderHandler
	AuthMiddleware               *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Plain resources
	r.params.AirportHandler.Register(e.Group("/airport"))
	r.params.DriverRateHandler.Register(e.Group("/driverRate"))
	r.params.LabourRateHandler.Register(e.Group("/labourRate"))
	r.params.PetrolBulkHandler.Register(e.Group("/petrolBulk"))
	r.params.VegetableAvailabilityHandler.Register(e.Group("/vegetableAvailability"))

	// Admin notifications are scoped to the admin of the bearer token
	r.params.AdminNotificationHandler.Register(e.Group("/notification", r.params.AuthMiddleware.Authenticate))

	// Driver notifications are scoped by the driver id in the path
	r.params.DriverNotificationHandler.Register(e.Group("/driverNotification"))

	r.params.PreOrderHandler.Register(e.Group("/preOrder"))
}
