// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tresor/internal/delivery/http/router/handler"
	"tresor/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
	Registry    *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
	registry    *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
		registry:    params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	users := e.Group("/api/users")
	{
		users.POST("", r.userHandler.CreateUser)
		users.GET("", r.userHandler.GetAllUsers)
		users.GET("/:id", r.userHandler.GetUserByID)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
		users.POST("/byemail", r.userHandler.GetUserIDByEmail)
		users.POST("/login", r.userHandler.Login)
	}
}
