// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authsvc/config"
	"authsvc/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PaymentHandler *handler.PaymentHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	paymentHandler *handler.PaymentHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		paymentHandler: params.PaymentHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	if r.config.API.PaymentsEnabled() {
		e.POST("/send-payment", r.paymentHandler.SendPayment)
	}
}
