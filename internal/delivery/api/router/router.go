// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutriledger/internal/delivery/api/middleware"
	"nutriledger/internal/delivery/api/router/handler"
	"nutriledger/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MealHandler     *handler.MealHandler
	ProgressHandler *handler.ProgressHandler
	ProfileHandler  *handler.ProfileHandler
	AdminHandler    *handler.AdminHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	mealHandler     *handler.MealHandler
	progressHandler *handler.ProgressHandler
	profileHandler  *handler.ProfileHandler
	adminHandler    *handler.AdminHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		mealHandler:     params.MealHandler,
		progressHandler: params.ProgressHandler,
		profileHandler:  params.ProfileHandler,
		adminHandler:    params.AdminHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.POST("/meals", r.mealHandler.LogMeal)
		apiV1.GET("/progress", r.progressHandler.GetProgress)
		apiV1.GET("/leaderboard", r.progressHandler.GetLeaderboard)
		apiV1.GET("/profile", r.profileHandler.GetProfile)
		apiV1.PATCH("/targets", r.profileHandler.UpdateTargets)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/users/:id/approve", r.adminHandler.ApproveUser)
	}
}
