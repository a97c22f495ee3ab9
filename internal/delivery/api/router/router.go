// Package router registers the ledger's HTTP routes.
package router

import (
	"nutriledger/internal/delivery/api/middleware"
	"nutriledger/internal/delivery/api/router/handler"
	"nutriledger/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegisterHandler *handler.RegisterHandler
	SummaryHandler  *handler.SummaryHandler
	GoalHandler     *handler.GoalHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Registry        *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	registerHandler *handler.RegisterHandler
	summaryHandler  *handler.SummaryHandler
	goalHandler     *handler.GoalHandler
	authMiddleware  *middleware.AuthMiddleware
	registry        *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		registerHandler: params.RegisterHandler,
		summaryHandler:  params.SummaryHandler,
		goalHandler:     params.GoalHandler,
		authMiddleware:  params.AuthMiddleware,
		registry:        params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	registers := apiV1.Group("/registers")
	{
		registers.POST("", r.registerHandler.CreateRegister)
		registers.GET("", r.registerHandler.ListRegisters)
		registers.GET("/:id", r.registerHandler.GetRegister)
		registers.DELETE("/:id", r.registerHandler.DeleteRegister)
		registers.POST("/:id/confirm", r.registerHandler.ConfirmRegister)
		registers.POST("/:id/reject", r.registerHandler.RejectRegister)
	}

	summary := apiV1.Group("/summary")
	{
		summary.GET("/daily", r.summaryHandler.DailySummary)
		summary.GET("/period", r.summaryHandler.PeriodSummary)
		summary.GET("/export", r.summaryHandler.ExportPeriod)
	}

	goals := apiV1.Group("/goals")
	{
		goals.GET("", r.goalHandler.GetGoal)
		goals.PUT("", r.goalHandler.SetGoal)
		goals.DELETE("", r.goalHandler.ClearGoal)
		goals.POST("/suggest", r.goalHandler.SuggestGoal)
		goals.POST("/parse", r.goalHandler.ApplyGoalText)
		goals.PUT("/water", r.goalHandler.SetWaterGoal)
		goals.POST("/water/parse", r.goalHandler.ApplyWaterText)
	}
}
