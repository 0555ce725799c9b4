package handler

import (
	_ "github.com/dafibh/mint/mint-backend/docs"
	"github.com/dafibh/mint/mint-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up the page, API and API documentation routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, adviceHandler *AdviceHandler) {
	// Page routes
	e.GET("/", adviceHandler.Index)
	e.POST("/advice", adviceHandler.SubmitForm, middleware.RateLimitMiddleware(rateLimiter))

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API version 1
	api := e.Group("/api/v1")
	api.POST("/advice", adviceHandler.CreateAdvice, middleware.RateLimitMiddleware(rateLimiter))
}
