// Package router sets up the HTTP routing for the application.
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/password-meter/backend/internal/integration/entrypoint/controller"
	"github.com/password-meter/backend/internal/integration/entrypoint/middleware"
	"github.com/password-meter/backend/internal/integration/entrypoint/web"
)

// StrengthPath is the evaluation endpoint, relative to the engine root.
const StrengthPath = "/api/v1/password/strength"

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	strengthController *controller.StrengthController
	pageController     *controller.PageController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	strengthController *controller.StrengthController,
	pageController *controller.PageController,
) *Router {
	return &Router{
		healthController:   healthController,
		strengthController: strengthController,
		pageController:     pageController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) (*gin.Engine, error) {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()
	if err := r.setupPageRoutes(); err != nil {
		return nil, err
	}

	return r.engine, nil
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.strengthController != nil {
			password := v1.Group("/password")
			{
				password.POST("/strength", r.strengthController.Evaluate)
			}
		}
	}
}

// setupPageRoutes configures the single-page UI.
func (r *Router) setupPageRoutes() error {
	if r.pageController == nil {
		return nil
	}

	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.engine.SetHTMLTemplate(templates)
	r.engine.GET("/", r.pageController.Index)

	return nil
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
