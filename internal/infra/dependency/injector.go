// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/password-meter/backend/config"
	"github.com/password-meter/backend/internal/application/usecase/strength"
	"github.com/password-meter/backend/internal/infra/server/router"
	"github.com/password-meter/backend/internal/integration/entrypoint/controller"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	EvaluateUseCase *strength.EvaluatePasswordUseCase
	Router          *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, logger *slog.Logger) *Injector {
	// Create use cases
	evaluateUseCase := strength.NewEvaluatePasswordUseCase(logger)

	// Create controllers
	healthController := controller.NewHealthController(evaluateUseCase.Canary)
	strengthController := controller.NewStrengthController(evaluateUseCase, cfg.Server.MaxRequestBytes)
	pageController := controller.NewPageController(cfg.Page.Title, router.StrengthPath)

	// Create router
	r := router.NewRouter(healthController, strengthController, pageController)

	return &Injector{
		Config:          cfg,
		EvaluateUseCase: evaluateUseCase,
		Router:          r,
	}
}
