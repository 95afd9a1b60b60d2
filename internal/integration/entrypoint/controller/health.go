package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/password-meter/backend/internal/application/usecase/strength"
)

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
	evaluatorReady       = "ready"
	evaluatorUnavailable = "unavailable"
)

// HealthController reports liveness together with the evaluator canary.
type HealthController struct {
	canary func() strength.CanaryResult
}

// CanaryResponse is the known-password evaluation shown on /health.
type CanaryResponse struct {
	Score    int    `json:"score"`
	Strength string `json:"strength"`
	Passed   bool   `json:"passed"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string          `json:"status"`
	Evaluator string          `json:"evaluator"`
	Canary    *CanaryResponse `json:"canary,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// NewHealthController creates a health controller. A nil canary reports the
// evaluator as unavailable.
func NewHealthController(canary func() strength.CanaryResult) *HealthController {
	return &HealthController{
		canary: canary,
	}
}

// Check handles GET /health requests.
// A failing or missing canary answers 503 so load balancers stop routing here.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    healthStatusDegraded,
		Evaluator: evaluatorUnavailable,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.canary != nil {
		result := h.canary()
		response.Canary = &CanaryResponse{
			Score:    result.Score,
			Strength: string(result.Strength),
			Passed:   result.Passed,
		}
		if result.Passed {
			response.Status = healthStatusOK
			response.Evaluator = evaluatorReady
		}
	}

	status := http.StatusOK
	if response.Status != healthStatusOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
