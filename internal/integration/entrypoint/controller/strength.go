// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/password-meter/backend/internal/application/usecase/strength"
	domainerror "github.com/password-meter/backend/internal/domain/error"
	"github.com/password-meter/backend/internal/integration/entrypoint/dto"
)

// StrengthController handles password strength endpoints.
type StrengthController struct {
	evaluateUseCase *strength.EvaluatePasswordUseCase
	maxRequestBytes int64
}

// NewStrengthController creates a new strength controller instance.
// A non-positive maxRequestBytes disables the body size limit.
func NewStrengthController(evaluateUseCase *strength.EvaluatePasswordUseCase, maxRequestBytes int64) *StrengthController {
	return &StrengthController{
		evaluateUseCase: evaluateUseCase,
		maxRequestBytes: maxRequestBytes,
	}
}

// Evaluate handles POST /password/strength requests.
func (c *StrengthController) Evaluate(ctx *gin.Context) {
	// Never let intermediaries cache a response describing a password
	ctx.Header("Cache-Control", "no-store")

	if c.maxRequestBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxRequestBytes)
	}

	var req dto.EvaluateStrengthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.handleStrengthError(ctx, classifyBindError(err))
		return
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), strength.EvaluatePasswordInput{
		Password: req.PasswordValue(),
	})
	if err != nil {
		c.handleStrengthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvaluateStrengthResponse(output))
}

// classifyBindError wraps a body decoding failure in the matching domain error.
func classifyBindError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domainerror.NewStrengthError(
			domainerror.ErrCodeRequestTooLarge,
			"Request body too large",
			domainerror.ErrRequestTooLarge,
		)
	}
	return domainerror.NewStrengthError(
		domainerror.ErrCodeInvalidRequestBody,
		"Invalid request body",
		domainerror.ErrInvalidRequestBody,
	)
}

// handleStrengthError maps domain errors to HTTP responses.
func (c *StrengthController) handleStrengthError(ctx *gin.Context, err error) {
	var strengthErr *domainerror.StrengthError
	if !errors.As(err, &strengthErr) {
		slog.ErrorContext(ctx.Request.Context(), "Unexpected strength evaluation error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to evaluate password",
		})
		return
	}

	status := http.StatusInternalServerError
	switch strengthErr.Code {
	case domainerror.ErrCodeInvalidRequestBody:
		status = http.StatusBadRequest
	case domainerror.ErrCodeRequestTooLarge:
		status = http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeEvaluationCanceled:
		// Client went away; nginx convention for a closed request
		status = 499
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: strengthErr.Message,
		Code:  string(strengthErr.Code),
	})
}
