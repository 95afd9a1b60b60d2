package strength

import (
	"context"
	"log/slog"

	"github.com/password-meter/backend/internal/domain/entity"
	domainerror "github.com/password-meter/backend/internal/domain/error"
)

// EvaluatePasswordInput represents the input for password evaluation.
type EvaluatePasswordInput struct {
	Password string
}

// EvaluatePasswordOutput represents the output of password evaluation.
type EvaluatePasswordOutput struct {
	Evaluation   entity.Evaluation
	Progress     float64
	Tone         entity.Tone
	Headline     string
	ShowFeedback bool
	Celebrate    bool
}

// EvaluatePasswordUseCase handles password strength evaluation for the shells.
type EvaluatePasswordUseCase struct {
	logger *slog.Logger
}

// NewEvaluatePasswordUseCase creates a new EvaluatePasswordUseCase instance.
// A nil logger falls back to slog.Default().
func NewEvaluatePasswordUseCase(logger *slog.Logger) *EvaluatePasswordUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EvaluatePasswordUseCase{
		logger: logger,
	}
}

// canaryPassword satisfies every criterion and triggers no advisory.
const canaryPassword = "Tr0ub4dor&3"

// CanaryResult is the outcome of evaluating the built-in known password.
type CanaryResult struct {
	Score    int
	Strength entity.Strength
	Passed   bool
}

// Canary evaluates the known password and reports whether the result matched.
func (uc *EvaluatePasswordUseCase) Canary() CanaryResult {
	result := Evaluate(canaryPassword)
	return CanaryResult{
		Score:    result.Score,
		Strength: result.Strength,
		Passed:   result.Score == entity.MaxScore && result.Strength == entity.StrengthStrong && len(result.Feedback) == 0,
	}
}

// Ready reports whether the evaluator produces the expected result for a known password.
func (uc *EvaluatePasswordUseCase) Ready() bool {
	return uc.Canary().Passed
}

// Execute evaluates the password and derives the presentation hints.
// The password itself is never logged.
func (uc *EvaluatePasswordUseCase) Execute(ctx context.Context, input EvaluatePasswordInput) (*EvaluatePasswordOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodeEvaluationCanceled,
			"evaluation canceled",
			err,
		)
	}

	evaluation := Evaluate(input.Password)

	uc.logger.DebugContext(ctx, "Password evaluated",
		"score", evaluation.Score,
		"strength", string(evaluation.Strength),
		"feedback_count", len(evaluation.Feedback),
	)

	return &EvaluatePasswordOutput{
		Evaluation:   evaluation,
		Progress:     evaluation.Progress(),
		Tone:         evaluation.Tone(),
		Headline:     evaluation.Headline(),
		ShowFeedback: evaluation.ShowFeedback(),
		Celebrate:    evaluation.Celebrate(),
	}, nil
}
