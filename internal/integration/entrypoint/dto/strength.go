// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/password-meter/backend/internal/application/usecase/strength"
)

// EvaluateStrengthRequest represents the request body for password evaluation.
// A missing or null password is evaluated as the empty string.
type EvaluateStrengthRequest struct {
	Password *string `json:"password"`
}

// PasswordValue returns the password to evaluate.
func (r EvaluateStrengthRequest) PasswordValue() string {
	if r.Password == nil {
		return ""
	}
	return *r.Password
}

// EvaluateStrengthResponse represents the response for password evaluation.
type EvaluateStrengthResponse struct {
	Score        int      `json:"score"`
	Strength     string   `json:"strength"`
	Feedback     []string `json:"feedback"`
	Progress     float64  `json:"progress"`
	Tone         string   `json:"tone"`
	Headline     string   `json:"headline"`
	ShowFeedback bool     `json:"show_feedback"`
	Celebrate    bool     `json:"celebrate"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToEvaluateStrengthResponse converts a use case output to an EvaluateStrengthResponse DTO.
func ToEvaluateStrengthResponse(output *strength.EvaluatePasswordOutput) EvaluateStrengthResponse {
	feedback := output.Evaluation.Feedback
	if feedback == nil {
		feedback = []string{}
	}
	return EvaluateStrengthResponse{
		Score:        output.Evaluation.Score,
		Strength:     string(output.Evaluation.Strength),
		Feedback:     feedback,
		Progress:     output.Progress,
		Tone:         string(output.Tone),
		Headline:     output.Headline,
		ShowFeedback: output.ShowFeedback,
		Celebrate:    output.Celebrate,
	}
}
