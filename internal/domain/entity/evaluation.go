// Package entity defines the core business entities for the domain layer.
package entity

import "fmt"

// Strength represents the categorical strength label of a password.
type Strength string

const (
	StrengthEmpty    Strength = "Empty"
	StrengthWeak     Strength = "Weak"
	StrengthModerate Strength = "Moderate"
	StrengthStrong   Strength = "Strong"
)

// Tone represents the visual treatment a shell applies to a strength label.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
)

// MaxScore is the number of scoring criteria.
const MaxScore = 5

// EmptyHeadline is shown instead of a score when no password was entered.
const EmptyHeadline = "Please enter a password to evaluate"

// Evaluation is the result of scoring a single password.
type Evaluation struct {
	Score    int
	Strength Strength
	Feedback []string
}

// ClassifyScore maps a criteria score to its strength label.
func ClassifyScore(score int) Strength {
	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthModerate
	default:
		return StrengthStrong
	}
}

// Progress returns the score as a ratio in [0.0, 1.0].
func (e Evaluation) Progress() float64 {
	return float64(e.Score) / MaxScore
}

// Tone returns the visual treatment for the evaluation's strength.
func (e Evaluation) Tone() Tone {
	switch e.Strength {
	case StrengthStrong:
		return ToneSuccess
	case StrengthModerate:
		return ToneWarning
	case StrengthWeak:
		return ToneError
	default:
		return ToneInfo
	}
}

// ShowFeedback reports whether the recommendation list should be displayed.
func (e Evaluation) ShowFeedback() bool {
	return e.Strength != StrengthStrong && e.Strength != StrengthEmpty
}

// Celebrate reports whether the shell should play its success animation.
func (e Evaluation) Celebrate() bool {
	return e.Strength == StrengthStrong
}

// Headline returns the banner text for the evaluation.
func (e Evaluation) Headline() string {
	if e.Strength == StrengthEmpty {
		return EmptyHeadline
	}
	return fmt.Sprintf("Password Strength: %s (Score: %d/%d)", e.Strength, e.Score, MaxScore)
}
