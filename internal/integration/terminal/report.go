package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/password-meter/backend/internal/application/usecase/strength"
	"github.com/password-meter/backend/internal/integration/entrypoint/dto"
)

// RecommendationsHeading introduces the feedback list for Weak and Moderate passwords.
const RecommendationsHeading = "Recommendations to improve:"

// renderResult renders the banner and, when applicable, the recommendation list.
func renderResult(output *strength.EvaluatePasswordOutput, styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.Banner(output.Tone).Render(output.Headline))
	sb.WriteString("\n")

	if output.ShowFeedback {
		sb.WriteString(styles.Heading.Render(RecommendationsHeading))
		sb.WriteString("\n")
		for _, item := range output.Evaluation.Feedback {
			sb.WriteString(styles.Bullet.Render("- " + item))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// WriteText writes a plain-text report of an evaluation.
func WriteText(w io.Writer, output *strength.EvaluatePasswordOutput) error {
	var sb strings.Builder

	sb.WriteString(output.Headline)
	sb.WriteString("\n")
	if output.ShowFeedback {
		sb.WriteString(RecommendationsHeading)
		sb.WriteString("\n")
		for _, item := range output.Evaluation.Feedback {
			sb.WriteString("- " + item + "\n")
		}
	}
	fmt.Fprintf(&sb, "Progress: %.0f%%\n", output.Progress*100)

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes the evaluation using the same shape as the HTTP API.
func WriteJSON(w io.Writer, output *strength.EvaluatePasswordOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(dto.ToEvaluateStrengthResponse(output))
}
