// Package cli implements the meter command line interface.
package cli

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/password-meter/backend/config"
	"github.com/password-meter/backend/internal/application/usecase/strength"
	"github.com/password-meter/backend/internal/integration/terminal"
)

// programRunner starts the interactive program; replaced in tests.
type programRunner func(model tea.Model, in io.Reader, out io.Writer) error

func runProgram(model tea.Model, in io.Reader, out io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	return err
}

// NewRootCommand builds the meter command tree.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	return newRootCommand(cfg, runProgram)
}

func newRootCommand(cfg *config.Config, run programRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meter",
		Short: "Evaluate password strength in the terminal",
		Long: `meter scores a password against five criteria (length, lowercase,
uppercase, digit, special character) and warns about spaces, excessive
length and common patterns.

Run without arguments to start the interactive meter.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the screen; keep structured logs off it
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			model := terminal.NewModel(strength.NewEvaluatePasswordUseCase(logger), cfg.Page.Title)
			return run(model, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newCheckCommand(cfg))

	return cmd
}

// Execute runs the meter command with the process arguments.
func Execute(cfg *config.Config) int {
	if err := NewRootCommand(cfg).ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
}
