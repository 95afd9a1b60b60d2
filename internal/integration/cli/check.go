package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/password-meter/backend/config"
	"github.com/password-meter/backend/internal/application/usecase/strength"
	"github.com/password-meter/backend/internal/integration/terminal"
)

func newCheckCommand(cfg *config.Config) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate one password read from stdin",
		Long: `Reads a single line from stdin and prints its strength report.
The password is never echoed back.`,
		Example: `  printf '%s\n' 'Tr0ub4dor&3' | meter check
  meter check --json < password.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			useCase := strength.NewEvaluatePasswordUseCase(newLogger(cfg, cmd.ErrOrStderr()))
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			output, err := useCase.Execute(ctx, strength.EvaluatePasswordInput{Password: password})
			if err != nil {
				return err
			}

			if asJSON {
				return terminal.WriteJSON(cmd.OutOrStdout(), output)
			}
			return terminal.WriteText(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

// readPassword reads one line, dropping the line terminator. EOF before any
// input yields the empty password.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
