package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/password-meter/backend/config"
	"github.com/password-meter/backend/internal/application/usecase/strength"
	"github.com/password-meter/backend/internal/integration/entrypoint/dto"
	"github.com/password-meter/backend/internal/integration/terminal"
)

func runCheck(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(config.Load())
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"check"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckCommand_Text(t *testing.T) {
	stdout, _, err := runCheck(t, "Password1\n")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Password Strength: Moderate (Score: 4/5)")
	assert.Contains(t, stdout, terminal.RecommendationsHeading)
	assert.Contains(t, stdout, "- "+strength.MsgNoSpecial)
	assert.NotContains(t, stdout, "Password1")
}

func TestCheckCommand_JSON(t *testing.T) {
	stdout, _, err := runCheck(t, "Tr0ub4dor&3\r\n", "--json")
	require.NoError(t, err)

	var resp dto.EvaluateStrengthResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 5, resp.Score)
	assert.Equal(t, "Strong", resp.Strength)
	assert.Empty(t, resp.Feedback)
	assert.True(t, resp.Celebrate)
}

func TestCheckCommand_EmptyInput(t *testing.T) {
	stdout, _, err := runCheck(t, "")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Please enter a password to evaluate")
}

func TestCheckCommand_LineWithoutNewline(t *testing.T) {
	stdout, _, err := runCheck(t, "abc", "--json")
	require.NoError(t, err)

	var resp dto.EvaluateStrengthResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 1, resp.Score)
}

func TestCheckCommand_RejectsArguments(t *testing.T) {
	_, _, err := runCheck(t, "", "secret")
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestReadPassword(t *testing.T) {
	password, err := readPassword(strings.NewReader("first line\nsecond line\n"))
	require.NoError(t, err)
	assert.Equal(t, "first line", password)

	password, err = readPassword(strings.NewReader("  padded  \n"))
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", password)

	_, err = readPassword(failingReader{})
	assert.Error(t, err)
}

func TestRootCommand_StartsInteractiveMeter(t *testing.T) {
	var started tea.Model
	run := func(model tea.Model, in io.Reader, out io.Writer) error {
		started = model
		return nil
	}

	cmd := newRootCommand(config.Load(), run)
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	require.NoError(t, cmd.Execute())

	model, ok := started.(terminal.Model)
	require.True(t, ok, "expected the terminal meter model")
	assert.NotNil(t, model.Result())
}
