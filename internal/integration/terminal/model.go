package terminal

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/password-meter/backend/internal/application/usecase/strength"
)

const (
	// balloonFrames is how many animation frames play when a password turns strong.
	balloonFrames = 12
	balloonTick   = 120 * time.Millisecond
	balloonWidth  = 40
	maxMeterWidth = 60
	minMeterWidth = 10
)

// Evaluator scores passwords for the terminal shell.
type Evaluator interface {
	Execute(ctx context.Context, input strength.EvaluatePasswordInput) (*strength.EvaluatePasswordOutput, error)
}

// balloonTickMsg advances the balloons animation.
type balloonTickMsg struct{}

// Model is the bubbletea model for the interactive strength meter.
type Model struct {
	input     textinput.Model
	meter     progress.Model
	evaluator Evaluator
	styles    Styles
	title     string

	result    *strength.EvaluatePasswordOutput
	err       error
	lastValue string
	balloons  int
}

// NewModel creates a focused, masked password meter.
func NewModel(evaluator Evaluator, title string) Model {
	ti := textinput.New()
	ti.Placeholder = "type a password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 0
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		input:     ti,
		meter:     progress.New(progress.WithGradient(string(Destructive), string(Success))),
		evaluator: evaluator,
		styles:    DefaultStyles(),
		title:     title,
	}
	m.meter.Width = maxMeterWidth
	m.evaluate("")
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.meter.Width = max(min(msg.Width-4, maxMeterWidth), minMeterWidth)
		return m, nil

	case balloonTickMsg:
		if m.balloons > 0 {
			m.balloons--
		}
		if m.balloons > 0 {
			return m, tickBalloons()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != m.lastValue {
		wasStrong := m.result != nil && m.result.Celebrate
		m.evaluate(value)
		if m.result != nil && m.result.Celebrate && !wasStrong {
			m.balloons = balloonFrames
			return m, tea.Batch(cmd, tickBalloons())
		}
	}

	return m, cmd
}

// evaluate runs the evaluator for value and stores its outcome.
func (m *Model) evaluate(value string) {
	m.lastValue = value
	output, err := m.evaluator.Execute(context.Background(), strength.EvaluatePasswordInput{Password: value})
	if err != nil {
		m.err = err
		m.result = nil
		return
	}
	m.err = nil
	m.result = output
}

// View renders the meter.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("🔒 " + m.title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Evaluate your password security based on multiple criteria"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Prompt.Render("Enter your password:"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render(m.err.Error()))
		sb.WriteString("\n")
	} else if m.result != nil {
		sb.WriteString(renderResult(m.result, m.styles))
		sb.WriteString(m.meter.ViewAs(m.result.Progress))
		sb.WriteString("\n")
	}

	if m.balloons > 0 {
		sb.WriteString(m.styles.Balloons.Render(balloonRow(m.balloons)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("esc to quit"))
	sb.WriteString("\n")

	return sb.String()
}

// Result returns the most recent evaluation, if any.
func (m Model) Result() *strength.EvaluatePasswordOutput {
	return m.result
}

func tickBalloons() tea.Cmd {
	return tea.Tick(balloonTick, func(time.Time) tea.Msg {
		return balloonTickMsg{}
	})
}

// balloonRow draws balloons drifting right as the animation counts down.
func balloonRow(frame int) string {
	offset := (balloonFrames - frame) * 2 % balloonWidth
	return strings.Repeat(" ", offset) + "🎈 🎈  🎈 🎈"
}
