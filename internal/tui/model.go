// Package tui renders the client as a terminal chat: a scrolling
// conversation, a score banner driven by the latest verdict, and an input
// line whose every keystroke feeds the telemetry accumulator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashureev/cooked/internal/domain"
	"github.com/ashureev/cooked/internal/session"
)

const meterWidth = 30

// turnDoneMsg carries the resolved outcome of a submitted turn back into the
// update loop.
type turnDoneMsg struct {
	result session.Result
}

// Model is the bubbletea model for the client.
type Model struct {
	engine *session.Engine
	styles Styles

	input    textinput.Model
	timeline viewport.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	pastAttempts int
	statusNote   string
	lastInput    string
}

// New creates the TUI model around an engine. pastAttempts is the number of
// history entries found at startup, shown once in the greeting.
func New(engine *session.Engine, pastAttempts int) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Show your attempt. Effort is being measured."
	input.CharLimit = 4000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(colorSizzling)

	return Model{
		engine:       engine,
		styles:       NewStyles(),
		input:        input,
		timeline:     viewport.New(0, 0),
		spinner:      sp,
		pastAttempts: pastAttempts,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// submitCmd resolves a turn off the update loop so typing stays responsive
// while the request is outstanding.
func (m Model) submitCmd(turn *session.Turn) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{result: m.engine.Resolve(context.Background(), turn)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timeline.Width = msg.Width
		m.timeline.Height = msg.Height - 7
		if m.timeline.Height < 3 {
			m.timeline.Height = 3
		}
		m.ready = true
		m.timeline.SetContent(m.renderMessages())
		m.timeline.GotoBottom()
		return m, nil

	case turnDoneMsg:
		if msg.result.Failed {
			m.statusNote = "evaluator unreachable, effort kept"
		} else {
			m.statusNote = ""
		}
		m.timeline.SetContent(m.renderMessages())
		m.timeline.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if !m.engine.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			turn, ok := m.engine.Begin(m.input.Value())
			if !ok {
				return m, nil
			}
			m.input.SetValue("")
			m.lastInput = ""
			m.statusNote = ""
			m.timeline.SetContent(m.renderMessages())
			m.timeline.GotoBottom()
			return m, tea.Batch(m.submitCmd(turn), m.spinner.Tick)

		// ctrl+h is off limits: terminals emitting BS for the backspace key
		// would arm hint mode on every deletion.
		case tea.KeyCtrlG:
			m.engine.RequestHint()
			m.statusNote = "next turn asks for a hint"
			return m, nil

		case tea.KeyCtrlF:
			m.engine.RequestFinal()
			m.statusNote = "next turn requests the final answer"
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	// Only a real text change reaches the accumulator; blink ticks and
	// navigation keys must not start the typing clock.
	if v := m.input.Value(); v != m.lastInput {
		m.engine.ObserveInput(v)
		m.lastInput = v
	}

	m.timeline, cmd = m.timeline.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) renderMessages() string {
	msgs := m.engine.Conversation().Messages()
	if len(msgs) == 0 {
		greeting := "What are you working on? Show your attempt and I'll coach you through it."
		if m.pastAttempts > 0 {
			greeting += fmt.Sprintf(" (%d past attempts on record)", m.pastAttempts)
		}
		return m.styles.TutorLabel.Render("tutor") + "  " + greeting
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label := m.styles.TutorLabel.Render("tutor")
		if msg.Role == domain.RoleUser {
			label = m.styles.UserLabel.Render("you")
		}
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(msg.Content)
	}
	return b.String()
}

// renderBanner shows the latest verdict banner and the score meter colored by
// progression state.
func (m Model) renderBanner() string {
	conv := m.engine.Conversation()
	state := conv.CurrentMode()
	color := stateColor(state)

	banner := "RAW. Show effort to unlock the final answer."
	score := 0
	unlocked := false
	if v := conv.LatestVerdict(); v != nil {
		if v.Banner != "" {
			banner = v.Banner
		}
		score = v.DisplayScore()
		unlocked = v.Unlocked
	}

	filled := score * meterWidth / 100
	meter := m.styles.Meter.Foreground(color).Render(strings.Repeat("█", filled)) +
		m.styles.MeterEmpty.Render(strings.Repeat("░", meterWidth-filled))

	lock := m.styles.MeterEmpty.Render("final locked")
	if unlocked {
		lock = m.styles.Meter.Foreground(colorCooked).Render("final unlocked")
	}

	head := m.styles.Banner.Foreground(color).Render(fmt.Sprintf("[%s] %s", state, banner))
	return fmt.Sprintf("%s\n%s %3d/100  %s", head, meter, score, lock)
}

func (m Model) renderFooter() string {
	metrics := m.engine.Metrics()
	parts := fmt.Sprintf(
		"attempts %d · hints %d · finals %d · backspaces %d",
		metrics.AttemptCount, metrics.HintCount, metrics.FinalRequestCount, metrics.Backspaces,
	)
	help := "enter send · ctrl+g hint · ctrl+f final · esc quit"

	line := parts + "   " + help
	if m.statusNote != "" {
		line += "\n" + m.styles.StatusNote.Render(m.statusNote)
	}
	return m.styles.Footer.Render(line)
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	inputView := m.input.View()
	if m.engine.InFlight() {
		inputView = m.spinner.View() + " evaluating..."
	}

	return strings.Join([]string{
		m.renderBanner(),
		m.timeline.View(),
		m.styles.InputFrame.Width(m.width - 2).Render(inputView),
		m.renderFooter(),
	}, "\n")
}
