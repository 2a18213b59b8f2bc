package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/session"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving a campaign session. The bottom
// terminal row is a status bar; everything above it is the playfield.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	spin     spinner.Model
	quitting bool
}

// NewModel creates a model around an existing session. cfg.ScreenH is the
// full terminal height; the playfield gets one row less.
func NewModel(sess *session.Session, cfg core.RuntimeConfig) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	// The session plays in the area above the status bar.
	sess.Resize(cfg.ScreenW, playfieldH(cfg.ScreenH))

	return Model{
		sess:   sess,
		screen: core.NewScreen(cfg.ScreenW, playfieldH(cfg.ScreenH)),
		config: cfg,
		input:  core.NewInputFrame(),
		spin:   sp,
	}
}

func playfieldH(terminalH int) int {
	if terminalH <= 1 {
		return 1
	}
	return terminalH - 1
}

// Init starts the tick loop and the status spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.spin.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldH(msg.Height))
		m.sess.Resize(msg.Width, playfieldH(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey maps keyboard input onto the session's input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.input.Set(core.ActionQuit)
	case "left", "a":
		m.input.Set(core.ActionLeft)
	case "right", "d":
		m.input.Set(core.ActionRight)
	case "up", "w":
		m.input.Set(core.ActionUp)
	case "down", "s":
		m.input.Set(core.ActionDown)
	case " ":
		m.input.Set(core.ActionJump)
	case "enter":
		m.input.Set(core.ActionConfirm)
	case "esc":
		m.input.Set(core.ActionBack)
	}
	return m, nil
}

// handleMouse tracks the pointer and records left-button presses for the
// title and transition buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	clicked := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	m.input.SetMouse(msg.X, msg.Y, clicked)
	return m, nil
}

// handleTick advances the session by one fixed step. A quit action ends
// the program instead of stepping.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	dt := 1.0 / float64(m.config.TickRate)
	m.sess.Step(dt, m.input)
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield plus the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sess.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	line := m.sess.StatusLine()
	if m.sess.State() == session.StateTransition {
		line = m.spin.View() + " " + line
	}
	return statusStyle.Render(fmt.Sprintf(" %s · q to quit", line))
}

// Run starts the Bubble Tea program for a local terminal session and
// blocks until the player quits.
func Run(sess *session.Session, cfg core.RuntimeConfig) error {
	model := NewModel(sess, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
