package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/games/tetris"
)

// maxPending bounds the keys buffered between two ticks.
const maxPending = 8

// Options configures a TUI run.
type Options struct {
	Config        core.RuntimeConfig
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // empty disables ctrl+s
}

// Model is the Bubble Tea model that drives a tetris session.
// Each tick consumes at most one buffered action.
type Model struct {
	session *tetris.Session
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	opts    Options

	pending []core.Action
	width   int
	height  int

	lastState tetris.State
	lastLines int
	quitting  bool
}

// NewModel creates a model around an already initialized session.
func NewModel(session *tetris.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	snap := session.Snapshot()
	return Model{
		session:   session,
		screen:    core.NewScreen(tetris.ScreenW, tetris.ScreenH),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		opts:      opts,
		lastState: snap.State,
		lastLines: snap.Lines,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	// Quit jumps the queue and is never dropped by the cap.
	if action == core.ActionTerminate {
		m.pending = []core.Action{core.ActionTerminate}
		return m, nil
	}
	if len(m.pending) < maxPending {
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// handleTick runs one simulation step with the oldest buffered action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	action := core.ActionNone
	if len(m.pending) > 0 {
		action = m.pending[0]
		m.pending = m.pending[1:]
	}

	result := m.session.Step(action)
	m.observe()

	if result.State.GameOver {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Config.TickRate)
}

// observe logs state transitions and line clears.
func (m *Model) observe() {
	snap := m.session.Snapshot()
	if snap.State != m.lastState {
		m.logger.Debug("state", "from", m.lastState, "to", snap.State, "tick", snap.Tick)
		m.lastState = snap.State
	}
	if snap.Lines != m.lastLines {
		m.logger.Debug("lines cleared",
			"rows", snap.Lines-m.lastLines,
			"score", snap.Info.Score,
			"level", snap.Info.Level,
		)
		m.lastLines = snap.Lines
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	name := fmt.Sprintf("brickgame_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run plays session in the alternate screen until the game is over.
func Run(session *tetris.Session, opts Options) error {
	p := tea.NewProgram(NewModel(session, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
