package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

// KeyMap defines the keyboard shortcuts.
type KeyMap struct {
	Submit key.Binding
	Focus  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "analyze"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// outcomeMsg delivers a finished invocation back to the UI goroutine.
type outcomeMsg struct {
	outcome *present.Outcome
	saved   []present.Saved
	err     error // image export error, if any
}

// Model is the interactive analyzer: a path prompt on top, the result
// regions below, all drawn from the shared board each frame.
type Model struct {
	width  int
	height int

	keys    KeyMap
	input   textinput.Model
	spinner spinner.Model

	controller *present.Controller
	board      *present.Board
	serviceURL string
	outDir     string

	busy      bool
	outcome   *present.Outcome
	saved     []present.Saved
	exportErr error

	showHelp bool
	quitting bool
}

// NewModel creates the TUI model. The controller must be wired to write
// into board so that View can pull snapshots.
func NewModel(controller *present.Controller, board *present.Board, serviceURL, outDir string) Model {
	input := textinput.New()
	input.Placeholder = "path/to/graph.json"
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		keys:       DefaultKeyMap,
		input:      input,
		spinner:    s,
		controller: controller,
		board:      board,
		serviceURL: serviceURL,
		outDir:     outDir,
	}
}

// WithPath pre-fills the file path input, for launches that name the graph
// file on the command line.
func (m Model) WithPath(path string) Model {
	m.input.SetValue(path)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C quits even while the input has focus; plain q only
		// when it would not be typed into the path.
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) && !m.input.Focused() {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) && !m.input.Focused() {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if key.Matches(msg, m.keys.Focus) {
			if m.input.Focused() {
				m.input.Blur()
				return m, nil
			}
			return m, m.input.Focus()
		}
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case outcomeMsg:
		if msg.outcome.Stale {
			// A newer submission owns the display now.
			return m, nil
		}
		m.busy = false
		m.outcome = msg.outcome
		m.saved = msg.saved
		m.exportErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit kicks off an invocation for the current input value. An empty
// path still goes through the controller, which reports the no-file
// status without touching the network.
func (m Model) submit() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.input.Value())
	m.busy = true
	m.outcome = nil
	m.saved = nil
	m.exportErr = nil
	return m, m.analyze(path)
}

// savedPath returns where the named region's image landed on disk, or ""
// if it was not exported.
func (m Model) savedPath(name string) string {
	for _, s := range m.saved {
		if s.Name == name {
			return s.Path
		}
	}
	return ""
}

// analyze runs one invocation off the UI goroutine. Overlapping
// submissions are resolved by the controller's generation guard.
func (m Model) analyze(path string) tea.Cmd {
	controller, board, outDir := m.controller, m.board, m.outDir
	return func() tea.Msg {
		outcome := controller.Run(context.Background(), path)
		msg := outcomeMsg{outcome: outcome}
		if !outcome.Stale && outcome.OK() {
			msg.saved, msg.err = present.Export(board.Snapshot(), outDir)
		}
		return msg
	}
}
