// Package cleanview renders scan and clean runs: an animated bubbletea
// progress view on interactive terminals, plain staged lines otherwise.
package cleanview

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/lakshaymaurya-felt/cclean/internal/cleaner"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type progressMsg struct {
	message string
	percent int
}

type doneMsg struct {
	result cleaner.CleanupResult
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for a running cleanup operation.
type Model struct {
	title   string
	spinner spinner.Model
	bar     progress.Model
	events  <-chan tea.Msg

	stage   string
	percent int
	result  *cleaner.CleanupResult
	width   int
}

func newModel(title string, events <-chan tea.Msg) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return Model{
		title:   title,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		events:  events,
		stage:   "Starting...",
		width:   80,
	}
}

func waitEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitEvent(m.events))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 10
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		// The operation itself keeps running; quitting only stops the
		// display. Run drains the event channel for the final result.
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		m.stage = msg.message
		m.percent = msg.percent
		return m, waitEvent(m.events)

	case doneMsg:
		result := msg.result
		m.result = &result
		m.percent = 100
		return m, tea.Quit
	}

	return m, nil
}

// ─── Entry point ─────────────────────────────────────────────────────────────

// Run executes op while rendering its progress events, and returns the
// operation's result. op receives a progress sink safe to call from the
// goroutine Run starts for it.
func Run(title string, op func(progress cleaner.ProgressFunc) cleaner.CleanupResult) cleaner.CleanupResult {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return runPlain(title, op)
	}

	// Generously buffered: a full run emits a few dozen events, and the
	// producer must never block once the display has gone away.
	events := make(chan tea.Msg, 256)

	go func() {
		result := op(func(message string, percent int) {
			events <- progressMsg{message: message, percent: percent}
		})
		events <- doneMsg{result: result}
		close(events)
	}()

	final, err := tea.NewProgram(newModel(title, events)).Run()
	if err == nil {
		if m, ok := final.(Model); ok && m.result != nil {
			return *m.result
		}
	}

	// The display quit early or failed; the operation still finishes and
	// its result arrives on the channel.
	for msg := range events {
		if d, ok := msg.(doneMsg); ok {
			return d.result
		}
	}
	return cleaner.CleanupResult{}
}

// runPlain prints staged progress as plain lines, for pipes and dumb
// terminals.
func runPlain(title string, op func(progress cleaner.ProgressFunc) cleaner.CleanupResult) cleaner.CleanupResult {
	fmt.Println(title)
	last := ""
	return op(func(message string, percent int) {
		line := fmt.Sprintf("  [%3d%%] %s", percent, message)
		if line == last {
			return
		}
		last = line
		fmt.Println(line)
	})
}
