// Package tui renders a running or completed solve as a Bubble Tea
// program: live iteration count, the convergence metric, and the
// final average strategy as a set of frequency bars.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/nlhe-solver/solver"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type progressMsg struct {
	iteration  uint32
	convergence float64
}

type resultMsg struct {
	report solver.StrategyReport
}

type errMsg struct {
	err error
}

// Model drives a single Solve call and renders its progress.
type Model struct {
	gs     solver.GameState
	cfg    solver.Config
	logger *log.Logger

	events chan tea.Msg
	log    viewport.Model
	lines  []string

	iteration   uint32
	convergence float64
	report      *solver.StrategyReport
	err         error
	quitting    bool

	width, height int
}

// NewModel returns a Model and immediately starts solver.Solve(ctx, gs,
// cfg) in a background goroutine; once the Bubble Tea runtime runs the
// model, its progress is streamed into the view. cfg.OnProgress is overwritten
// to feed this model; any caller-supplied callback is still invoked.
func NewModel(ctx context.Context, gs solver.GameState, cfg solver.Config, logger *log.Logger) *Model {
	vp := viewport.New(40, 8)
	vp.SetContent("")

	m := &Model{
		gs:     gs,
		cfg:    cfg,
		logger: logger.WithPrefix("tui"),
		events: make(chan tea.Msg, 8),
		log:    vp,
	}

	upstream := cfg.OnProgress
	m.cfg.OnProgress = func(iteration uint32, metric float64) {
		if upstream != nil {
			upstream(iteration, metric)
		}
		m.events <- progressMsg{iteration: iteration, convergence: metric}
	}

	go func() {
		report, err := solver.Solve(ctx, m.gs, m.cfg)
		if err != nil {
			m.events <- errMsg{err: err}
			return
		}
		m.events <- resultMsg{report: report}
	}()

	return m
}

func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// Init starts listening for the first progress or result event.
func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles incoming solve events and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = msg.Width
		m.log.Height = 8
		m.log.SetContent(strings.Join(m.lines, "\n"))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd

	case progressMsg:
		m.iteration = msg.iteration
		m.convergence = msg.convergence
		m.logger.Debug("progress", "iteration", msg.iteration, "convergence", msg.convergence)
		m.lines = append(m.lines, fmt.Sprintf("iter %6d  convergence %.6f", msg.iteration, msg.convergence))
		m.log.SetContent(strings.Join(m.lines, "\n"))
		m.log.GotoBottom()
		return m, waitForEvent(m.events)

	case resultMsg:
		report := msg.report
		m.report = &report
		m.iteration = report.IterationsExecuted
		m.convergence = report.Convergence
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View renders the current solve state.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(" nlhe-solver "))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("solve failed: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	status := "solving"
	if m.report != nil {
		status = "converged"
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("status: %s", status)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("iteration: %d\n", m.iteration))
	b.WriteString(fmt.Sprintf("convergence: %.6f\n\n", m.convergence))

	if m.report == nil {
		b.WriteString(infoStyle.Render("sampling villain ranges, press q to quit"))
		b.WriteString("\n\n")
		if m.log.Width > 0 {
			b.WriteString(m.log.View())
			b.WriteString("\n")
		}
		return b.String()
	}

	for _, a := range m.report.Actions {
		b.WriteString(renderBar(a))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

const barWidth = 30

func renderBar(a solver.ActionReport) string {
	filled := int(a.Frequency * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
	label := fmt.Sprintf("%-6s %5.1f", a.Action.Kind.String(), a.Action.Amount)
	return fmt.Sprintf("%s %s %5.1f%%  ev=%.2f", label, bar, a.Frequency*100, a.EV)
}
