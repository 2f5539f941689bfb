// Package tui implements the single-screen interactive chat surface: a
// multi-line question input on top, and below it whichever of
// {hint, spinner, error, answer} the controller's state calls for.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"sensorq/cli/internal/backend"
	"sensorq/cli/internal/query"
	"sensorq/cli/internal/results"
)

const chartBarWidth = 40

// Model is the Bubble Tea model for the chat screen. The lifecycle lives in
// the query.Controller; the model only translates key and completion messages
// into controller calls and renders whatever the controller says is current.
type Model struct {
	ctrl  *query.Controller
	api   backend.API
	input textarea.Model
	spin  spinner.Model

	width    int
	height   int
	quitting bool
}

// New creates the chat screen bound to the given backend.
func New(api backend.API) Model {
	ti := textarea.New()
	ti.Placeholder = "Which room had the highest temperature last week?"
	ti.ShowLineNumbers = false
	ti.SetHeight(3)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleDimmed

	return Model{
		ctrl:  query.NewController(),
		api:   api,
		input: ti,
		spin:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if msg.Alt {
				// alt+enter inserts a newline; forward a plain enter
				msg.Alt = false
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				m.ctrl.SetQuery(m.input.Value())
				return m, cmd
			}
			m.ctrl.SetQuery(m.input.Value())
			if q, ok := m.ctrl.Begin(); ok {
				return m, tea.Batch(m.spin.Tick, m.ask(q))
			}
			// blank query or request in flight: nothing happens
			return m, nil
		}

	case answerMsg:
		m.ctrl.Finish(msg.answer, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State() != query.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	// Everything else edits the question, which is permitted in any state.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetQuery(m.input.Value())
	return m, cmd
}

// ask performs the backend call off the UI loop and reports back via answerMsg.
func (m Model) ask(q string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ans, err := api.Ask(context.Background(), q)
		return answerMsg{answer: ans, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("sensorq"))
	b.WriteString(styleDimmed.Render("  ·  ask your sensor data"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.ctrl.State() {
	case query.Loading:
		b.WriteString(m.spin.View())
		b.WriteString(styleDimmed.Render("Asking the backend…"))
		b.WriteString("\n")
	case query.Failed:
		b.WriteString(styleError.Render(m.ctrl.ErrorMessage()))
		b.WriteString("\n")
	case query.Succeeded:
		b.WriteString(m.renderAnswer())
	}

	b.WriteString("\n")
	b.WriteString(styleDimmed.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpLine() string {
	if m.ctrl.State() == query.Loading {
		return "waiting for the backend · alt+enter newline · esc quit"
	}
	if !m.ctrl.CanSubmit() {
		return "type a question to ask · alt+enter newline · esc quit"
	}
	return "enter ask · alt+enter newline · esc quit"
}

// renderAnswer lays out summary, table and chart, skipping whatever the
// answer does not carry.
func (m Model) renderAnswer() string {
	ans := m.ctrl.Answer()
	if ans == nil {
		return ""
	}

	var parts []string
	if ans.Summary != "" {
		parts = append(parts, styleSummary.Render(ans.Summary))
	}
	if grid, ok := results.BuildGrid(ans.Table); ok {
		var tb strings.Builder
		_ = results.RenderTable(&tb, grid)
		parts = append(parts, strings.TrimRight(tb.String(), "\n"))
	}
	if len(ans.Chart) > 0 {
		parts = append(parts, renderChart(ans.Chart))
	}
	if len(parts) == 0 {
		return styleDimmed.Render("(the backend returned an empty answer)")
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// renderChart draws the chart series as horizontal text bars scaled to the
// largest value.
func renderChart(points []backend.ChartPoint) string {
	maxVal := 0.0
	maxLabel := 0
	for _, p := range points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
		if len(p.Label) > maxLabel {
			maxLabel = len(p.Label)
		}
	}

	var lines []string
	for _, p := range points {
		width := 0
		if maxVal > 0 && p.Value > 0 {
			width = int(p.Value / maxVal * chartBarWidth)
			if width < 1 {
				width = 1
			}
		}
		bar := styleChartBar.Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("%-*s %s %v", maxLabel, p.Label, bar, p.Value))
	}
	return strings.Join(lines, "\n")
}
