// Package ui implements the interactive demonstration TUI. It re-runs the HRR
// demonstration as the user doubles or halves the dimensionality or reseeds
// the generator, making the fidelity/dimensionality trade-off visible.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsa-tools/holo/internal/config"
	"github.com/vsa-tools/holo/internal/demo"
)

const (
	minDimensionality = 2
	maxDimensionality = 1 << 16
	barWidth          = 24
)

// Model holds the TUI state.
type Model struct {
	cfg      config.DemoConfig
	report   *demo.Report
	err      error
	running  bool
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates a TUI model starting from the given demo parameters.
func NewModel(cfg config.DemoConfig) *Model {
	return &Model{cfg: cfg}
}

// Init starts the first demonstration run.
func (m *Model) Init() tea.Cmd {
	m.running = true
	return tea.Batch(tea.EnterAltScreen, runDemoCmd(m.cfg))
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m.handleKey(msg)

	case demoCompleteMsg:
		m.report = msg.report
		m.err = nil
		m.running = false

	case demoErrorMsg:
		m.err = msg.err
		m.running = false
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "+", "=":
		if m.cfg.Dimensionality*2 <= maxDimensionality {
			m.cfg.Dimensionality *= 2
			return m, m.rerun()
		}

	case "-", "_":
		if m.cfg.Dimensionality/2 >= minDimensionality {
			m.cfg.Dimensionality /= 2
			return m, m.rerun()
		}

	case "r":
		m.cfg.Seed++
		return m, m.rerun()

	case "s":
		m.cfg.Superpose = !m.cfg.Superpose
		return m, m.rerun()
	}

	return m, nil
}

func (m *Model) rerun() tea.Cmd {
	m.running = true
	return runDemoCmd(m.cfg)
}

// View renders the model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return "Done.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("HRR Demonstration") + "\n\n")

	b.WriteString(labelStyle.Render("dimensionality ") + valueStyle.Render(fmt.Sprintf("%d", m.cfg.Dimensionality)))
	b.WriteString(labelStyle.Render("   seed ") + valueStyle.Render(fmt.Sprintf("%d", m.cfg.Seed)))
	b.WriteString(labelStyle.Render("   superpose ") + valueStyle.Render(fmt.Sprintf("%t", m.cfg.Superpose)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	case m.running && m.report == nil:
		b.WriteString("Running demonstration...\n")
	case m.report != nil:
		m.renderReport(&b)
	}

	b.WriteString("\n" + helpStyle.Render("+/- dimensionality · r reseed · s superpose · q quit"))
	return frameStyle.Render(b.String())
}

func (m *Model) renderReport(b *strings.Builder) {
	for _, pair := range m.report.Pairs {
		b.WriteString(valueStyle.Render(pair.BoundLabel) + "\n")
		m.renderRecovery(b, &pair.Recovery)
	}
	if m.report.Trace != nil {
		b.WriteString(valueStyle.Render(m.report.Trace.Label) + "\n")
		for i := range m.report.Trace.Recoveries {
			m.renderRecovery(b, &m.report.Trace.Recoveries[i])
		}
	}
}

func (m *Model) renderRecovery(b *strings.Builder, recovery *demo.Recovery) {
	for _, match := range recovery.Matches {
		marker := "  "
		style := labelStyle
		switch {
		case match.Label == recovery.Best.Label && recovery.Best.Tied:
			marker = "~ "
			style = warningStyle
		case match.Label == recovery.Best.Label && match.Label == recovery.Expected:
			marker = "> "
			style = successStyle
		case match.Label == recovery.Best.Label:
			marker = "> "
			style = errorStyle
		}
		fmt.Fprintf(b, "  %s%s %s %s\n",
			marker,
			style.Render(fmt.Sprintf("%-12s", match.Label)),
			barStyle.Render(similarityBar(match.Similarity)),
			labelStyle.Render(fmt.Sprintf("%+.3f", match.Similarity)),
		)
	}
	b.WriteString("\n")
}

// similarityBar renders a fixed-width bar for a cosine similarity in [-1,1];
// negative scores render empty.
func similarityBar(similarity float64) string {
	filled := int(similarity * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// Run starts the interactive TUI with the given configuration.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg.Demo))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive demo failed: %w", err)
	}
	return nil
}
