package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsa-tools/holo/internal/config"
	"github.com/vsa-tools/holo/internal/demo"
)

// demoCompleteMsg carries a finished demonstration report.
type demoCompleteMsg struct {
	report *demo.Report
}

// demoErrorMsg carries a failed demonstration run.
type demoErrorMsg struct {
	err error
}

// runDemoCmd runs the demonstration off the UI loop.
func runDemoCmd(cfg config.DemoConfig) tea.Cmd {
	return func() tea.Msg {
		report, err := demo.NewRunner(cfg, nil).Run()
		if err != nil {
			return demoErrorMsg{err: err}
		}
		return demoCompleteMsg{report: report}
	}
}
