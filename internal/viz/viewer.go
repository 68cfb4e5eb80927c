package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/oringsim/internal/histogram"
	"github.com/san-kum/oringsim/internal/report"
	"github.com/san-kum/oringsim/internal/sim"
)

const (
	minBins = 10
	maxBins = 5000
)

var (
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dim  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	result        *sim.Result
	bins          int
	payload       report.Payload
	err           error
	width, height int
}

func NewViewer(res *sim.Result) model {
	m := model{result: res, bins: res.Config.Bins, width: 100, height: 30}
	m.rebin()
	return m
}

func (m *model) rebin() {
	b, err := histogram.Build(m.result.Values, m.bins)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.payload = report.NewPayload(b, m.result.Config.Band)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=":
		if m.bins*2 <= maxBins {
			m.bins *= 2
			m.rebin()
		}
	case "-":
		if m.bins/2 >= minBins {
			m.bins /= 2
			m.rebin()
		}
	case "r":
		if m.bins != m.result.Config.Bins {
			m.bins = m.result.Config.Bins
			m.rebin()
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	s := m.result.Summary

	b.WriteString(cyan.Render("o-ring interference"))
	b.WriteString(dim.Render(fmt.Sprintf("  %d trials  seed %d  %d bins", s.Trials, m.result.Config.Seed, m.bins)))
	b.WriteString("\n\n")
	b.WriteString(report.FailureLine(s.FailPercentage))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(red.Render(m.err.Error()))
	} else {
		b.WriteString(report.Chart(m.payload, m.chartWidth(), m.chartHeight()))
	}

	b.WriteString("\n\n")
	b.WriteString(dim.Render("+/- bins  r reset  q quit"))
	return b.String()
}

func (m model) chartWidth() int {
	return max(20, m.width-14)
}

func (m model) chartHeight() int {
	return max(5, m.height-12)
}

// Run opens the viewer on the alternate screen and blocks until it exits.
func Run(res *sim.Result) error {
	p := tea.NewProgram(NewViewer(res), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
