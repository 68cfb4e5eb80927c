package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oringsim/internal/sim"
)

var (
	seriesStyles = map[string]lipgloss.Style{
		"good":  lipgloss.NewStyle().Foreground(lipgloss.Color(seriesColors["good"])),
		"left":  lipgloss.NewStyle().Foreground(lipgloss.Color(seriesColors["left"])),
		"right": lipgloss.NewStyle().Foreground(lipgloss.Color(seriesColors["right"])),
	}

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	title       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	metricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	metricValue = lipgloss.NewStyle().Bold(true)
)

// FailureLine is the plain result line. The percentage keeps full precision.
func FailureLine(pct float64) string {
	return "Percentage of failed piston assemblies: " + strconv.FormatFloat(pct, 'f', -1, 64) + " %"
}

// Summary renders the run counters and any recorded metrics in a panel.
func Summary(s sim.Summary, metrics map[string]float64) string {
	rows := [][2]string{
		{"trials", strconv.Itoa(s.Trials)},
		{"passed", strconv.Itoa(s.Passed)},
		{"failed", strconv.Itoa(s.Failed)},
		{"left tail", strconv.Itoa(s.LeftTail)},
		{"right tail", strconv.Itoa(s.RightTail)},
		{"failure %", strconv.FormatFloat(s.FailPercentage, 'f', -1, 64)},
	}

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, [2]string{name, strconv.FormatFloat(metrics[name], 'g', 6, 64)})
	}

	var b strings.Builder
	b.WriteString(title.Render("assembly tolerance stack-up"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(metricLabel.Render(fmt.Sprintf("%-20s", r[0])))
		b.WriteString(metricValue.Render(r[1]))
	}
	return panel.Render(b.String())
}

// Chart draws the payload's bar heights as a terminal line chart with a
// coloured strip underneath marking which bins are tail failures.
func Chart(p Payload, width, height int) string {
	heights, cats := flatten(p)
	if len(heights) == 0 {
		return ""
	}

	graph := asciigraph.Plot(heights,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", p.YLabel, p.XLabel)),
	)

	offset := axisOffset(graph)
	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteString(strip(cats, width))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteString(fmt.Sprintf("%-*.4g%*.4g", width/2, p.Edges[0], width-width/2, p.Edges[len(p.Edges)-1]))
	b.WriteString("\n")
	b.WriteString(Legend(p))
	return b.String()
}

func Legend(p Payload) string {
	parts := make([]string, 0, len(p.Series)+1)
	for _, s := range p.Series {
		parts = append(parts, seriesStyles[s.Name].Render("█")+" "+s.Label)
	}
	parts = append(parts, metricLabel.Render(fmt.Sprintf("bounds %g / %g", p.Lower, p.Upper)))
	return strings.Join(parts, "   ")
}

// flatten restores bin order from the three series.
func flatten(p Payload) ([]float64, []string) {
	type bar struct {
		pos    float64
		height int
		name   string
	}
	bars := make([]bar, 0, p.Bins)
	for _, s := range p.Series {
		for i, pos := range s.Positions {
			bars = append(bars, bar{pos: pos, height: s.Heights[i], name: s.Name})
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].pos < bars[j].pos })

	heights := make([]float64, len(bars))
	cats := make([]string, len(bars))
	for i, b := range bars {
		heights[i] = float64(b.height)
		cats[i] = b.name
	}
	return heights, cats
}

func strip(cats []string, width int) string {
	var b strings.Builder
	for col := 0; col < width; col++ {
		idx := col * len(cats) / width
		b.WriteString(seriesStyles[cats[idx]].Render("▀"))
	}
	return b.String()
}

// axisOffset finds the column where asciigraph starts plotting.
func axisOffset(graph string) int {
	first, _, _ := strings.Cut(graph, "\n")
	col := 0
	for _, r := range first {
		if r == '┤' || r == '┼' {
			return col + 1
		}
		col++
	}
	return 0
}
