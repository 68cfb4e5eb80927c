package report

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// ErrEmptyPayload is returned when a payload has no bars to draw.
var ErrEmptyPayload = errors.New("report: nothing to plot")

var seriesColors = map[string]string{
	"good":  "#281E78",
	"left":  "#ea4228",
	"right": "#49C6E5",
}

const (
	boundColor = "grey"
	marginL    = 70.0
	marginR    = 20.0
	marginT    = 20.0
	marginB    = 50.0
	xTicks     = 6
)

// SVG renders the payload as a bar chart. Only the bottom and left axes are
// drawn.
func SVG(p Payload, width, height int) string {
	if len(p.Series) == 0 || p.Total() == 0 {
		return ""
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, s := range p.Series {
		for _, x := range s.Positions {
			minX = math.Min(minX, x-s.Width/2)
			maxX = math.Max(maxX, x+s.Width/2)
		}
	}
	minX = math.Min(minX, p.Lower)
	maxX = math.Max(maxX, p.Upper)
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	minX -= rangeX * 0.02
	maxX += rangeX * 0.02
	rangeX = maxX - minX

	maxY := float64(p.MaxHeight()) * 1.05
	plotW := float64(width) - marginL - marginR
	plotH := float64(height) - marginT - marginB

	sx := func(x float64) float64 { return marginL + (x-minX)/rangeX*plotW }
	sy := func(y float64) float64 { return marginT + plotH - y/maxY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="12">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	for _, s := range p.Series {
		color := seriesColors[s.Name]
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\" class=\"%s\">\n", color, s.Name))
		barW := s.Width / rangeX * plotW
		for i, x := range s.Positions {
			h := s.Heights[i]
			if h == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/>\n",
				sx(x-s.Width/2), sy(float64(h)), barW, sy(0)-sy(float64(h))))
		}
		sb.WriteString("</g>\n")
	}

	for _, bound := range []float64{p.Lower, p.Upper} {
		sb.WriteString(fmt.Sprintf("<line class=\"bound\" x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"1\" stroke-dasharray=\"6,4\"/>\n",
			sx(bound), marginT, sx(bound), marginT+plotH, boundColor))
	}

	// axes
	sb.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"black\"/>\n",
		marginL, marginT+plotH, marginL+plotW, marginT+plotH))
	sb.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"black\"/>\n",
		marginL, marginT, marginL, marginT+plotH))

	for i := 0; i <= xTicks; i++ {
		x := minX + rangeX*float64(i)/xTicks
		sb.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\">%.3f</text>\n",
			sx(x), marginT+plotH+16, x))
	}
	for i := 0; i <= 4; i++ {
		y := maxY * float64(i) / 4
		sb.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"end\">%.0f</text>\n",
			marginL-6, sy(y)+4, y))
	}

	sb.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%d\" text-anchor=\"middle\">%s</text>\n",
		marginL+plotW/2, height-8, escape(p.XLabel)))
	sb.WriteString(fmt.Sprintf("<text x=\"16\" y=\"%.2f\" text-anchor=\"middle\" transform=\"rotate(-90 16 %.2f)\">%s</text>\n",
		marginT+plotH/2, marginT+plotH/2, escape(p.YLabel)))

	legendX := marginL + plotW - 170
	for i, s := range p.Series {
		y := marginT + 8 + float64(i)*18
		sb.WriteString(fmt.Sprintf("<rect x=\"%.2f\" y=\"%.2f\" width=\"12\" height=\"12\" fill=\"%s\"/>\n",
			legendX, y, seriesColors[s.Name]))
		sb.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\">%s</text>\n",
			legendX+18, y+10, escape(s.Label)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func ExportSVG(path string, p Payload, width, height int) error {
	svg := SVG(p, width, height)
	if svg == "" {
		return ErrEmptyPayload
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
