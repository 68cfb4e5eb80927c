package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/oringsim/internal/assembly"
	"github.com/san-kum/oringsim/internal/histogram"
)

const (
	XLabel = "O ring interference (mm)"
	YLabel = "# samples"
)

type Bars struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Positions []float64 `json:"positions"`
	Heights   []int     `json:"heights"`
	Width     float64   `json:"width"`
}

type Payload struct {
	Series []Bars    `json:"series"`
	Lower  float64   `json:"lower"`
	Upper  float64   `json:"upper"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Legend []string  `json:"legend"`
	Bins   int       `json:"bins"`
	Edges  []float64 `json:"edges"`
}

func NewPayload(b *histogram.Binning, band assembly.ToleranceBand) Payload {
	classified := b.Classify(band)

	p := Payload{
		Lower:  band.Lower,
		Upper:  band.Upper,
		XLabel: XLabel,
		YLabel: YLabel,
		Bins:   b.Len(),
		Edges:  b.Edges,
	}
	for _, s := range classified.All() {
		p.Series = append(p.Series, Bars{
			Name:      s.Category.String(),
			Label:     s.Label,
			Positions: s.Positions,
			Heights:   s.Heights,
			Width:     s.Width,
		})
		p.Legend = append(p.Legend, s.Label)
	}
	return p
}

// Total is the number of samples across every series.
func (p Payload) Total() int {
	total := 0
	for _, s := range p.Series {
		for _, h := range s.Heights {
			total += h
		}
	}
	return total
}

// MaxHeight is the tallest bar in any series.
func (p Payload) MaxHeight() int {
	m := 0
	for _, s := range p.Series {
		for _, h := range s.Heights {
			if h > m {
				m = h
			}
		}
	}
	return m
}

func (p Payload) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func ExportJSON(path string, p Payload) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := p.WriteJSON(file); err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return nil
}
