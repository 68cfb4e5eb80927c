package histogram

import "github.com/san-kum/oringsim/internal/assembly"

type Category int

const (
	Good Category = iota
	LeftTail
	RightTail
)

var categoryLabels = [...]string{
	Good:      "Good Assemblies",
	LeftTail:  "left tail failures",
	RightTail: "right tail failures",
}

func (c Category) String() string {
	switch c {
	case Good:
		return "good"
	case LeftTail:
		return "left"
	case RightTail:
		return "right"
	}
	return "unknown"
}

// Label is the legend text for the category.
func (c Category) Label() string {
	if c < Good || c > RightTail {
		return ""
	}
	return categoryLabels[c]
}

// CategoryOf classifies a bin by its centre. Both comparisons are inclusive,
// so a centre sitting exactly on a bound counts as a failure.
func CategoryOf(center float64, band assembly.ToleranceBand) Category {
	switch {
	case center <= band.Lower:
		return LeftTail
	case center >= band.Upper:
		return RightTail
	default:
		return Good
	}
}

// Series is one set of bars sharing a category.
type Series struct {
	Category  Category
	Label     string
	Positions []float64
	Heights   []int
	Width     float64
}

func (s Series) Total() int {
	total := 0
	for _, h := range s.Heights {
		total += h
	}
	return total
}

type Classified struct {
	Good  Series
	Left  Series
	Right Series
}

// All returns the series in drawing order.
func (c Classified) All() []Series {
	return []Series{c.Good, c.Left, c.Right}
}

// Classify splits every bin into exactly one of the three series.
func (b *Binning) Classify(band assembly.ToleranceBand) Classified {
	out := Classified{
		Good:  newSeries(Good, b.Width),
		Left:  newSeries(LeftTail, b.Width),
		Right: newSeries(RightTail, b.Width),
	}
	for i, center := range b.Centers {
		var s *Series
		switch CategoryOf(center, band) {
		case LeftTail:
			s = &out.Left
		case RightTail:
			s = &out.Right
		default:
			s = &out.Good
		}
		s.Positions = append(s.Positions, center)
		s.Heights = append(s.Heights, b.Counts[i])
	}
	return out
}

func newSeries(c Category, width float64) Series {
	return Series{
		Category:  c,
		Label:     c.Label(),
		Positions: make([]float64, 0),
		Heights:   make([]int, 0),
		Width:     width,
	}
}
