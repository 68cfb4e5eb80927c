package histogram_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oringsim/internal/assembly"
	"github.com/san-kum/oringsim/internal/histogram"
)

var _ = Describe("Build", func() {
	It("rejects a non-positive bin count", func() {
		_, err := histogram.Build([]float64{1, 2}, 0)
		Expect(err).To(MatchError(histogram.ErrInvalidBins))
	})

	It("rejects empty input", func() {
		_, err := histogram.Build(nil, 10)
		Expect(err).To(MatchError(histogram.ErrNoData))
	})

	It("puts the maximum in the last, closed bin", func() {
		b, err := histogram.Build([]float64{0, 1, 2, 3, 4}, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Edges).To(Equal([]float64{0, 1, 2, 3, 4}))
		Expect(b.Counts).To(Equal([]int{1, 1, 1, 2}))
		Expect(b.Centers).To(Equal([]float64{0.5, 1.5, 2.5, 3.5}))
		Expect(b.Width).To(Equal(1.0))
	})

	It("widens a zero-width range around the single value", func() {
		b, err := histogram.Build([]float64{2, 2, 2}, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Edges[0]).To(Equal(1.5))
		Expect(b.Edges[4]).To(Equal(2.5))
		Expect(b.Counts).To(Equal([]int{0, 0, 3, 0}))
	})

	It("widens a range too narrow to split into bins", func() {
		b, err := histogram.Build([]float64{0, 5e-324}, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Width).To(BeNumerically(">", 0))
		Expect(b.Edges[0]).To(Equal(-0.5))
		Expect(b.Edges[3]).To(Equal(0.5))
		for i := 0; i < b.Len(); i++ {
			Expect(b.Edges[i+1] - b.Edges[i]).To(BeNumerically("~", b.Width, 1e-12))
		}
		Expect(b.Total()).To(Equal(2))
	})

	Context("with normally distributed values", func() {
		var (
			values []float64
			b      *histogram.Binning
		)

		BeforeEach(func() {
			r := rand.New(rand.NewSource(3))
			values = make([]float64, 100000)
			for i := range values {
				values[i] = 0.45 + r.NormFloat64()*0.0466
			}
			var err error
			b, err = histogram.Build(values, 500)
			Expect(err).NotTo(HaveOccurred())
		})

		It("counts every value exactly once", func() {
			Expect(b.Total()).To(Equal(len(values)))
			Expect(b.Len()).To(Equal(500))
			Expect(b.Edges).To(HaveLen(501))
		})

		It("keeps bin width uniform", func() {
			span := b.Edges[500] - b.Edges[0]
			for i := 0; i < b.Len(); i++ {
				Expect(b.Edges[i+1] - b.Edges[i]).To(BeNumerically("~", b.Width, span*1e-12))
			}
		})

		It("places each value inside its bin's edges", func() {
			for _, v := range values[:1000] {
				Expect(v).To(BeNumerically(">=", b.Edges[0]))
				Expect(v).To(BeNumerically("<=", b.Edges[b.Len()]))
			}
			Expect(b.Centers[0]).To(BeNumerically("~", b.Edges[0]+b.Width/2, 1e-15))
		})
	})
})

var _ = Describe("Classify", func() {
	band := assembly.ToleranceBand{Lower: 1.5, Upper: 3.5}

	It("shades bins centred on a bound as failures", func() {
		b, err := histogram.Build([]float64{0, 1, 2, 3, 4}, 4)
		Expect(err).NotTo(HaveOccurred())

		c := b.Classify(band)
		Expect(c.Left.Positions).To(Equal([]float64{0.5, 1.5}))
		Expect(c.Left.Heights).To(Equal([]int{1, 1}))
		Expect(c.Good.Positions).To(Equal([]float64{2.5}))
		Expect(c.Right.Positions).To(Equal([]float64{3.5}))
		Expect(c.Right.Heights).To(Equal([]int{2}))
	})

	It("still passes a trial sitting exactly on the bound", func() {
		Expect(histogram.CategoryOf(1.5, band)).To(Equal(histogram.LeftTail))
		Expect(band.Contains(1.5)).To(BeTrue())
	})

	It("partitions all bins across the three series", func() {
		r := rand.New(rand.NewSource(11))
		values := make([]float64, 50000)
		for i := range values {
			values[i] = 2.5 + r.NormFloat64()
		}
		b, err := histogram.Build(values, 97)
		Expect(err).NotTo(HaveOccurred())

		c := b.Classify(band)
		bins, total := 0, 0
		for _, s := range c.All() {
			Expect(s.Width).To(Equal(b.Width))
			Expect(s.Positions).To(HaveLen(len(s.Heights)))
			bins += len(s.Positions)
			total += s.Total()
		}
		Expect(bins).To(Equal(b.Len()))
		Expect(total).To(Equal(len(values)))
	})

	It("labels the series for the legend", func() {
		b, _ := histogram.Build([]float64{1, 2, 3}, 3)
		c := b.Classify(band)
		Expect(c.Good.Label).To(Equal("Good Assemblies"))
		Expect(c.Left.Label).To(Equal("left tail failures"))
		Expect(c.Right.Label).To(Equal("right tail failures"))
		Expect(histogram.RightTail.String()).To(Equal("right"))
		Expect(histogram.Category(9).Label()).To(BeEmpty())
	})
})

var _ = Describe("CategoryOf", func() {
	band := assembly.ToleranceBand{Lower: 0.3, Upper: 0.6}

	DescribeTable("bin centre classification",
		func(center float64, want histogram.Category) {
			Expect(histogram.CategoryOf(center, band)).To(Equal(want))
		},
		Entry("well below", 0.1, histogram.LeftTail),
		Entry("on lower", 0.3, histogram.LeftTail),
		Entry("inside", 0.45, histogram.Good),
		Entry("on upper", 0.6, histogram.RightTail),
		Entry("well above", math.Inf(1), histogram.RightTail),
	)
})
