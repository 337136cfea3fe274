package particles_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/particles"
)

type circle struct{ x, y, r, op float64 }

type line struct{ x0, y0, x1, y1, op float64 }

type recorder struct {
	clears  int
	circles []circle
	lines   []line
}

func (r *recorder) Clear() {
	r.clears++
	r.circles = r.circles[:0]
	r.lines = r.lines[:0]
}

func (r *recorder) FillCircle(x, y, radius, opacity float64) {
	r.circles = append(r.circles, circle{x, y, radius, opacity})
}

func (r *recorder) Line(x0, y0, x1, y1, opacity float64) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, opacity})
}

var _ = Describe("Field", func() {
	var (
		params particles.Params
		rng    *rand.Rand
	)

	BeforeEach(func() {
		params = particles.DefaultParams()
		rng = rand.New(rand.NewSource(42))
	})

	Describe("New", func() {
		It("uses the low tier below the breakpoint", func() {
			f, err := particles.New(params, 767, 600, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Len()).To(Equal(30))
		})

		It("uses the high tier at and above the breakpoint", func() {
			f, err := particles.New(params, 768, 600, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Len()).To(Equal(50))

			f, err = particles.New(params, 4000, 600, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Len()).To(Equal(50))
		})

		It("randomizes particles inside the configured ranges", func() {
			f, err := particles.New(params, 1024, 768, rng)
			Expect(err).NotTo(HaveOccurred())
			for _, p := range f.Particles() {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<", 1024))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<", 768))
				Expect(p.Radius).To(BeNumerically(">=", 1))
				Expect(p.Radius).To(BeNumerically("<", 3))
				Expect(p.VX).To(BeNumerically(">=", -0.25))
				Expect(p.VX).To(BeNumerically("<", 0.25))
				Expect(p.VY).To(BeNumerically(">=", -0.25))
				Expect(p.VY).To(BeNumerically("<", 0.25))
				Expect(p.Opacity).To(BeNumerically(">=", 0.2))
				Expect(p.Opacity).To(BeNumerically("<", 0.7))
			}
		})

		It("rejects an empty drawing area", func() {
			_, err := particles.New(params, 0, 600, rng)
			Expect(err).To(MatchError(particles.ErrInvalidBounds))
		})

		It("rejects inconsistent params", func() {
			params.MaxOpacity = 2
			_, err := particles.New(params, 800, 600, rng)
			Expect(err).To(MatchError(particles.ErrInvalidParams))
		})
	})

	Describe("Step", func() {
		It("keeps every particle inside the area", func() {
			f, err := particles.New(params, 200, 120, rng)
			Expect(err).NotTo(HaveOccurred())
			f.SetPointer(100, 60)
			for i := 0; i < 5000; i++ {
				if i%97 == 0 {
					f.SetPointer(rng.Float64()*200, rng.Float64()*120)
				}
				f.Step()
				for _, p := range f.Particles() {
					Expect(p.X).To(BeNumerically(">=", 0))
					Expect(p.X).To(BeNumerically("<", 200))
					Expect(p.Y).To(BeNumerically(">=", 0))
					Expect(p.Y).To(BeNumerically("<", 120))
				}
			}
		})

		It("pulls particles back in after the area shrinks", func() {
			f, err := particles.New(params, 1000, 1000, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Resize(100, 100)).To(Succeed())
			f.Step()
			for _, p := range f.Particles() {
				Expect(p.X).To(BeNumerically("<", 100))
				Expect(p.Y).To(BeNumerically("<", 100))
			}
		})

		It("does not rescale particles on resize", func() {
			f, err := particles.New(params, 1000, 1000, rng)
			Expect(err).NotTo(HaveOccurred())
			before := f.Particles()
			Expect(f.Resize(2000, 2000)).To(Succeed())
			Expect(f.Particles()).To(Equal(before))
			Expect(f.Resize(0, 10)).To(MatchError(particles.ErrInvalidBounds))
		})

		It("stays finite with the pointer sitting on a particle", func() {
			params.MaxSpeed = 0
			f, err := particles.New(params, 500, 500, rng)
			Expect(err).NotTo(HaveOccurred())
			p := f.Particles()[0]
			f.SetPointer(p.X, p.Y)
			f.Step()
			got := f.Particles()[0]
			Expect(math.IsNaN(got.X) || math.IsInf(got.X, 0)).To(BeFalse())
			Expect(got.X).To(Equal(p.X))
			Expect(got.Y).To(Equal(p.Y))
		})

		It("ignores the pointer once cleared", func() {
			params.MaxSpeed = 0
			f, err := particles.New(params, 500, 500, rng)
			Expect(err).NotTo(HaveOccurred())
			p := f.Particles()[0]
			f.SetPointer(p.X+10, p.Y)
			f.ClearPointer()
			f.Step()
			Expect(f.Particles()[0]).To(Equal(p))
		})
	})

	Describe("Render", func() {
		It("clears, draws every particle and links close pairs", func() {
			f, err := particles.New(params, 800, 600, rng)
			Expect(err).NotTo(HaveOccurred())
			rec := &recorder{}
			f.Render(rec)

			Expect(rec.clears).To(Equal(1))
			Expect(rec.circles).To(HaveLen(f.Len()))

			pool := f.Particles()
			want := 0
			for i := range pool {
				for j := i + 1; j < len(pool); j++ {
					if math.Hypot(pool[j].X-pool[i].X, pool[j].Y-pool[i].Y) < params.LinkDistance {
						want++
					}
				}
			}
			Expect(rec.lines).To(HaveLen(want))
			for _, l := range rec.lines {
				Expect(l.op).To(BeNumerically(">", 0))
				Expect(l.op).To(BeNumerically("<=", params.LinkOpacity))
			}
		})
	})
})

var _ = Describe("Repulsion", func() {
	params := particles.DefaultParams()

	It("is zero at and beyond the repel radius", func() {
		x, y := particles.Repulsion(100, 0, params)
		Expect(x).To(BeZero())
		Expect(y).To(BeZero())
		x, y = particles.Repulsion(0, 250, params)
		Expect(x).To(BeZero())
		Expect(y).To(BeZero())
	})

	It("is zero at zero distance", func() {
		x, y := particles.Repulsion(0, 0, params)
		Expect(x).To(BeZero())
		Expect(y).To(BeZero())
	})

	It("points away from the pointer", func() {
		x, y := particles.Repulsion(30, -40, params)
		Expect(x).To(BeNumerically("<", 0))
		Expect(y).To(BeNumerically(">", 0))
		Expect(math.Hypot(x, y)).To(BeNumerically("~", (100.0-50.0)/100.0*2, 1e-12))
	})

	It("weakens monotonically with distance", func() {
		prev := math.Inf(1)
		for d := 0.5; d < 110; d += 0.5 {
			x, y := particles.Repulsion(d, 0, params)
			mag := math.Hypot(x, y)
			Expect(mag).To(BeNumerically("<=", prev))
			prev = mag
		}
		Expect(prev).To(BeZero())
	})
})

var _ = Describe("Wrap", func() {
	DescribeTable("resets to the opposite bound",
		func(v, max, want float64) {
			Expect(particles.Wrap(v, max)).To(Equal(want))
		},
		Entry("inside", 5.0, 10.0, 5.0),
		Entry("at zero", 0.0, 10.0, 0.0),
		Entry("past high bound", 10.5, 10.0, 0.0),
		Entry("at high bound", 10.0, 10.0, 0.0),
		Entry("below low bound", -0.1, 10.0, math.Nextafter(10, 0)),
	)
})

var _ = Describe("LinkOpacity", func() {
	params := particles.DefaultParams()

	It("scales linearly from the maximum to zero", func() {
		Expect(particles.LinkOpacity(0, params)).To(BeNumerically("~", 0.1, 1e-12))
		Expect(particles.LinkOpacity(75, params)).To(BeNumerically("~", 0.05, 1e-12))
		Expect(particles.LinkOpacity(150, params)).To(BeZero())
		Expect(particles.LinkOpacity(400, params)).To(BeZero())
	})
})
