package garden_test

import (
	"github.com/san-kum/bloom/internal/garden"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func waterTimes(g *garden.Garden, n int) {
	for i := 0; i < n; i++ {
		g.Water()
	}
}

func tickTimes(g *garden.Garden, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

var _ = Describe("Garden", func() {
	var (
		g    *garden.Garden
		geom garden.Geometry
	)

	BeforeEach(func() {
		geom = garden.NewGeometry(garden.ReferenceSize)
		g = garden.New(garden.DefaultParams(), geom)
	})

	Describe("watering", func() {
		It("starts as a seed with no progress", func() {
			Expect(g.Growth()).To(Equal(garden.Growth{Stage: garden.Seed, Progress: 0}))
			Expect(g.ParticleCount()).To(BeZero())
		})

		It("adds two progress and three droplets at the old stem tip", func() {
			g.Water()

			Expect(g.Growth().Stage).To(Equal(garden.Seed))
			Expect(g.Growth().Progress).To(BeNumerically("==", 2))

			top := geom.BaseY - garden.StemHeight(garden.Seed, 0, geom.StemUnit())
			ps := g.Particles()
			Expect(ps).To(HaveLen(garden.BatchSize))
			for _, p := range ps {
				Expect(p.Opacity).To(BeNumerically("==", 1))
			}
			Expect(ps[0].Y).To(BeNumerically("~", top, 1e-9))
			Expect(ps[1].Y).To(BeNumerically("~", top, 1e-9))
			Expect(ps[2].Y).To(BeNumerically("~", top-geom.Width*0.05, 1e-9))
			Expect(ps[0].X).To(BeNumerically("~", geom.CenterX-20, 1e-9))
			Expect(ps[1].X).To(BeNumerically("~", geom.CenterX+20, 1e-9))
			Expect(ps[2].X).To(BeNumerically("~", geom.CenterX, 1e-9))
		})

		It("takes exactly fifty waterings per stage", func() {
			for _, want := range []garden.Stage{garden.Sprout, garden.Bud, garden.Bloom} {
				before := g.Growth().Stage
				waterTimes(g, 49)
				Expect(g.Growth().Stage).To(Equal(before))
				g.Water()
				Expect(g.Growth().Stage).To(Equal(want))
			}
		})

		It("never moves backwards or past the last stage", func() {
			last := g.Growth().Stage
			for i := 0; i < 400; i++ {
				g.Water()
				s := g.Growth().Stage
				Expect(s).To(BeNumerically(">=", last))
				Expect(s).To(BeNumerically("<=", garden.LastStage))
				Expect(g.Growth().Progress).To(BeNumerically(">=", 0))
				Expect(g.Growth().Progress).To(BeNumerically("<=", garden.MaxProgress))
				last = s
			}
		})

		It("is capped at full bloom but keeps spawning droplets", func() {
			waterTimes(g, 150)
			Expect(g.Growth()).To(Equal(garden.Growth{Stage: garden.Bloom, Progress: 100}))

			before := g.ParticleCount()
			waterTimes(g, 5)
			Expect(g.Growth()).To(Equal(garden.Growth{Stage: garden.Bloom, Progress: 100}))
			Expect(g.ParticleCount()).To(Equal(before + 5*garden.BatchSize))
		})

		It("spawns the transition batch at the pre-transition height", func() {
			waterTimes(g, 49)
			tickTimes(g, 30)
			Expect(g.ParticleCount()).To(BeZero())

			oldTop := geom.StemTop(garden.Seed, 98)
			g.Water()
			Expect(g.Growth().Stage).To(Equal(garden.Sprout))
			Expect(g.Particles()[0].Y).To(BeNumerically("~", oldTop, 1e-9))
		})
	})

	Describe("ticking", func() {
		It("fades droplets linearly and drops them at zero", func() {
			g.Water()
			for k := 1; k < 20; k++ {
				g.Tick()
				Expect(g.ParticleCount()).To(Equal(garden.BatchSize))
				for _, p := range g.Particles() {
					Expect(p.Opacity).To(BeNumerically("~", 1-float64(k)*0.05, 1e-9))
				}
			}
			g.Tick()
			Expect(g.ParticleCount()).To(BeZero())
		})

		It("moves droplets by their velocity", func() {
			g.Water()
			start := g.Particles()
			tickTimes(g, 3)
			now := g.Particles()
			for i := range start {
				Expect(now[i].X).To(BeNumerically("~", start[i].X+3*start[i].VX, 1e-9))
				Expect(now[i].Y).To(BeNumerically("~", start[i].Y+3*start[i].VY, 1e-9))
			}
		})

		It("keeps the bloom scale at zero before blooming", func() {
			waterTimes(g, 120)
			tickTimes(g, 40)
			Expect(g.Phase().BloomScale).To(BeZero())
		})

		It("ramps the bloom scale by one step per frame and saturates", func() {
			waterTimes(g, 150)
			prev := g.Phase().BloomScale
			for i := 0; i < 19; i++ {
				g.Tick()
				cur := g.Phase().BloomScale
				Expect(cur - prev).To(BeNumerically("~", 0.05, 1e-9))
				prev = cur
			}
			g.Tick()
			Expect(g.Phase().BloomScale).To(Equal(1.0))
			tickTimes(g, 10)
			Expect(g.Phase().BloomScale).To(Equal(1.0))
		})

		It("reaches full bloom and an empty sky within twenty frames", func() {
			waterTimes(g, 150)
			tickTimes(g, 20)
			Expect(g.Phase().BloomScale).To(Equal(1.0))
			Expect(g.ParticleCount()).To(BeZero())
		})

		It("advances the pulse every frame", func() {
			tickTimes(g, 10)
			Expect(g.Phase().Pulse).To(BeNumerically("~", 0.5, 1e-9))
			Expect(g.Frames()).To(Equal(10))
		})
	})
})

var _ = Describe("Phase", func() {
	It("resets the bloom scale on the first frame outside bloom", func() {
		p := garden.Phase{BloomScale: 0.6}
		p.Advance(garden.Bud, garden.DefaultPulseStep, garden.DefaultBloomStep)
		Expect(p.BloomScale).To(BeZero())
	})

	It("keeps the pulse factor between 0.8 and 1", func() {
		var p garden.Phase
		for i := 0; i < 500; i++ {
			p.Advance(garden.Seed, 0.05, 0.05)
			Expect(p.PulseScale()).To(BeNumerically(">=", 0.8-1e-12))
			Expect(p.PulseScale()).To(BeNumerically("<=", 1.0+1e-12))
		}
	})
})
