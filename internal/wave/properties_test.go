package wave_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/wave"
)

var _ = Describe("Stepper", func() {
	It("keeps a midpoint impulse symmetric about the midpoint", func() {
		// Symmetric stencil + symmetric boundaries: a centered impulse
		// must stay mirror-symmetric for any number of steps.
		n := 101
		s := wave.NewSize(n, n/2)

		for step := 0; step < 250; step++ {
			f := s.Step(nil)
			for i := 0; i < n/2; i++ {
				Expect(f.Y[i]).To(BeNumerically("~", f.Y[n-1-i], 1e-9),
					"step %d, index %d", step, i)
			}
		}
	})

	It("stays bounded over 100 steps at Courant^2 = 0.5", func() {
		s := wave.New()

		maxAmp := s.Current().MaxAbs()
		for step := 0; step < 100; step++ {
			f := s.Step(nil)
			Expect(f.Y.IsValid()).To(BeTrue(), "step %d produced NaN/Inf", step)
			if a := f.Y.MaxAbs(); a > maxAmp {
				maxAmp = a
			}
		}

		Expect(maxAmp).To(BeNumerically("<=", 10.0))
	})

	It("pins both boundaries to zero on every step", func() {
		s := wave.New()
		n := s.N()

		for step := 0; step < 200; step++ {
			f := s.Step(nil)
			Expect(f.Y[0]).To(BeZero())
			Expect(f.Y[n-1]).To(BeZero())
		}
	})

	It("preserves field/domain length agreement while stepping", func() {
		s := wave.NewSize(64, 20)

		for step := 0; step < 50; step++ {
			s.Step(nil)
			Expect(s.Current()).To(HaveLen(s.N()))
			Expect(s.Previous()).To(HaveLen(s.N()))
			Expect(s.Domain()).To(HaveLen(s.N()))
		}
	})
})
