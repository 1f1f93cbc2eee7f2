package metrics

import (
	"math"

	"github.com/san-kum/wavesim/internal/wave"
)

// SymmetryError reports the worst mirror residual max |y[i] - y[N-1-i]|
// seen over a run. Zero (up to fp noise) for a midpoint impulse, since
// both the stencil and the boundaries are symmetric.
type SymmetryError struct {
	name  string
	worst float64
}

func NewSymmetryError() *SymmetryError {
	return &SymmetryError{name: "symmetry_error"}
}

func (s *SymmetryError) Name() string { return s.name }

func (s *SymmetryError) Observe(f wave.Frame) {
	n := len(f.Y)
	for i := 0; i < n/2; i++ {
		if d := math.Abs(f.Y[i] - f.Y[n-1-i]); d > s.worst {
			s.worst = d
		}
	}
}

func (s *SymmetryError) Value() float64 { return s.worst }

func (s *SymmetryError) Reset() { s.worst = 0 }
