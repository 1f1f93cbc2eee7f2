package wave

const (
	// DefaultN is the grid resolution over the [-1, 1] domain.
	DefaultN = 200

	// courantSq is the squared Courant number of the scheme. 0.5 sits
	// below the stability threshold of 1 for this stencil.
	courantSq = 0.5
)

// Stepper integrates the 1D scalar wave equation with an explicit
// leapfrog scheme: fixed (Dirichlet) boundaries, two retained time
// levels, one update per Step call.
type Stepper struct {
	x       Field
	y       Field
	prev    Field
	scratch Field
	steps   int
}

// New builds the default stepper: DefaultN samples over [-1, 1] with a
// unit impulse at index DefaultN/3, starting at rest.
func New() *Stepper {
	return NewSize(DefaultN, DefaultN/3)
}

// NewSize builds a stepper with n samples and the initial impulse at the
// given index. n is clamped to at least 3 and the impulse into range.
func NewSize(n, impulse int) *Stepper {
	if n < 3 {
		n = 3
	}
	if impulse < 0 {
		impulse = 0
	}
	if impulse > n-1 {
		impulse = n - 1
	}

	x := make(Field, n)
	for i := range x {
		x[i] = -1 + 2*float64(i)/float64(n-1)
	}

	y := make(Field, n)
	y[impulse] = 1.0

	return &Stepper{
		x:       x,
		y:       y,
		prev:    y.Clone(), // zero initial velocity
		scratch: make(Field, n),
	}
}

func (s *Stepper) N() int     { return len(s.y) }
func (s *Stepper) Steps() int { return s.steps }

// Domain returns the sample positions. Callers must not modify it.
func (s *Stepper) Domain() Field { return s.x }

// Current returns the current time level. It aliases the stepper's
// buffer and changes on every Step.
func (s *Stepper) Current() Field { return s.y }

// Previous returns the previous time level.
func (s *Stepper) Previous() Field { return s.prev }

// Step advances the field by one time level and hands the new frame to
// sink (nil sinks are skipped). The spatial derivative and the 2y-prev
// base both read the boundary-corrected field captured in scratch, so
// neither sees partially updated values; reordering those two reads
// changes the numeric result.
func (s *Stepper) Step(sink Sink) Frame {
	n := len(s.y)

	s.y[0] = 0
	s.y[n-1] = 0

	copy(s.scratch, s.y)

	for i := 1; i < n-1; i++ {
		deriv := s.scratch[i-1] - 2*s.scratch[i] + s.scratch[i+1]
		s.y[i] = 2*s.scratch[i] - s.prev[i] + courantSq*deriv
	}

	// The pre-update field becomes "previous"; the old prev buffer is
	// recycled as next step's scratch.
	s.prev, s.scratch = s.scratch, s.prev
	s.steps++

	f := s.frame()
	if sink != nil {
		sink.Render(f)
	}
	return f
}

func (s *Stepper) frame() Frame {
	n := len(s.y)
	return Frame{
		X:      s.x,
		Y:      s.y,
		Title:  "Wave equation",
		XRange: [2]float64{s.x[0], s.x[n-1]},
		YRange: [2]float64{-1.0, 1.0},
		Legend: "Waves",
		Step:   s.steps,
	}
}
