package wave

import (
	"math"
	"testing"
)

func TestZeroVelocityStart(t *testing.T) {
	s := New()

	if len(s.Current()) != len(s.Previous()) {
		t.Fatalf("field length mismatch: %d vs %d", len(s.Current()), len(s.Previous()))
	}

	for i := range s.Current() {
		if s.Current()[i] != s.Previous()[i] {
			t.Errorf("prev[%d] = %f, want %f", i, s.Previous()[i], s.Current()[i])
		}
	}
}

func TestInitialImpulse(t *testing.T) {
	s := New()

	impulse := DefaultN / 3
	for i, v := range s.Current() {
		want := 0.0
		if i == impulse {
			want = 1.0
		}
		if v != want {
			t.Errorf("y[%d] = %f, want %f", i, v, want)
		}
	}
}

func TestDomainSpacing(t *testing.T) {
	s := New()
	x := s.Domain()

	if x[0] != -1.0 {
		t.Errorf("x[0] = %f, want -1", x[0])
	}
	if x[len(x)-1] != 1.0 {
		t.Errorf("x[N-1] = %f, want 1", x[len(x)-1])
	}

	for i := 1; i < len(x); i++ {
		want := -1 + 2*float64(i)/float64(len(x)-1)
		if math.Abs(x[i]-want) > 1e-12 {
			t.Errorf("x[%d] = %f, want %f", i, x[i], want)
		}
	}
}

func TestSingleStepImpulse(t *testing.T) {
	// N=5, impulse at index 1, prev equal to y (rest start):
	// y_new[1] = 2*1 - 1 + (0-2+0)/2 = 0,
	// y_new[2] = 0 - 0 + (1-0+0)/2 = 0.5, everything else zero.
	s := NewSize(5, 1)
	f := s.Step(nil)

	want := []float64{0, 0, 0.5, 0, 0}
	for i, v := range f.Y {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Errorf("y[%d] = %f, want %f", i, v, want[i])
		}
	}
}

func TestTwoStepSequence(t *testing.T) {
	// Second step reads the boundary-corrected first-step field as both
	// the derivative input and the 2y-prev base. Worked by hand:
	// y1 = [0, 0, 0.5, 0, 0], prev1 = [0, 1, 0, 0, 0]
	// y2[1] = 0 - 1 + (0-0+0.5)/2 = -0.75
	// y2[2] = 1 - 0 + (0-1+0)/2  = 0.5
	// y2[3] = 0 - 0 + (0.5-0+0)/2 = 0.25
	s := NewSize(5, 1)
	s.Step(nil)
	f := s.Step(nil)

	want := []float64{0, -0.75, 0.5, 0.25, 0}
	for i, v := range f.Y {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Errorf("y[%d] = %f, want %f", i, v, want[i])
		}
	}

	prevWant := []float64{0, 0, 0.5, 0, 0}
	for i, v := range s.Previous() {
		if math.Abs(v-prevWant[i]) > 1e-12 {
			t.Errorf("prev[%d] = %f, want %f", i, v, prevWant[i])
		}
	}
}

func TestBoundaryInvariant(t *testing.T) {
	s := New()

	for step := 0; step < 50; step++ {
		f := s.Step(nil)
		if f.Y[0] != 0 {
			t.Fatalf("step %d: y[0] = %f, want 0", step, f.Y[0])
		}
		if f.Y[len(f.Y)-1] != 0 {
			t.Fatalf("step %d: y[N-1] = %f, want 0", step, f.Y[len(f.Y)-1])
		}
	}
}

func TestStateCreatedOnce(t *testing.T) {
	s := New()
	domain := &s.Domain()[0]
	field := &s.Current()[0]

	for i := 0; i < 20; i++ {
		s.Step(nil)
	}

	// Stepping mutates in place; it must never rebuild the arrays.
	if &s.Domain()[0] != domain {
		t.Error("domain was reallocated during stepping")
	}
	if &s.Current()[0] != field {
		t.Error("field was reallocated during stepping")
	}
	if s.Steps() != 20 {
		t.Errorf("steps = %d, want 20", s.Steps())
	}
}

func TestFrameHints(t *testing.T) {
	s := New()
	f := s.Step(nil)

	if f.Title != "Wave equation" {
		t.Errorf("title = %q", f.Title)
	}
	if f.Legend != "Waves" {
		t.Errorf("legend = %q", f.Legend)
	}
	if f.XRange != [2]float64{-1, 1} {
		t.Errorf("x-range = %v", f.XRange)
	}
	if f.YRange != [2]float64{-1, 1} {
		t.Errorf("y-range = %v", f.YRange)
	}
}

func TestSinkReceivesEveryStep(t *testing.T) {
	s := New()

	var got []int
	sink := SinkFunc(func(f Frame) { got = append(got, f.Step) })

	for i := 0; i < 5; i++ {
		s.Step(sink)
	}

	if len(got) != 5 {
		t.Fatalf("sink saw %d frames, want 5", len(got))
	}
	for i, step := range got {
		if step != i+1 {
			t.Errorf("frame %d carried step %d", i, step)
		}
	}
}

func TestGuardedConstruction(t *testing.T) {
	s := NewSize(1, 10)
	if s.N() != 3 {
		t.Errorf("n = %d, want clamp to 3", s.N())
	}

	// Impulse index clamped into range, no panic.
	if s.Current().MaxAbs() != 1.0 {
		t.Errorf("impulse missing after clamp")
	}
}
