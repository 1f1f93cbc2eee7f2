package metrics

import "github.com/san-kum/wavesim/internal/wave"

// Energy averages the discrete field energy over the observed frames:
// kinetic from the per-step velocity (current minus previous frame),
// potential from the spatial gradient.
type Energy struct {
	name    string
	last    wave.Field
	total   float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f wave.Frame) {
	total := Instant(f.Y, e.last)
	e.last = f.Y.Clone()
	e.total += total
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.last = nil
	e.total = 0
	e.samples = 0
}

// Instant computes the energy of one time level given the previous one.
// A nil or mismatched previous field contributes no kinetic term.
func Instant(y, prev wave.Field) float64 {
	ke := 0.0
	if len(prev) == len(y) {
		for i := range y {
			v := y[i] - prev[i]
			ke += 0.5 * v * v
		}
	}

	pe := 0.0
	for i := 0; i+1 < len(y); i++ {
		d := y[i+1] - y[i]
		pe += 0.5 * d * d
	}

	return ke + pe
}
