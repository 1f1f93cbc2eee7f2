package metrics

import "github.com/san-kum/wavesim/internal/wave"

// PeakAmplitude tracks the largest |y[i]| seen over a run. With the
// Courant number below the stability threshold this stays bounded; a
// growing peak means the update is wrong.
type PeakAmplitude struct {
	name string
	peak float64
}

func NewPeakAmplitude() *PeakAmplitude {
	return &PeakAmplitude{name: "peak_amplitude"}
}

func (p *PeakAmplitude) Name() string { return p.name }

func (p *PeakAmplitude) Observe(f wave.Frame) {
	if a := f.Y.MaxAbs(); a > p.peak {
		p.peak = a
	}
}

func (p *PeakAmplitude) Value() float64 { return p.peak }

func (p *PeakAmplitude) Reset() { p.peak = 0 }
