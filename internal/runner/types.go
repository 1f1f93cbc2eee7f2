package runner

import "github.com/san-kum/wavesim/internal/wave"

// Metric observes every frame of a run and reduces to a single value.
type Metric interface {
	Name() string
	Observe(f wave.Frame)
	Value() float64
	Reset()
}

// Observer is notified once per frame with no reduction step.
type Observer interface {
	OnFrame(f wave.Frame)
}

type Config struct {
	Frames int
	FPS    float64
}

func DefaultConfig() Config {
	return Config{
		Frames: 600,
		FPS:    60,
	}
}

type Result struct {
	States     []wave.Field
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}
