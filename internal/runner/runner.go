package runner

import (
	"context"
	"fmt"

	"github.com/san-kum/wavesim/internal/wave"
)

// Runner is the external driver: it triggers one leapfrog step per frame
// and forwards each frame to the sink, metrics, and observers.
type Runner struct {
	stepper   *wave.Stepper
	sink      wave.Sink
	metrics   []Metric
	observers []Observer
}

func New(stepper *wave.Stepper, sink wave.Sink) *Runner {
	return &Runner{
		stepper:   stepper,
		sink:      sink,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the stepper cfg.Frames times, recording every time level.
// Cancellation returns ctx.Err() alongside the partial result.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		States:  make([]wave.Field, 0, cfg.Frames+1),
		Times:   make([]float64, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result.States = append(result.States, r.stepper.Current().Clone())
	result.Times = append(result.Times, 0)

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := r.stepper.Step(r.sink)

		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(f)
		}

		result.States = append(result.States, f.Y.Clone())
		result.Times = append(result.Times, float64(i+1)/cfg.FPS)
		result.StepsTaken++
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams frames to callback without recording history;
// returning false from the callback stops the run.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(wave.Frame) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := r.stepper.Step(r.sink)
		if !callback(f) {
			return nil
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %f", cfg.FPS)
	}
	return nil
}
