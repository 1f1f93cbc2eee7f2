package wave

// Frame is one drawable time level: the domain, the current field, and
// fixed display hints. X and Y alias the stepper's buffers; sinks that
// retain a frame past the Render call must clone them.
type Frame struct {
	X, Y   Field
	Title  string
	XRange [2]float64
	YRange [2]float64
	Legend string
	Step   int
}

// Sink receives one frame per step and does the actual drawing. The
// stepper issues the draw call and does not wait on the sink beyond it.
type Sink interface {
	Render(f Frame)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Frame)

func (fn SinkFunc) Render(f Frame) { fn(f) }
