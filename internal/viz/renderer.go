package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/wavesim/internal/wave"
)

// ProfileRenderer draws wave frames onto a braille canvas. It implements
// wave.Sink; each Render replaces the previous profile.
type ProfileRenderer struct {
	canvas *Canvas
	frame  wave.Frame
	drawn  bool
}

func NewProfileRenderer(w, h int) *ProfileRenderer {
	return &ProfileRenderer{canvas: NewCanvas(w, h)}
}

func (r *ProfileRenderer) Render(f wave.Frame) {
	r.frame = f
	r.frame.Y = f.Y.Clone()
	r.drawn = true
	r.redraw()
}

func (r *ProfileRenderer) Canvas() *Canvas { return r.canvas }

func (r *ProfileRenderer) redraw() {
	r.canvas.Clear()

	f := r.frame
	n := len(f.Y)
	if n < 2 {
		return
	}

	cw, ch := r.canvas.Width*2, r.canvas.Height*4
	midY := ch / 2

	// zero-amplitude baseline
	r.canvas.DrawLine(0, midY, cw-1, midY)

	xSpan := f.XRange[1] - f.XRange[0]
	ySpan := f.YRange[1] - f.YRange[0]
	if xSpan == 0 || ySpan == 0 {
		return
	}

	prevX, prevY := 0, midY
	for i := 0; i < n; i++ {
		px := int(float64(cw-1) * (f.X[i] - f.XRange[0]) / xSpan)
		py := int(float64(ch-1) * (f.YRange[1] - f.Y[i]) / ySpan)
		if py < 0 {
			py = 0
		}
		if py >= ch {
			py = ch - 1
		}
		if i > 0 {
			r.canvas.DrawLine(prevX, prevY, px, py)
		}
		prevX, prevY = px, py
	}

	// boundary posts
	for dy := -2; dy <= 2; dy++ {
		r.canvas.Set(0, midY+dy)
		r.canvas.Set(cw-1, midY+dy)
	}
}

// View renders the current frame with its title, legend, and axis range
// labels.
func (r *ProfileRenderer) View() string {
	var b strings.Builder

	title := r.frame.Title
	if title == "" {
		title = "Wave equation"
	}
	b.WriteString(headerStyle.Render(title) + "\n")
	b.WriteString(canvasStyle.Render(r.canvas.String()) + "\n")

	if r.drawn {
		b.WriteString(axisStyle.Render(fmt.Sprintf("x: [%.1f, %.1f]  y: [%.1f, %.1f]",
			r.frame.XRange[0], r.frame.XRange[1], r.frame.YRange[0], r.frame.YRange[1])))
		b.WriteString("  " + legendStyle.Render("— "+r.frame.Legend) + "\n")
	}

	return b.String()
}
