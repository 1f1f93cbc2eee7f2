package export

import (
	"fmt"
	"io"

	"github.com/san-kum/wavesim/internal/viz"
)

// WriteSVG renders a braille canvas as an SVG document, one rectangle
// per lit sub-pixel.
func WriteSVG(w io.Writer, canvas *viz.Canvas, scale float64) error {
	if canvas == nil {
		return fmt.Errorf("nil canvas")
	}
	if scale <= 0 {
		scale = 4.0
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	if _, err := fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#101018"/>
<g fill="#5fd7ff">
`, width, height, width, height); err != nil {
		return err
	}

	var werr error
	canvas.EachLit(func(px, py int) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			float64(px)*scale, float64(py)*scale, scale, scale)
	})
	if werr != nil {
		return werr
	}

	_, err := fmt.Fprint(w, "</g>\n</svg>\n")
	return err
}
