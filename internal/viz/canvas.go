package viz

import "strings"

// Braille cells pack 2x4 dots per character:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// starting at Unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface. Pixel coordinates run over
// (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set turns on the sub-pixel at (x, y). Out-of-range coordinates are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= dotBits[y%4][x%2]
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line between sub-pixel coordinates using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// EachLit calls fn with the sub-pixel coordinates of every lit dot, in
// row-major order. It is the one place the braille bit layout is decoded
// for consumers outside this package.
func (c *Canvas) EachLit(fn func(x, y int)) {
	for row := range c.Grid {
		for col, cell := range c.Grid[row] {
			if cell <= 0x2800 {
				continue
			}
			for sy := 0; sy < 4; sy++ {
				for sx := 0; sx < 2; sx++ {
					if cell&dotBits[sy][sx] != 0 {
						fn(col*2+sx, row*4+sy)
					}
				}
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
