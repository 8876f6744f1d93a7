package cube

import "strings"

// Frame is a single rasterized character grid. It lives for exactly one
// frame: allocated blank, drawn into, handed to the display sink, discarded.
type Frame struct {
	Width, Height int
	Cells         [][]rune
}

func NewFrame(width, height int) *Frame {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = GLYPH_BLANK
		}
		cells[y] = row
	}
	return &Frame{Width: width, Height: height, Cells: cells}
}

// Set writes one cell. Coordinates outside the grid are silently dropped.
func (f *Frame) Set(x, y int, ch rune) {
	if x >= 0 && x < f.Width && y >= 0 && y < f.Height {
		f.Cells[y][x] = ch
	}
}

func (f *Frame) At(x, y int) rune {
	return f.Cells[y][x]
}

// DrawLine rasterizes a line with Bresenham's algorithm, stepping along the
// major axis with a half-delta error term. The end point is written again
// unconditionally after the loop: the stepping condition stops on the major
// coordinate alone, which can leave the final cell unwritten.
func (f *Frame) DrawLine(x0, y0, x1, y1 int, ch rune) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	x, y := x0, y0
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	if dx > dy {
		err := float64(dx) / 2
		for x != x1 {
			f.Set(x, y, ch)
			err -= float64(dy)
			if err < 0 {
				y += sy
				err += float64(dx)
			}
			x += sx
		}
	} else {
		err := float64(dy) / 2
		for y != y1 {
			f.Set(x, y, ch)
			err -= float64(dx)
			if err < 0 {
				x += sx
				err += float64(dy)
			}
			y += sy
		}
	}

	f.Set(x1, y1, ch)
}

func (f *Frame) Row(y int) string {
	return string(f.Cells[y])
}

// String renders the grid as newline-separated rows, the form a text-widget
// style sink consumes.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(f.Cells[y]))
	}
	return sb.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
