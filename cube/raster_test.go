package cube

import "testing"

func TestNewFrameBlank(t *testing.T) {
	f := NewFrame(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if f.At(x, y) != GLYPH_BLANK {
				t.Fatalf("cell (%d,%d) not blank: %q", x, y, f.At(x, y))
			}
		}
	}
}

func TestSetOutOfBoundsDropped(t *testing.T) {
	f := NewFrame(4, 4)
	table := [][2]int{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-100, -100},
	}
	for _, p := range table {
		f.Set(p[0], p[1], '#') // must not panic
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if f.At(x, y) != GLYPH_BLANK {
				t.Fatalf("out-of-bounds Set leaked into (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	f := NewFrame(10, 3)
	f.DrawLine(1, 1, 8, 1, '-')
	for x := 1; x <= 8; x++ {
		if f.At(x, 1) != '-' {
			t.Fatalf("missing cell at (%d,1)", x)
		}
	}
	if f.At(0, 1) != GLYPH_BLANK || f.At(9, 1) != GLYPH_BLANK {
		t.Fatalf("line overshot its endpoints")
	}
}

func TestDrawLineVertical(t *testing.T) {
	f := NewFrame(3, 10)
	f.DrawLine(1, 8, 1, 1, '|')
	for y := 1; y <= 8; y++ {
		if f.At(1, y) != '|' {
			t.Fatalf("missing cell at (1,%d)", y)
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	f := NewFrame(8, 8)
	f.DrawLine(0, 0, 7, 7, '\\')
	for i := 0; i <= 7; i++ {
		if f.At(i, i) != '\\' {
			t.Fatalf("missing cell at (%d,%d)", i, i)
		}
	}
}

func TestDrawLineEndpointAlwaysWritten(t *testing.T) {
	table := [][4]int{
		{0, 0, 7, 2},
		{7, 2, 0, 0},
		{3, 3, 3, 3}, // degenerate single point
		{2, 6, 5, 0},
	}
	for _, entry := range table {
		f := NewFrame(8, 8)
		f.DrawLine(entry[0], entry[1], entry[2], entry[3], '*')
		if f.At(entry[2], entry[3]) != '*' {
			t.Fatalf("endpoint (%d,%d) of line from (%d,%d) not written", entry[2], entry[3], entry[0], entry[1])
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	f := NewFrame(5, 5)
	f.DrawLine(-10, 2, 20, 2, '-') // must not panic
	for x := 0; x < 5; x++ {
		if f.At(x, 2) != '-' {
			t.Fatalf("clipped line missing in-grid cell (%d,2)", x)
		}
	}
	f2 := NewFrame(5, 5)
	f2.DrawLine(-100, -100, -50, -90, '*') // entirely outside
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if f2.At(x, y) != GLYPH_BLANK {
				t.Fatalf("fully off-grid line wrote (%d,%d)", x, y)
			}
		}
	}
}

func TestRowAndString(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(0, 0, 'a')
	f.Set(2, 1, 'b')
	if f.Row(0) != "a  " {
		t.Fatalf("Row(0): (got: %q) (expected: %q)", f.Row(0), "a  ")
	}
	if f.String() != "a  \n  b" {
		t.Fatalf("String: (got: %q) (expected: %q)", f.String(), "a  \n  b")
	}
}
