package canvas

import "testing"

func countColor(c *Canvas, color uint8) int {
	n := 0
	for y := 0; y < BlockRows; y++ {
		for x := 0; x < Cols; x++ {
			if c.blocks[y][x] == color {
				n++
			}
		}
	}
	return n
}

func TestFillRect(t *testing.T) {
	c := New()
	c.FillRect(10, 5, 4, 3, 2)
	if got := countColor(c, 2); got != 12 {
		t.Errorf("Expected 12 filled blocks, got %d", got)
	}
	if c.Block(13, 7) != 2 || c.Block(14, 7) != 0 || c.Block(13, 8) != 0 {
		t.Error("Expected fill to cover [x, x+w) x [y, y+h)")
	}
}

func TestFillRect_Clipped(t *testing.T) {
	c := New()
	c.FillRect(-10, -10, 200, 200, 5)
	if got := countColor(c, 5); got != Cols*BlockRows {
		t.Errorf("Expected whole grid filled, got %d blocks", got)
	}
}

func TestStrokeRect(t *testing.T) {
	c := New()
	c.StrokeRect(2, 3, 4, 2, 9)
	// Outline of a 5x3 cell area has 5+5+1+1 cells
	if got := countColor(c, 9); got != 12 {
		t.Errorf("Expected 12 outline blocks, got %d", got)
	}
	for _, p := range [][2]int{{2, 3}, {6, 3}, {2, 5}, {6, 5}} {
		if c.Block(p[0], p[1]) != 9 {
			t.Errorf("Expected corner %v set", p)
		}
	}
	if c.Block(4, 4) != 0 {
		t.Error("Expected interior left empty")
	}
}

func TestStrokeCircle_Symmetry(t *testing.T) {
	for _, r := range []int{1, 3, 8, 15} {
		c := New()
		cx, cy := 40, 25
		c.StrokeCircle(cx, cy, r, 7)

		for _, p := range [][2]int{{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r}} {
			if c.Block(p[0], p[1]) != 7 {
				t.Errorf("r=%d: expected axis point %v on circle", r, p)
			}
		}
		if c.Block(cx, cy) != 0 {
			t.Errorf("r=%d: expected center empty", r)
		}
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				a := c.Block(cx+dx, cy+dy)
				if a != c.Block(cx-dx, cy+dy) || a != c.Block(cx+dx, cy-dy) {
					t.Fatalf("r=%d: asymmetric at offset (%d,%d)", r, dx, dy)
				}
			}
		}
	}
}

func TestFillCircle(t *testing.T) {
	c := New()
	c.FillCircle(40, 25, 6, 3)
	if c.Block(40, 25) != 3 || c.Block(43, 27) != 3 {
		t.Error("Expected circle interior filled")
	}
	if c.Block(47, 25) != 0 || c.Block(46, 31) != 0 {
		t.Error("Expected cells beyond the radius empty")
	}

	outline := New()
	outline.StrokeCircle(40, 25, 6, 3)
	for y := 0; y < BlockRows; y++ {
		for x := 0; x < Cols; x++ {
			if outline.Block(x, y) == 3 && c.Block(x, y) != 3 {
				t.Fatalf("Expected outline cell (%d,%d) inside filled circle", x, y)
			}
		}
	}
}

func TestCircle_NegativeRadius(t *testing.T) {
	c := New()
	c.StrokeCircle(10, 10, -1, 4)
	c.FillCircle(10, 10, -1, 4)
	if countColor(c, 4) != 0 {
		t.Error("Expected negative radius to draw nothing")
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		count          int
	}{
		{"Horizontal", 5, 5, 15, 5, 11},
		{"Horizontal reversed", 15, 5, 5, 5, 11},
		{"Vertical", 5, 5, 5, 20, 16},
		{"Diagonal", 0, 0, 9, 9, 10},
		{"Shallow", 0, 0, 20, 5, 21},
		{"Steep reversed", 3, 30, 1, 10, 21},
		{"Single point", 7, 7, 7, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Line(tt.x0, tt.y0, tt.x1, tt.y1, 12)
			if c.Block(tt.x0, tt.y0) != 12 || c.Block(tt.x1, tt.y1) != 12 {
				t.Error("Expected both endpoints drawn")
			}
			if got := countColor(c, 12); got != tt.count {
				t.Errorf("Expected %d blocks, got %d", tt.count, got)
			}
		})
	}
}

func TestLine_OffGridDropped(t *testing.T) {
	c := New()
	c.Line(-20, 10, 100, 10, 8)
	if got := countColor(c, 8); got != Cols {
		t.Errorf("Expected %d visible blocks, got %d", Cols, got)
	}
}

func TestTriangle(t *testing.T) {
	c := New()
	c.Triangle(10, 10, 30, 10, 20, 30, 14)
	for _, p := range [][2]int{{10, 10}, {30, 10}, {20, 30}, {20, 10}} {
		if c.Block(p[0], p[1]) != 14 {
			t.Errorf("Expected edge point %v drawn", p)
		}
	}
	if c.Block(20, 20) != 0 {
		t.Error("Expected triangle interior empty")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Clear(0x1B)
	if got := countColor(c, 0x0B); got != Cols*BlockRows {
		t.Errorf("Expected every block masked to 11, got %d", got)
	}
}
