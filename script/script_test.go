package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/display"
)

func TestDrawingFunctions(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		x, y  int
		color uint8
	}{
		{"block", `block(3, 4, 9)`, 3, 4, 9},
		{"fill_rect", `fill_rect(10, 10, 5, 5, 2)`, 14, 14, 2},
		{"stroke_rect", `stroke_rect(1, 1, 4, 4, 6)`, 5, 3, 6},
		{"circle", `circle(40, 25, 5, 11)`, 45, 25, 11},
		{"fill_circle", `fill_circle(40, 25, 5, 12)`, 40, 25, 12},
		{"line", `line(0, 0, 9, 0, 3)`, 9, 0, 3},
		{"triangle", `triangle(0, 0, 10, 0, 0, 10, 4)`, 5, 0, 4},
		{"large_text", `large_text(0, 0, "I", 5)`, 1, 2, 5},
		{"shift", `block(0, 0, 7) shift(2, 1)`, 2, 1, 7},
		{"shift_row", `block(0, 3, 7) shift_row(3, -1)`, canvas.Cols - 1, 3, 7},
		{"scale", `block(0, 0, 8) scale(2, 0, 0)`, 1, 1, 8},
		{"clear", `clear(13)`, 50, 40, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := canvas.New()
			vm := New(c, nil)
			defer vm.Close()

			if err := vm.Run(tt.src); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := c.Block(tt.x, tt.y); got != tt.color {
				t.Errorf("Expected (%d,%d) = %d, got %d", tt.x, tt.y, tt.color, got)
			}
		})
	}
}

func TestTextAndScreen(t *testing.T) {
	c := canvas.New()
	vm := New(c, nil)
	defer vm.Close()

	err := vm.Run(`
		clear(1)
		flatten()
		text("hey", 2, 3, attr(14, 4))
		paint(0, 0, 2, 1, attr(1, 2))
		draw_block(60, 0, 5)
	`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	scr := c.Screen()
	if string(scr.Chars[3][2:5]) != "hey" || scr.Colors[3][2] != canvas.MakeAttr(14, 4) {
		t.Error("Expected colored text")
	}
	if scr.Colors[0][1] != canvas.MakeAttr(1, 2) {
		t.Error("Expected painted area")
	}
	if top, _ := c.HalfColors(60, 0); top != 5 {
		t.Errorf("Expected composited block, got %d", top)
	}
}

func TestFrameAndKey(t *testing.T) {
	c := canvas.New()
	vm := New(c, nil)
	defer vm.Close()

	if err := vm.Frame(1); err != nil {
		t.Errorf("Expected missing frame to be ignored, got %v", err)
	}

	err := vm.Run(`
		last = ""
		function frame(n) block(n, 0, 10) end
		function key(k) last = k end
	`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !vm.Has("frame") || !vm.Has("key") || vm.Has("nothing") {
		t.Error("Unexpected Has result")
	}

	vm.Frame(5)
	if c.Block(5, 0) != 10 {
		t.Error("Expected frame(5) to draw")
	}
	vm.Key('x')
	if got := vm.L.GetGlobal("last").String(); got != "x" {
		t.Errorf("Expected key x, got %q", got)
	}
}

func TestRuntimeError(t *testing.T) {
	vm := New(canvas.New(), nil)
	defer vm.Close()

	if err := vm.Run(`function frame(n) error("bad") end`); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := vm.Frame(0); err == nil {
		t.Error("Expected runtime error from frame")
	}
	if err := vm.Run(`block("x")`); err == nil {
		t.Error("Expected argument error")
	}
}

func TestSandbox(t *testing.T) {
	vm := New(canvas.New(), nil)
	defer vm.Close()
	if err := vm.Run(`os.exit(1)`); err == nil {
		t.Error("Expected os library to be unavailable")
	}
	if err := vm.Run(`x = math.floor(2.5) .. string.upper("a")`); err != nil {
		t.Errorf("Expected math and string libraries, got %v", err)
	}
}

func TestSetColor(t *testing.T) {
	hw := display.NewCapture(nil)
	vm := New(canvas.New(), nil)
	defer vm.Close()

	vm.Run(`set_color(3, 1, 2, 3)`)
	vm.SetHardware(hw)
	vm.Run(`set_color(3, 10, 20, 30)`)
	if r, g, b := hw.Color(3); r != 10 || g != 20 || b != 30 {
		t.Errorf("Expected 10,20,30, got %d,%d,%d", r, g, b)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.lua")
	if err := os.WriteFile(path, []byte(`function frame(n) block(0, 0, 1) end`), 0644); err != nil {
		t.Fatal(err)
	}
	vm := New(canvas.New(), nil)
	defer vm.Close()
	if err := vm.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := vm.Load(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("Expected error for missing file")
	}
}
