// Package script drives a canvas from Lua.
//
// A script defines a global frame(n) called once per frame and optionally
// key(k) called with the pressed key as a one-character string. Drawing
// functions mirror the canvas methods:
//
//	clear(c)  block(x, y, c)  draw_block(x, y, c)
//	fill_rect(x, y, w, h, c)  stroke_rect(x, y, w, h, c)
//	circle(x, y, r, c)  fill_circle(x, y, r, c)
//	line(x0, y0, x1, y1, c)  triangle(x0, y0, x1, y1, x2, y2, c)
//	text(s, x, y [, attr])  paint(x, y, w, h, attr)  large_text(x, y, s, c)
//	shift(dx, dy)  shift_row(row, n)  shift_col(col, n)
//	rotate(theta)  scale(f [, ox, oy])
//	flatten()  overlay(tp)  capture()
//	set_color(i, r, g, b)  attr(fg, bg)
package script

import (
	"log"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/display"
)

// VM is a Lua state bound to one canvas
type VM struct {
	L  *lua.LState
	c  *canvas.Canvas
	hw display.Hardware
}

// New creates a VM with the drawing API installed. hw may be nil, in which
// case set_color is a no-op.
func New(c *canvas.Canvas, hw display.Hardware) *VM {
	vm := &VM{
		L:  lua.NewState(lua.Options{SkipOpenLibs: true}),
		c:  c,
		hw: hw,
	}
	// Only the pure libraries; scripts get no io or os access
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		vm.L.Push(vm.L.NewFunction(lib.fn))
		vm.L.Push(lua.LString(lib.name))
		vm.L.Call(1, 0)
	}
	vm.register()
	return vm
}

// Close releases the Lua state
func (vm *VM) Close() {
	vm.L.Close()
}

// SetHardware rebinds set_color, used once a sink exists
func (vm *VM) SetHardware(hw display.Hardware) {
	vm.hw = hw
}

// Load runs a script file, defining its globals
func (vm *VM) Load(path string) error {
	return errors.Wrapf(vm.L.DoFile(path), "script: load %s", path)
}

// Run executes Lua source
func (vm *VM) Run(src string) error {
	return errors.Wrap(vm.L.DoString(src), "script: run")
}

// Frame calls frame(n). A script without frame is not an error.
func (vm *VM) Frame(n int) error {
	return vm.call("frame", lua.LNumber(n))
}

// Key calls key(k) with the key as a string
func (vm *VM) Key(key rune) error {
	return vm.call("key", lua.LString(string(key)))
}

// Has reports whether the script defines a global function
func (vm *VM) Has(name string) bool {
	return vm.L.GetGlobal(name).Type() == lua.LTFunction
}

func (vm *VM) call(name string, args ...lua.LValue) error {
	fn := vm.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil
	}
	err := vm.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	if err != nil {
		log.Printf("script: %s: %v", name, err)
		return errors.Wrapf(err, "script: %s", name)
	}
	return nil
}

func (vm *VM) register() {
	funcs := map[string]lua.LGFunction{
		"clear":       vm.clear,
		"block":       vm.block,
		"draw_block":  vm.drawBlock,
		"get_block":   vm.getBlock,
		"fill_rect":   vm.fillRect,
		"stroke_rect": vm.strokeRect,
		"circle":      vm.circle,
		"fill_circle": vm.fillCircle,
		"line":        vm.line,
		"triangle":    vm.triangle,
		"text":        vm.text,
		"paint":       vm.paint,
		"large_text":  vm.largeText,
		"shift":       vm.shift,
		"shift_row":   vm.shiftRow,
		"shift_col":   vm.shiftCol,
		"rotate":      vm.rotate,
		"scale":       vm.scale,
		"flatten":     vm.flatten,
		"overlay":     vm.overlay,
		"capture":     vm.capture,
		"set_color":   vm.setColor,
		"attr":        vm.attr,
	}
	for name, fn := range funcs {
		vm.L.SetGlobal(name, vm.L.NewFunction(fn))
	}
	vm.L.SetGlobal("COLS", lua.LNumber(canvas.Cols))
	vm.L.SetGlobal("ROWS", lua.LNumber(canvas.Rows))
	vm.L.SetGlobal("BLOCK_ROWS", lua.LNumber(canvas.BlockRows))
}

func color(L *lua.LState, n int) uint8 {
	return uint8(L.CheckInt(n))
}

func (vm *VM) clear(L *lua.LState) int {
	vm.c.Clear(color(L, 1))
	return 0
}

func (vm *VM) block(L *lua.LState) int {
	vm.c.SetBlock(L.CheckInt(1), L.CheckInt(2), color(L, 3))
	return 0
}

func (vm *VM) drawBlock(L *lua.LState) int {
	vm.c.DrawBlock(L.CheckInt(1), L.CheckInt(2), color(L, 3))
	return 0
}

func (vm *VM) getBlock(L *lua.LState) int {
	L.Push(lua.LNumber(vm.c.Block(L.CheckInt(1), L.CheckInt(2))))
	return 1
}

func (vm *VM) fillRect(L *lua.LState) int {
	vm.c.FillRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), color(L, 5))
	return 0
}

func (vm *VM) strokeRect(L *lua.LState) int {
	vm.c.StrokeRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), color(L, 5))
	return 0
}

func (vm *VM) circle(L *lua.LState) int {
	vm.c.StrokeCircle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), color(L, 4))
	return 0
}

func (vm *VM) fillCircle(L *lua.LState) int {
	vm.c.FillCircle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), color(L, 4))
	return 0
}

func (vm *VM) line(L *lua.LState) int {
	vm.c.Line(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), color(L, 5))
	return 0
}

func (vm *VM) triangle(L *lua.LState) int {
	vm.c.Triangle(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4),
		L.CheckInt(5), L.CheckInt(6), color(L, 7))
	return 0
}

func (vm *VM) text(L *lua.LState) int {
	s, x, y := L.CheckString(1), L.CheckInt(2), L.CheckInt(3)
	if L.GetTop() >= 4 {
		vm.c.PrintColorString(s, x, y, canvas.Attr(L.CheckInt(4)))
	} else {
		vm.c.PrintString(s, x, y)
	}
	return 0
}

func (vm *VM) paint(L *lua.LState) int {
	vm.c.PaintArea(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), canvas.Attr(L.CheckInt(5)))
	return 0
}

func (vm *VM) largeText(L *lua.LState) int {
	vm.c.LargeText(L.CheckInt(1), L.CheckInt(2), L.CheckString(3), color(L, 4))
	return 0
}

func (vm *VM) shift(L *lua.LState) int {
	vm.c.Shift(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (vm *VM) shiftRow(L *lua.LState) int {
	vm.c.ShiftRow(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (vm *VM) shiftCol(L *lua.LState) int {
	vm.c.ShiftCol(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (vm *VM) rotate(L *lua.LState) int {
	vm.c.Rotate(float64(L.CheckNumber(1)))
	return 0
}

func (vm *VM) scale(L *lua.LState) int {
	f := L.CheckInt(1)
	if L.GetTop() >= 3 {
		vm.c.ScaleAt(f, L.CheckInt(2), L.CheckInt(3))
	} else {
		vm.c.Scale(f)
	}
	return 0
}

func (vm *VM) flatten(L *lua.LState) int {
	vm.c.BlocksToScreen()
	return 0
}

func (vm *VM) overlay(L *lua.LState) int {
	vm.c.TransparentBlocksToScreen(color(L, 1))
	return 0
}

func (vm *VM) capture(L *lua.LState) int {
	vm.c.BlocksFromScreen()
	return 0
}

func (vm *VM) setColor(L *lua.LState) int {
	i, r, g, b := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	if vm.hw != nil {
		vm.hw.SetColor(i, uint8(r), uint8(g), uint8(b))
	}
	return 0
}

func (vm *VM) attr(L *lua.LState) int {
	L.Push(lua.LNumber(canvas.MakeAttr(color(L, 1), color(L, 2))))
	return 1
}
