// Package tcellsink renders bgfx pixels in a terminal.
//
// Each terminal cell shows two vertically stacked pixels with the upper half
// block glyph: the foreground paints the top pixel and the background the
// bottom one. A 128x64 panel fits in 128 columns by 32 rows.
package tcellsink

import (
	"github.com/flavioheleno/bgfx"
	"github.com/flavioheleno/bgfx/framebuf"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const halfBlock = '▀'

// Opts is the configuration for a Screen.
type Opts struct {
	// Top-left cell of the panel.
	X, Y int
	// Panel width in pixels, used to center captions.
	W int

	// Mono maps every non-zero color to On and zero to Off. Otherwise colors
	// are decoded as RGB 5-6-5.
	Mono bool
	On   tcell.Color // default: white
	Off  tcell.Color // default: black
}

// Screen is a pixel sink drawing onto a tcell.Screen.
type Screen struct {
	s    tcell.Screen
	x, y int
	w    int
	mono bool
	on   tcell.Color
	off  tcell.Color
}

// New returns a Screen drawing onto s. opts can be nil.
func New(s tcell.Screen, opts *Opts) *Screen {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	sc := &Screen{s: s, x: o.X, y: o.Y, w: o.W, mono: o.Mono, on: o.On, off: o.Off}
	if sc.on == tcell.ColorDefault {
		sc.on = tcell.ColorWhite
	}
	if sc.off == tcell.ColorDefault {
		sc.off = tcell.ColorBlack
	}
	return sc
}

// Sink returns a bgfx.Sink forwarding every pixel to Set.
func (sc *Screen) Sink() bgfx.Sink {
	return bgfx.Callback(sc.Set)
}

// Set paints pixel (x, y). It is a bgfx.PixelFunc. A cell not yet holding a
// half block is taken as two Off pixels.
func (sc *Screen) Set(x, y, c uint16) {
	cx, cy := sc.x+int(x), sc.y+int(y)/2

	fg, bg := sc.off, sc.off
	if mainc, _, style, _ := sc.s.GetContent(cx, cy); mainc == halfBlock {
		fg, bg, _ = style.Decompose()
	}
	if y%2 == 0 {
		fg = sc.color(c)
	} else {
		bg = sc.color(c)
	}
	sc.s.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (sc *Screen) color(c uint16) tcell.Color {
	if sc.mono {
		if c != 0 {
			return sc.on
		}
		return sc.off
	}
	rgb := framebuf.UnpackRGB565(c)
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Caption writes text on terminal row, relative to the panel, centered over
// the panel width. Wide runes take two cells.
func (sc *Screen) Caption(row int, text string, style tcell.Style) {
	x := sc.x
	if n := runewidth.StringWidth(text); sc.w > n {
		x += (sc.w - n) / 2
	}
	for _, r := range text {
		sc.s.SetContent(x, sc.y+row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Rows returns the number of terminal rows needed for h pixels.
func Rows(h int) int {
	return (h + 1) / 2
}
