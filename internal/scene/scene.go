// Package scene holds the demo pages shared by the hardware demo and the
// preview tool. Coordinates assume a 128x64 logical area; other sizes are
// clipped.
package scene

import (
	"errors"
	"math"

	"github.com/flavioheleno/bgfx"
	"github.com/skip2/go-qrcode"
)

// Palette is the pair of colors a page is drawn with.
type Palette struct {
	Fg uint16
	Bg uint16
}

// Mono is the palette for 1-bit panels.
var Mono = Palette{Fg: 1, Bg: 0}

// Page is one demo screen.
type Page struct {
	Name string
	Draw func(d *bgfx.Display, p Palette) error
}

// QRContent is encoded by the qr page.
const QRContent = "https://github.com/flavioheleno/bgfx"

// Pages returns the demo pages in presentation order.
func Pages() []Page {
	return []Page{
		{"lines", page(Lines)},
		{"lines-inverted", page(func(d *bgfx.Display, p Palette) { Lines(d, Palette{Fg: p.Bg, Bg: p.Fg}) })},
		{"rects", page(Rects)},
		{"round-rects", page(RoundRects)},
		{"triangles", page(Triangles)},
		{"circles", page(Circles)},
		{"text", page(Text)},
		{"sine", page(func(d *bgfx.Display, p Palette) {
			d.Clear(p.Bg)
			Sine(d, p, 0)
		})},
		{"qr", func(d *bgfx.Display, p Palette) error { return QR(d, p, QRContent) }},
	}
}

// ByName returns the page called name.
func ByName(name string) (Page, bool) {
	for _, pg := range Pages() {
		if pg.Name == name {
			return pg, true
		}
	}
	return Page{}, false
}

func page(fn func(d *bgfx.Display, p Palette)) func(d *bgfx.Display, p Palette) error {
	return func(d *bgfx.Display, p Palette) error {
		fn(d, p)
		return nil
	}
}

// Lines draws a frame one pixel in from the edges and both diagonals.
func Lines(d *bgfx.Display, p Palette) {
	d.Clear(p.Bg)
	d.DrawLine(1, 1, 1, 62, p.Fg)
	d.DrawLine(1, 62, 126, 62, p.Fg)
	d.DrawLine(126, 62, 126, 1, p.Fg)
	d.DrawLine(126, 1, 1, 1, p.Fg)

	d.DrawLine(0, 0, 127, 63, p.Fg)
	d.DrawLine(0, 63, 127, 0, p.Fg)
}

// Rects draws a rectangle outline next to a filled one.
func Rects(d *bgfx.Display, p Palette) {
	d.Clear(p.Bg)
	d.DrawRect(25, 0, 10, 64, p.Fg)
	d.FillRect(51, 0, 10, 64, p.Fg)
}

// RoundRects draws a rounded rectangle outline next to a filled one.
func RoundRects(d *bgfx.Display, p Palette) {
	d.Clear(p.Bg)
	d.DrawRoundRect(0, 0, 50, 64, 10, p.Fg)
	d.FillRoundRect(128-50, 0, 50, 64, 10, p.Fg)
}

// Triangles draws a triangle outline next to a filled one.
func Triangles(d *bgfx.Display, p Palette) {
	d.Clear(p.Bg)
	d.DrawTriangle(25, 0, 50, 63, 0, 63, p.Fg)
	d.FillTriangle(127-25, 0, 127, 63, 127-50, 63, p.Fg)
}

// Circles draws a filled disc and four outlines overlapping it.
func Circles(d *bgfx.Display, p Palette) {
	d.Clear(p.Bg)
	d.FillCircle(60, 32, 30, p.Fg)
	d.DrawCircle(30, 32, 10, p.Fg)
	d.DrawCircle(90, 32, 10, p.Fg)
	d.DrawCircle(10, 10, 10, p.Fg)
	d.DrawCircle(60, 10, 10, p.Fg)
}

// Text draws "Hello world" at two sizes and once with swapped colors.
func Text(d *bgfx.Display, p Palette) {
	d.Clear(p.Bg)
	d.DrawString(0, 0, "Hello world", p.Fg, p.Bg, 1, 1)
	d.DrawString(0, 25, "Hello world", p.Fg, p.Bg, 2, 2)
	d.DrawString(0, 50, "Hello world", p.Bg, p.Fg, 1, 1)
}

// Sine plots a sine wave in rows 25 to 49, shifted left by
// frame columns. Only the plot band is cleared, so it can be called in a loop.
func Sine(d *bgfx.Display, p Palette, frame int) {
	d.FillRect(0, 25, 128, 25, p.Bg)
	for i := range 128 {
		d.DrawPixel(i, SineRow(i, frame), p.Fg)
	}
}

// SineRow is the row Sine plots in column i.
func SineRow(i, frame int) int {
	return 25 + int(math.Sin(float64(i+frame)/5)*12+12)
}

// QR draws content as a QR code centered on the display, with its quiet zone
// in p.Fg and dark modules in p.Bg, each module as large as possible.
func QR(d *bgfx.Display, p Palette, content string) error {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return err
	}
	bitmap := q.Bitmap()
	n := len(bitmap)
	scale := min(d.Width(), d.Height()) / n
	if scale < 1 {
		return errors.New("scene: QR code does not fit the display")
	}

	ox := (d.Width() - n*scale) / 2
	oy := (d.Height() - n*scale) / 2

	d.Clear(p.Bg)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				d.FillRect(ox+x*scale, oy+y*scale, scale, scale, p.Fg)
			}
		}
	}
	return nil
}
