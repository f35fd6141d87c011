package framebuf

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB565Model converts colors to color.RGBA rounded to 5-6-5 precision.
var RGB565Model = color.ModelFunc(func(c color.Color) color.Color {
	return UnpackRGB565(RGB565Of(c))
})

// RGB565Of packs c into 5 bits red, 6 bits green and 5 bits blue.
func RGB565Of(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
}

// PackRGB565 packs 8-bit channels.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// UnpackRGB565 expands a packed pixel, replicating the high bits into the
// low bits so that 0xFFFF is pure white.
func UnpackRGB565(v uint16) color.RGBA {
	r := uint8((v >> 11) & 0x1F)
	g := uint8((v >> 5) & 0x3F)
	b := uint8(v & 0x1F)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// ParseRGB565 parses a "#rrggbb" color.
func ParseRGB565(s string) (uint16, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("framebuf: invalid color %q: %w", s, err)
	}
	return RGB565Of(c.Clamped()), nil
}

// RGB565 is a 16 bits per pixel image.
type RGB565 struct {
	Pix    []uint16        // Pixel data, row-major
	Stride int             // Pixels per row
	Rect   image.Rectangle // Image bounds
}

// NewRGB565 allocates an RGB565 image with the specified bounds.
func NewRGB565(r image.Rectangle) *RGB565 {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &RGB565{Rect: r}
	}
	return &RGB565{
		Pix:    make([]uint16, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *RGB565) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *RGB565) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *RGB565) At(x, y int) color.Color {
	return UnpackRGB565(p.RawAt(x, y))
}

// RawAt returns the packed pixel at (x, y).
func (p *RGB565) RawAt(x, y int) uint16 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set sets the color of the pixel at (x, y).
func (p *RGB565) Set(x, y int, c color.Color) {
	p.SetRaw(x, y, RGB565Of(c))
}

// SetRaw sets the packed pixel at (x, y).
func (p *RGB565) SetRaw(x, y int, v uint16) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v
}

// PixOffset returns the index of the pixel at (x, y).
func (p *RGB565) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
