package framebuf

import (
	"image"
	"image/color"
)

// Bit is a monochrome color: true is on (white), false is off (black).
type Bit bool

// RGBA implements color.Color.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit. Colors at least half as bright as
// white are on.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Layout is the bit addressing of a Mono image.
type Layout uint8

const (
	// VerticalPages stores 8 rows of one column per byte: byte (y/8)*W+x,
	// bit y&7.
	VerticalPages Layout = iota
	// HorizontalGroups stores 8 columns of one row per byte: byte (x/8)*W+y,
	// bit x&7.
	HorizontalGroups
)

// Mono is a 1 bit per pixel image.
type Mono struct {
	Pix    []byte          // Packed pixels
	Rect   image.Rectangle // Image bounds
	Layout Layout          // Bit addressing
}

// MonoLen returns the number of bytes a w×h Mono image needs.
func MonoLen(w, h int, l Layout) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	if l == VerticalPages {
		return ((h-1)/8)*w + w
	}
	return ((w-1)/8)*w + h
}

// NewMono allocates a Mono image with the specified bounds.
func NewMono(r image.Rectangle, l Layout) *Mono {
	return &Mono{
		Pix:    make([]byte, MonoLen(r.Dx(), r.Dy(), l)),
		Rect:   r,
		Layout: l,
	}
}

// ColorModel returns the color model of the image.
func (p *Mono) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *Mono) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *Mono) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y).
func (p *Mono) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return false
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *Mono) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y).
func (p *Mono) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear sets every pixel to b.
func (p *Mono) Clear(b Bit) {
	v := byte(0)
	if b {
		v = 0xFF
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *Mono) pixOffset(x, y int) (offset int, mask byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	w := p.Rect.Dx()
	if p.Layout == VerticalPages {
		return (y/8)*w + x, 1 << uint(y&7)
	}
	return (x/8)*w + y, 1 << uint(x&7)
}
