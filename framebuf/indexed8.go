package framebuf

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Indexed8 is a 1 byte per pixel image. Without a Palette each byte is a
// gray level; with one, each byte indexes it.
type Indexed8 struct {
	Pix     []byte          // Pixel data, row-major
	Stride  int             // Bytes per row
	Rect    image.Rectangle // Image bounds
	Palette color.Palette   // Optional, at most 256 entries
}

// NewIndexed8 allocates an Indexed8 image with the specified bounds.
func NewIndexed8(r image.Rectangle, p color.Palette) *Indexed8 {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Indexed8{Rect: r, Palette: p}
	}
	return &Indexed8{
		Pix:     make([]byte, w*h),
		Stride:  w,
		Rect:    r,
		Palette: p,
	}
}

// ColorModel returns the color model of the image.
func (p *Indexed8) ColorModel() color.Model {
	if len(p.Palette) == 0 {
		return color.GrayModel
	}
	return color.ModelFunc(func(c color.Color) color.Color {
		return p.Palette[p.Index(c)]
	})
}

// Bounds returns the image bounds.
func (p *Indexed8) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *Indexed8) At(x, y int) color.Color {
	v := p.IndexAt(x, y)
	if len(p.Palette) == 0 {
		return color.Gray{Y: v}
	}
	if int(v) >= len(p.Palette) {
		return color.Black
	}
	return p.Palette[v]
}

// IndexAt returns the raw byte at (x, y).
func (p *Indexed8) IndexAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set sets the color of the pixel at (x, y).
func (p *Indexed8) Set(x, y int, c color.Color) {
	p.SetIndex(x, y, p.Index(c))
}

// SetIndex sets the raw byte at (x, y).
func (p *Indexed8) SetIndex(x, y int, v uint8) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v
}

// Index returns the byte that best represents c: its gray level, or the
// palette entry closest to it in CIE L*a*b*.
func (p *Indexed8) Index(c color.Color) uint8 {
	if len(p.Palette) == 0 {
		return color.GrayModel.Convert(c).(color.Gray).Y
	}
	target, _ := colorful.MakeColor(c)
	best, bestDist := 0, math.MaxFloat64
	for i, pc := range p.Palette {
		if i > 0xFF {
			break
		}
		cand, ok := colorful.MakeColor(pc)
		if !ok {
			continue
		}
		if d := target.DistanceLab(cand); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// PixOffset returns the index of the byte holding (x, y).
func (p *Indexed8) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
