package bgfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrOutOfBounds is recorded by a strict Display when a pixel is dropped
	// because it falls outside the logical bounds.
	ErrOutOfBounds = errors.New("bgfx: pixel out of bounds")
	// ErrBufferSize is returned by New when the buffer cannot hold W×H pixels
	// with the configured packing.
	ErrBufferSize = errors.New("bgfx: buffer too small")
	// ErrCustomFont is returned by New when Opts.Font is set. Only the built-in
	// 5x7 font is rendered.
	ErrCustomFont = errors.New("bgfx: custom fonts are not supported")
)

// Rotation is a multiple of 90° applied to every drawing call.
type Rotation uint8

// Supported rotations.
const (
	Rotate0   Rotation = iota
	Rotate90           // logical (0,0) is physical (W-1,0)
	Rotate180          // logical (0,0) is physical (W-1,H-1)
	Rotate270          // logical (0,0) is physical (0,H-1)
)

// Packing is the number of pixels stored in one addressable buffer unit along
// each axis.
type Packing struct {
	X int
	Y int
}

// Common packings.
var (
	// PackLinear stores one pixel per unit (8-bit and 16-bit buffers).
	PackLinear = Packing{X: 1, Y: 1}
	// PackPages stores 8 vertical pixels per byte, as SSD1306 class
	// controllers do.
	PackPages = Packing{X: 1, Y: 8}
	// PackColumns stores 8 horizontal pixels per byte.
	PackColumns = Packing{X: 8, Y: 1}
)

// vertical reports whether bytes run down a page of 8 rows.
func (p Packing) vertical() bool {
	return p.Y > 1 && p.X == 1
}

// Opts is the configuration for a Display.
type Opts struct {
	// Physical dimensions in pixels. They never change with rotation.
	W int
	H int

	// Packing of the monochrome buffer (default: PackPages). Ignored by the
	// other sinks.
	Packing Packing

	// Rotation applied from the start (reduced modulo 4).
	Rotation Rotation

	// Sink receives every pixel. A nil Sink makes drawing a no-op.
	Sink Sink

	// Strict records the first out-of-bounds pixel; see Display.Err.
	Strict bool

	// Palette gives meaning to Indexed8 bytes in Image. Nil means gray
	// levels.
	Palette color.Palette

	// Text defaults.
	TextColor   uint16
	TextBgColor uint16
	TextSizeX   int // default: 1
	TextSizeY   int // default: 1
	CP437       bool

	// Font must be nil; proportional fonts are not rendered.
	Font *Font
}

// Display is the drawing handle built from Opts.
//
// It is not safe for concurrent use.
type Display struct {
	w, h          int // physical
	width, height int // logical
	rotation      Rotation
	packing       Packing
	sink          Sink
	palette       color.Palette
	strict        bool
	err           error

	cursorX, cursorY int
	textColor        uint16
	textBg           uint16
	textSizeX        int
	textSizeY        int
	cp437            bool
}

// New validates opts and returns a Display.
//
// The buffer held by a buffer Sink must be large enough for W×H pixels in its
// encoding; it is never resized or copied.
func New(opts *Opts) (*Display, error) {
	if opts == nil {
		return nil, errors.New("bgfx: nil options")
	}
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("bgfx: invalid dimensions %dx%d", opts.W, opts.H)
	}
	if opts.W > 0xFFFF || opts.H > 0xFFFF {
		return nil, fmt.Errorf("bgfx: dimensions %dx%d exceed 16 bits", opts.W, opts.H)
	}
	if opts.Font != nil {
		return nil, ErrCustomFont
	}

	packing := opts.Packing
	if packing == (Packing{}) {
		packing = PackPages
	}
	if packing.X <= 0 || packing.Y <= 0 {
		return nil, fmt.Errorf("bgfx: invalid packing %dx%d", packing.X, packing.Y)
	}

	if opts.Sink != nil {
		if need := opts.Sink.minLen(opts.W, opts.H, packing); opts.Sink.size() < need {
			return nil, fmt.Errorf("%w: %s needs %d units, got %d", ErrBufferSize, opts.Sink.Scheme(), need, opts.Sink.size())
		}
	}

	d := &Display{
		w:         opts.W,
		h:         opts.H,
		packing:   packing,
		sink:      opts.Sink,
		palette:   opts.Palette,
		strict:    opts.Strict,
		textColor: opts.TextColor,
		textBg:    opts.TextBgColor,
		textSizeX: 1,
		textSizeY: 1,
		cp437:     opts.CP437,
	}
	d.SetTextSize(opts.TextSizeX, opts.TextSizeY)
	d.SetRotation(opts.Rotation)
	return d, nil
}

// SetRotation sets the rotation (reduced modulo 4) and recomputes the logical
// dimensions.
func (d *Display) SetRotation(r Rotation) {
	d.rotation = r & 3
	switch d.rotation {
	case Rotate0, Rotate180:
		d.width, d.height = d.w, d.h
	case Rotate90, Rotate270:
		d.width, d.height = d.h, d.w
	}
}

// Rotation returns the current rotation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// Width returns the logical width.
func (d *Display) Width() int {
	return d.width
}

// Height returns the logical height.
func (d *Display) Height() int {
	return d.height
}

// Bounds returns the logical drawing area.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// PhysicalBounds returns the rotation-independent hardware area.
func (d *Display) PhysicalBounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

// Scheme returns the pixel encoding of the sink.
func (d *Display) Scheme() ColorScheme {
	if d.sink == nil {
		return Monochromatic
	}
	return d.sink.Scheme()
}

// Err returns the first out-of-bounds write recorded since the last ClearErr.
// It is always nil when the Display is not strict.
func (d *Display) Err() error {
	return d.err
}

// ClearErr forgets the recorded error.
func (d *Display) ClearErr() {
	d.err = nil
}

// String returns a string representation of the display.
func (d *Display) String() string {
	return fmt.Sprintf("bgfx.Display{%dx%d %s rot=%d}", d.w, d.h, d.Scheme(), d.rotation)
}
