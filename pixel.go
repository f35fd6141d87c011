package bgfx

import "fmt"

// DrawPixel sets the pixel at logical (x, y). Pixels outside the logical
// bounds are dropped.
func (d *Display) DrawPixel(x, y int, color uint16) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		if d.strict && d.err == nil {
			d.err = fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, d.width, d.height)
		}
		return
	}
	if d.sink == nil {
		return
	}
	x, y = d.physical(x, y)
	d.sink.put(d, x, y, color)
}

// physical maps in-bounds logical coordinates to hardware coordinates.
func (d *Display) physical(x, y int) (int, int) {
	switch d.rotation {
	case Rotate90:
		return d.w - 1 - y, x
	case Rotate180:
		return d.w - 1 - x, d.h - 1 - y
	case Rotate270:
		return y, d.h - 1 - x
	}
	return x, y
}
