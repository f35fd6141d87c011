package bgfx

// Corner masks for the quarter-circle helpers.
const (
	cornerTopLeft     = 0x1
	cornerTopRight    = 0x2
	cornerBottomRight = 0x4
	cornerBottomLeft  = 0x8

	// Fill helper halves.
	sideRight = 0x1
	sideLeft  = 0x2
)

// DrawCircle draws the outline of a circle centered on (x0, y0).
func (d *Display) DrawCircle(x0, y0, r int, color uint16) {
	if r < 0 {
		return
	}
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	d.DrawPixel(x0, y0+r, color)
	d.DrawPixel(x0, y0-r, color)
	d.DrawPixel(x0+r, y0, color)
	d.DrawPixel(x0-r, y0, color)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.DrawPixel(x0+x, y0+y, color)
		d.DrawPixel(x0-x, y0+y, color)
		d.DrawPixel(x0+x, y0-y, color)
		d.DrawPixel(x0-x, y0-y, color)
		d.DrawPixel(x0+y, y0+x, color)
		d.DrawPixel(x0-y, y0+x, color)
		d.DrawPixel(x0+y, y0-x, color)
		d.DrawPixel(x0-y, y0-x, color)
	}
}

// FillCircle draws a filled circle centered on (x0, y0).
func (d *Display) FillCircle(x0, y0, r int, color uint16) {
	if r < 0 {
		return
	}
	d.DrawLine(x0, y0-r, x0, y0+r, color)
	d.fillCircleHelper(x0, y0, r, sideRight|sideLeft, 0, color)
}

// drawCircleHelper draws the quarter arcs selected by corners.
func (d *Display) drawCircleHelper(x0, y0, r int, corners uint8, color uint16) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if corners&cornerBottomRight != 0 {
			d.DrawPixel(x0+x, y0+y, color)
			d.DrawPixel(x0+y, y0+x, color)
		}
		if corners&cornerTopRight != 0 {
			d.DrawPixel(x0+x, y0-y, color)
			d.DrawPixel(x0+y, y0-x, color)
		}
		if corners&cornerBottomLeft != 0 {
			d.DrawPixel(x0-y, y0+x, color)
			d.DrawPixel(x0-x, y0+y, color)
		}
		if corners&cornerTopLeft != 0 {
			d.DrawPixel(x0-y, y0-x, color)
			d.DrawPixel(x0-x, y0-y, color)
		}
	}
}

// fillCircleHelper fills the right and/or left half of a circle with vertical
// spans, each stretched down by delta rows. No pixel is drawn twice, which
// matters for sinks that XOR.
func (d *Display) fillCircleHelper(x0, y0, r int, sides uint8, delta int, color uint16) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r
	px := x
	py := y

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if x < y+1 {
			if sides&sideRight != 0 {
				d.DrawLine(x0+x, y0-y, x0+x, y0+y+delta, color)
			}
			if sides&sideLeft != 0 {
				d.DrawLine(x0-x, y0-y, x0-x, y0+y+delta, color)
			}
		}
		if y != py {
			if sides&sideRight != 0 {
				d.DrawLine(x0+py, y0-px, x0+py, y0+px+delta, color)
			}
			if sides&sideLeft != 0 {
				d.DrawLine(x0-py, y0-px, x0-py, y0+px+delta, color)
			}
			py = y
		}
		px = x
	}
}
