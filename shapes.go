package bgfx

// DrawRect draws the outline of a w×h rectangle with its top-left corner at
// (x, y).
func (d *Display) DrawRect(x, y, w, h int, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	d.DrawLine(x, y, x+w-1, y, color)
	d.DrawLine(x+w-1, y, x+w-1, y+h-1, color)
	d.DrawLine(x+w-1, y+h-1, x, y+h-1, color)
	d.DrawLine(x, y+h-1, x, y, color)
}

// FillRect fills a w×h rectangle with its top-left corner at (x, y).
func (d *Display) FillRect(x, y, w, h int, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := x; i < x+w; i++ {
		d.DrawLine(i, y, i, y+h-1, color)
	}
}

// Clear fills the whole logical area.
func (d *Display) Clear(color uint16) {
	d.FillRect(0, 0, d.width, d.height, color)
}

// DrawRoundRect draws the outline of a rectangle with corners of radius r.
// r is clamped to half the shorter side.
func (d *Display) DrawRoundRect(x, y, w, h, r int, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(w, h, r)

	d.hline(x+r, y, w-2*r, color)     // top
	d.hline(x+r, y+h-1, w-2*r, color) // bottom
	d.vline(x, y+r, h-2*r, color)     // left
	d.vline(x+w-1, y+r, h-2*r, color) // right

	d.drawCircleHelper(x+r, y+r, r, cornerTopLeft, color)
	d.drawCircleHelper(x+w-r-1, y+r, r, cornerTopRight, color)
	d.drawCircleHelper(x+w-r-1, y+h-r-1, r, cornerBottomRight, color)
	d.drawCircleHelper(x+r, y+h-r-1, r, cornerBottomLeft, color)
}

// FillRoundRect fills a rectangle with corners of radius r. r is clamped to
// half the shorter side.
func (d *Display) FillRoundRect(x, y, w, h, r int, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(w, h, r)

	d.FillRect(x+r, y, w-2*r, h, color)
	d.fillCircleHelper(x+w-r-1, y+r, r, sideRight, h-2*r-1, color)
	d.fillCircleHelper(x+r, y+r, r, sideLeft, h-2*r-1, color)
}

func clampRadius(w, h, r int) int {
	m := min(w, h) / 2
	if r > m {
		r = m
	}
	if r < 0 {
		r = 0
	}
	return r
}

// DrawTriangle draws the outline of a triangle, edges in vertex order.
func (d *Display) DrawTriangle(x0, y0, x1, y1, x2, y2 int, color uint16) {
	d.DrawLine(x0, y0, x1, y1, color)
	d.DrawLine(x1, y1, x2, y2, color)
	d.DrawLine(x2, y2, x0, y0, color)
}

// FillTriangle fills a triangle one scanline at a time.
func (d *Display) FillTriangle(x0, y0, x1, y1, x2, y2 int, color uint16) {
	// Sort by y so that y0 <= y1 <= y2.
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}
	if y1 > y2 {
		y2, y1 = y1, y2
		x2, x1 = x1, x2
	}
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}

	if y0 == y2 {
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		d.DrawLine(a, y0, b, y0, color)
		return
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	sa, sb := 0, 0

	// Upper half uses edges 0-1 and 0-2. A flat bottom (y1 == y2) includes
	// scanline y1 here and skips the lower loop; otherwise y1 belongs to the
	// lower half, which also keeps dy01 == 0 from being divided by.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.DrawLine(a, y, b, y, color)
	}

	// Lower half uses edges 1-2 and 0-2.
	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.DrawLine(a, y, b, y, color)
	}
}
