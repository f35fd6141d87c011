package bgfx

// DrawLine draws a line from (x0, y0) to (x1, y1), both ends included.
//
// Exactly max(|dx|, |dy|)+1 pixels are plotted, one per column (or per row
// for steep lines), and the pixel set does not depend on the direction.
func (d *Display) DrawLine(x0, y0, x1, y1 int, color uint16) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			d.DrawPixel(y0, x0, color)
		} else {
			d.DrawPixel(x0, y0, color)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// hline draws w pixels to the right of (x, y).
func (d *Display) hline(x, y, w int, color uint16) {
	if w > 0 {
		d.DrawLine(x, y, x+w-1, y, color)
	}
}

// vline draws h pixels below (x, y).
func (d *Display) vline(x, y, h int, color uint16) {
	if h > 0 {
		d.DrawLine(x, y, x, y+h-1, color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
