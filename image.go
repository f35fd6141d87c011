package bgfx

import (
	"errors"
	"image"

	"github.com/flavioheleno/bgfx/framebuf"
	"periph.io/x/conn/v3/display"
)

// Image returns a view of the sink buffer in physical orientation. The view
// shares memory with the buffer. It returns nil for callback and nil sinks.
func (d *Display) Image() image.Image {
	r := d.PhysicalBounds()
	switch s := d.sink.(type) {
	case monoSink:
		layout := framebuf.HorizontalGroups
		if d.packing.vertical() {
			layout = framebuf.VerticalPages
		}
		return &framebuf.Mono{Pix: s, Rect: r, Layout: layout}
	case indexed8Sink:
		return &framebuf.Indexed8{Pix: s, Stride: d.w, Rect: r, Palette: d.palette}
	case direct16Sink:
		return &framebuf.RGB565{Pix: s, Stride: d.w, Rect: r}
	}
	return nil
}

// Flush draws the sink buffer onto drv, e.g. a periph.io device driver.
func (d *Display) Flush(drv display.Drawer) error {
	img := d.Image()
	if img == nil {
		return errors.New("bgfx: sink has no buffer to flush")
	}
	return drv.Draw(drv.Bounds(), img, image.Point{})
}
