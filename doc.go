// Package bgfx draws 2D primitives onto small displays.
//
// It rasterizes pixels, lines, circles, rectangles with square or rounded
// corners, triangles and 5x7 bitmap text. All drawing funnels through
// DrawPixel, which clips against the logical bounds and applies the display
// rotation before handing the pixel to a Sink.
//
// # Sinks
//
// A Display writes to exactly one Sink, chosen at construction:
//
//	Callback(fn)         // fn(x, y, color) per pixel, e.g. a streaming TFT
//	MonoBuffer(buf)      // 1 bit per pixel, packed per Opts.Packing
//	Indexed8Buffer(buf)  // 1 byte per pixel, low byte of the color
//	Direct16Buffer(buf)  // 1 uint16 per pixel, usually RGB 5-6-5
//
// Buffers are owned by the caller and are never resized. New checks that they
// are large enough and returns ErrBufferSize otherwise.
//
// Monochrome buffers default to PackPages: each byte holds 8 vertical pixels
// of one column, the layout used by SSD1306 class controllers. PackColumns
// stores 8 horizontal pixels per byte instead.
//
// # Basic Usage
//
//	buf := make([]byte, 128*64/8)
//	d, err := bgfx.New(&bgfx.Opts{
//		W:    128,
//		H:    64,
//		Sink: bgfx.MonoBuffer(buf),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	d.DrawRect(0, 0, 128, 64, 1)
//	d.FillCircle(64, 32, 10, 1)
//	d.DrawString(4, 4, "Hello world", 1, 1, 1, 1)
//
// The buffer can then be sent to the controller as is, or wrapped into an
// image.Image with Display.Image and drawn onto any periph.io display.Drawer
// with Display.Flush.
//
// # Rotation
//
// SetRotation turns the coordinate system by multiples of 90°. Width and
// Height report the logical size, which swaps for odd rotations. The physical
// dimensions never change.
//
// # Text
//
// The built-in font has 256 glyphs of 5x7 pixels drawn in a 6x8 cell. When the
// background color differs from the foreground the whole cell is painted.
// DrawText accepts UTF-8 and encodes it to code page 437 first.
//
// By default codes from 176 up are shifted by one to match the classic glyph
// order; SetCP437(true) selects the exact code page 437 order.
//
// # Errors
//
// Pixels outside the logical bounds are silently dropped. A Display built
// with Opts.Strict records the first one, retrievable with Err:
//
//	d.DrawLine(0, 0, 500, 500, 1)
//	if errors.Is(d.Err(), bgfx.ErrOutOfBounds) {
//		// part of the line was clipped
//	}
//
// A Display is not safe for concurrent use.
package bgfx
