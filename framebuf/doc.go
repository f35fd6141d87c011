// Package framebuf provides image.Image views over the raw pixel buffers
// written by bgfx.
//
// Three encodings are supported, matching the bgfx color schemes:
//
// - Mono: 1 bit per pixel, either in SSD1306 style vertical pages or in
// horizontal groups of 8 pixels
// - Indexed8: 1 byte per pixel, a gray level or an index into a palette
// - RGB565: 1 uint16 per pixel, 5 bits red, 6 bits green, 5 bits blue
//
// Memory layout of a 4×16 Mono image with VerticalPages:
//
//	Byte:   0  1  2  3    (rows 0-7, bit n = row n)
//	        4  5  6  7    (rows 8-15)
//
// The views share the buffer they wrap, so they can be handed to draw.Draw,
// image/png or any periph.io display.Drawer without copying:
//
//	buf := make([]byte, 128*64/8)
//	img := &framebuf.Mono{Pix: buf, Rect: image.Rect(0, 0, 128, 64)}
//	img.SetBit(10, 20, true)
//	png.Encode(w, img)
package framebuf
