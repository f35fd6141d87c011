// Package ssd1306 controls a SSD1306 monochrome OLED display via SPI or I²C.
//
// The SSD1306 drives up to 128x64 pixels. Its RAM is split into pages of 8
// rows; each byte holds one column of a page, least significant bit on top.
// This is the layout of framebuf.VerticalPages and of a bgfx.MonoBuffer with
// the default packing, so a frame drawn with bgfx can be sent unchanged:
//
//	buf := make([]byte, 128*64/8)
//	d, _ := bgfx.New(&bgfx.Opts{W: 128, H: 64, Sink: bgfx.MonoBuffer(buf)})
//	d.DrawString(0, 0, "Hello world", 1, 0, 1, 1)
//	dev.Write(buf)
//
// # Hardware Connection
//
// I²C modules need only the bus:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock
//	SDA         → I²C Data
//
// SPI modules also need a Data/Command GPIO and optionally a reset GPIO:
//
//	D0/CLK      → SPI Clock (SCLK)
//	D1/MOSI     → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → Optional: GPIO for hardware reset
//
// # Drawing Modes
//
// Write sends a full frame in page layout. Draw accepts any image.Image and
// only sends the columns and pages that changed since the previous frame.
//
// This driver implements the display.Drawer interface from periph.io.
package ssd1306
