package ssd1306

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/bgfx/framebuf"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultAddr is the I²C address of most SSD1306 modules. Some use 0x3D.
const DefaultAddr = 0x3C

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	Rotated bool // 180° rotation

	// Optional hardware reset pin
	RST gpio.PinIO

	// I²C address (default: DefaultAddr). Ignored by NewSPI.
	Addr uint16
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut // nil on I²C, where a control byte selects data or command
	rst gpio.PinIO

	rect   image.Rectangle
	buffer []byte         // Last frame sent, one byte per column per page
	next   *framebuf.Mono // Lazily allocated by Draw

	halted bool
}

// NewSPI creates a new SSD1306 device connected via 4-wire SPI.
//
// The SPI port is configured for 8MHz, Mode0, 8-bit transfers. opts can be nil
// to use defaults (128x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: dc pin is required")
	}
	opts, err := validate(opts)
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return newDev(c, dc, opts)
}

// NewI2C creates a new SSD1306 device connected via I²C. opts can be nil to
// use defaults (128x64 display at DefaultAddr).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	opts, err := validate(opts)
	if err != nil {
		return nil, err
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

func validate(opts *Opts) (*Opts, error) {
	o := Opts{W: 128, H: 64}
	if opts != nil {
		o = *opts
	}
	if o.W <= 0 || o.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if o.H <= 0 || o.H > 64 || o.H%8 != 0 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}
	return &o, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d := &Dev{
		c:      c,
		dc:     dc,
		rst:    opts.RST,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		buffer: make([]byte, framebuf.MonoLen(opts.W, opts.H, framebuf.VerticalPages)),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Segment remap and COM scan direction
	remap, scan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		remap, scan = 0xA0, 0xC0
	}

	// Sequential COM pins for 32 rows and fewer, alternative above
	comPins := byte(0x12)
	if opts.H <= 32 {
		comPins = 0x02
	}

	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,       // Start line 0
		0x8D, 0x14, // Charge pump on
		0x20, 0x00, // Horizontal addressing mode
		remap,
		scan,
		0xDA, comPins,
		0x81, 0xCF, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume to RAM content
		0xA6, // Normal display mode
		0x2E, // Deactivate scroll
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.writeFullFrame(d.buffer); err != nil {
		return err
	}

	return d.sendCommand(0xAF) // Display ON
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if d.dc == nil {
		return d.c.Tx(append([]byte{0x00}, cmds...), nil)
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if d.dc == nil {
		return d.c.Tx(append([]byte{0x40}, data...), nil)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect writes the columns [x0, x1] of pages [p0, p1].
func (d *Dev) writeRect(x0, x1, p0, p1 int, pixels []byte) error {
	commands := []byte{
		0x21, byte(x0), byte(x1), // Column address
		0x22, byte(p0), byte(p1), // Page address
	}
	if err := d.sendCommands(commands); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, d.rect.Dx()-1, 0, d.pages()-1, pixels)
}

func (d *Dev) pages() int {
	return d.rect.Dy() / 8
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in framebuf.VerticalPages
// layout, as produced by a bgfx.MonoBuffer with the default packing. The data
// must be exactly W*H/8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	if d.next != nil {
		copy(d.next.Pix, pixels)
	}
	return len(pixels), nil
}

// Draw draws an image onto the display, sending only the pages and columns
// that changed since the last frame.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if d.next == nil {
		d.next = framebuf.NewMono(d.rect, framebuf.VerticalPages)
		copy(d.next.Pix, d.buffer)
	}

	// Fast path: a full frame already in page layout
	if img, ok := src.(*framebuf.Mono); ok && img.Layout == framebuf.VerticalPages &&
		dst == d.rect && sp == (image.Point{}) && img.Rect == d.rect {
		copy(d.next.Pix, img.Pix)
	} else {
		draw.Draw(d.next, dst, src, sp, draw.Src)
	}

	minCol, maxCol, minPage, maxPage := d.calculateDiff()
	if minCol > maxCol {
		return nil
	}

	changed := d.extractRegion(minCol, maxCol, minPage, maxPage)
	if err := d.writeRect(minCol, maxCol, minPage, maxPage, changed); err != nil {
		return err
	}
	copy(d.buffer, d.next.Pix)
	return nil
}

// calculateDiff compares the last and next frames page by page. It returns
// (1, 0, 0, 0) if nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minPage, maxPage int) {
	width := d.rect.Dx()

	minCol, maxCol = width, -1
	minPage, maxPage = d.pages(), -1

	for p := 0; p < d.pages(); p++ {
		start := p * width
		last := d.buffer[start : start+width]
		next := d.next.Pix[start : start+width]
		if bytes.Equal(last, next) {
			continue
		}
		minPage = min(minPage, p)
		maxPage = max(maxPage, p)
		for x := range width {
			if last[x] != next[x] {
				minCol = min(minCol, x)
				maxCol = max(maxCol, x)
			}
		}
	}

	if maxCol < 0 {
		return 1, 0, 0, 0
	}
	return minCol, maxCol, minPage, maxPage
}

// extractRegion copies the bytes of a column and page range out of the next
// frame.
func (d *Dev) extractRegion(minCol, maxCol, minPage, maxPage int) []byte {
	width := d.rect.Dx()
	n := maxCol - minCol + 1

	result := make([]byte, 0, n*(maxPage-minPage+1))
	for p := minPage; p <= maxPage; p++ {
		start := p*width + minCol
		result = append(result, d.next.Pix[start:start+n]...)
	}
	return result
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt turns the display off. Further calls fail until a new Dev is created.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed is the number of frames between scroll steps.
type ScrollSpeed byte

const (
	// Scroll step intervals (in display refresh cycles)
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts scrolling pages [startPage, endPage] continuously.
// If right is true, the content moves right; otherwise left.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if int(startPage) >= d.pages() || int(endPage) >= d.pages() || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}

	scrollCmd := byte(0x26) // Left
	if right {
		scrollCmd = 0x27 // Right
	}

	return d.sendCommands([]byte{
		0x2E, // Deactivate scroll before reconfiguring
		scrollCmd,
		0x00, // Dummy byte
		startPage,
		byte(speed),
		endPage,
		0x00, 0xFF, // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops scrolling and rewrites the last frame, since scrolling
// shifts the RAM content.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if err := d.sendCommand(0x2E); err != nil {
		return err
	}
	return d.writeFullFrame(d.buffer)
}
