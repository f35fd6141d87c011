package bgfx

// ColorScheme is the pixel encoding a sink expects.
type ColorScheme uint8

// Supported color schemes.
const (
	Monochromatic ColorScheme = iota // 1 bit per pixel, packed
	Indexed8                         // 1 byte per pixel, palette index or gray level
	Direct16                         // 1 uint16 per pixel, typically RGB 5-6-5
)

func (c ColorScheme) String() string {
	switch c {
	case Monochromatic:
		return "mono"
	case Indexed8:
		return "indexed8"
	case Direct16:
		return "direct16"
	default:
		return "unknown"
	}
}

// PixelFunc writes one physical pixel on a device that streams pixels instead
// of exposing memory.
type PixelFunc func(x, y, color uint16)

// Sink is the final destination of a pixel write.
//
// A Sink is either a callback (Callback) or a caller-owned buffer
// (MonoBuffer, Indexed8Buffer, Direct16Buffer). The set is closed.
type Sink interface {
	// Scheme returns the pixel encoding.
	Scheme() ColorScheme

	put(d *Display, x, y int, color uint16)
	size() int
	minLen(w, h int, p Packing) int
}

// Callback returns a Sink that forwards every pixel to fn, after rotation.
// Colors are passed through unchanged. It returns nil if fn is nil.
func Callback(fn PixelFunc) Sink {
	if fn == nil {
		return nil
	}
	return callbackSink{fn: fn}
}

// MonoBuffer returns a Sink writing 1 bit per pixel into buf, laid out
// according to Opts.Packing.
func MonoBuffer(buf []byte) Sink {
	return monoSink(buf)
}

// Indexed8Buffer returns a Sink writing the low byte of each color into buf,
// row-major with stride W.
func Indexed8Buffer(buf []byte) Sink {
	return indexed8Sink(buf)
}

// Direct16Buffer returns a Sink writing each color into buf, row-major with
// stride W.
func Direct16Buffer(buf []uint16) Sink {
	return direct16Sink(buf)
}

type callbackSink struct {
	fn PixelFunc
}

func (callbackSink) Scheme() ColorScheme { return Direct16 }

func (s callbackSink) put(_ *Display, x, y int, color uint16) {
	s.fn(uint16(x), uint16(y), color)
}

func (callbackSink) size() int { return 0 }
func (callbackSink) minLen(int, int, Packing) int { return 0 }

type monoSink []byte

func (monoSink) Scheme() ColorScheme { return Monochromatic }

// put sets or clears one bit. Vertical packing swaps the axes so that a byte
// covers 8 rows of one column.
func (s monoSink) put(d *Display, x, y int, color uint16) {
	if d.packing.vertical() {
		x, y = y, x
	}
	i := (x/8)*d.w + y
	if color != 0 {
		s[i] |= 1 << uint(x&7)
	} else {
		s[i] &^= 1 << uint(x&7)
	}
}

func (s monoSink) size() int { return len(s) }

// minLen is one past the highest byte put can address.
func (monoSink) minLen(w, h int, p Packing) int {
	if p.vertical() {
		return ((h-1)/8)*w + w
	}
	return ((w-1)/8)*w + h
}

type indexed8Sink []byte

func (indexed8Sink) Scheme() ColorScheme { return Indexed8 }

func (s indexed8Sink) put(d *Display, x, y int, color uint16) {
	s[x+y*d.w] = byte(color & 0xFF)
}

func (s indexed8Sink) size() int { return len(s) }
func (indexed8Sink) minLen(w, h int, _ Packing) int { return w * h }

type direct16Sink []uint16

func (direct16Sink) Scheme() ColorScheme { return Direct16 }

func (s direct16Sink) put(d *Display, x, y int, color uint16) {
	s[x+y*d.w] = color
}

func (s direct16Sink) size() int { return len(s) }
func (direct16Sink) minLen(w, h int, _ Packing) int { return w * h }
