package scene

import (
	"testing"

	"github.com/flavioheleno/bgfx"
	"github.com/skip2/go-qrcode"
)

func newDisplay(t *testing.T, w, h int) (*bgfx.Display, []uint16) {
	t.Helper()
	buf := make([]uint16, w*h)
	d, err := bgfx.New(&bgfx.Opts{W: w, H: h, Sink: bgfx.Direct16Buffer(buf)})
	if err != nil {
		t.Fatal(err)
	}
	return d, buf
}

func TestPages(t *testing.T) {
	p := Palette{Fg: 0xFFFF, Bg: 0x0010}
	for _, pg := range Pages() {
		t.Run(pg.Name, func(t *testing.T) {
			d, buf := newDisplay(t, 128, 64)
			if err := pg.Draw(d, p); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			fg, bg := 0, 0
			for _, v := range buf {
				switch v {
				case p.Fg:
					fg++
				case p.Bg:
					bg++
				default:
					t.Fatalf("pixel color %#04x outside the palette", v)
				}
			}
			if fg == 0 || bg == 0 {
				t.Errorf("page has %d foreground and %d background pixels", fg, bg)
			}
		})
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("circles"); !ok {
		t.Error("ByName(circles) not found")
	}
	if _, ok := ByName("nope"); ok {
		t.Error("ByName(nope) found")
	}
}

func TestLinesInverted(t *testing.T) {
	d, buf := newDisplay(t, 128, 64)
	pg, _ := ByName("lines-inverted")
	if err := pg.Draw(d, Mono); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0 || buf[5] != 1 {
		t.Errorf("diagonal start = %d, background = %d, want 0 and 1", buf[0], buf[5])
	}
}

func TestSine(t *testing.T) {
	for _, frame := range []int{0, 2, 37} {
		d, buf := newDisplay(t, 128, 64)
		d.Clear(1)
		Sine(d, Mono, frame)

		for x := 0; x < 128; x++ {
			want := SineRow(x, frame)
			if want < 25 || want > 49 {
				t.Fatalf("SineRow(%d, %d) = %d outside the band", x, frame, want)
			}
			for y := 25; y < 50; y++ {
				if got, on := buf[y*128+x], y == want; (got == 1) != on {
					t.Errorf("frame %d: pixel (%d, %d) = %d, want plotted %v", frame, x, y, got, on)
				}
			}
			if buf[24*128+x] != 1 || buf[50*128+x] != 1 {
				t.Errorf("frame %d: column %d cleared outside the band", frame, x)
			}
		}
	}
}

func TestQR(t *testing.T) {
	const content = "bgfx"
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		t.Fatal(err)
	}
	bitmap := q.Bitmap()
	n := len(bitmap)
	scale := 64 / n
	ox, oy := (128-n*scale)/2, (64-n*scale)/2

	d, buf := newDisplay(t, 128, 64)
	if err := QR(d, Mono, content); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			want := uint16(1)
			if bitmap[y][x] {
				want = 0
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					px, py := ox+x*scale+dx, oy+y*scale+dy
					if got := buf[py*128+px]; got != want {
						t.Fatalf("module (%d, %d) pixel (%d, %d) = %d, want %d", x, y, px, py, got, want)
					}
				}
			}
		}
	}
	if buf[0] != 0 {
		t.Errorf("outside the code = %d, want background", buf[0])
	}
}

func TestQRTooLarge(t *testing.T) {
	d, _ := newDisplay(t, 16, 16)
	if err := QR(d, Mono, QRContent); err == nil {
		t.Error("QR() on a 16x16 display succeeded")
	}
}
