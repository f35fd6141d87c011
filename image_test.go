package bgfx

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/flavioheleno/bgfx/framebuf"
)

// fakeDrawer is a display.Drawer copying whatever it is given.
type fakeDrawer struct {
	bounds image.Rectangle
	got    *image.RGBA
	draws  int
}

func (f *fakeDrawer) String() string { return "fake" }
func (f *fakeDrawer) Halt() error { return nil }
func (f *fakeDrawer) ColorModel() color.Model { return color.RGBAModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return f.bounds }
func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	f.draws++
	f.got = image.NewRGBA(f.bounds)
	draw.Draw(f.got, r, src, sp, draw.Src)
	return nil
}

func TestFlush(t *testing.T) {
	buf := make([]byte, 16*2)
	d, err := New(&Opts{W: 16, H: 16, Sink: MonoBuffer(buf), Rotation: Rotate90})
	if err != nil {
		t.Fatal(err)
	}
	d.DrawPixel(0, 0, 1)

	drv := &fakeDrawer{bounds: image.Rect(0, 0, 16, 16)}
	if err := d.Flush(drv); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if drv.draws != 1 {
		t.Fatalf("Draw called %d times, want 1", drv.draws)
	}
	if got := drv.got.RGBAAt(15, 0); got != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("physical (15, 0) = %v, want white", got)
	}
	if got := drv.got.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Errorf("physical (0, 0) = %v, want black", got)
	}
}

func TestFlushWithoutBuffer(t *testing.T) {
	d, _ := newRecorded(t, 8, 8)
	if err := d.Flush(&fakeDrawer{bounds: image.Rect(0, 0, 8, 8)}); err == nil {
		t.Error("Flush() of a callback sink succeeded")
	}
	if d.Image() != nil {
		t.Error("Image() of a callback sink is not nil")
	}
}

func TestImagePalette(t *testing.T) {
	pal := color.Palette{color.Black, color.RGBA{0xFF, 0, 0, 0xFF}}
	d, err := New(&Opts{W: 2, H: 1, Sink: Indexed8Buffer(make([]byte, 2)), Palette: pal})
	if err != nil {
		t.Fatal(err)
	}
	d.DrawPixel(1, 0, 1)

	img, ok := d.Image().(*framebuf.Indexed8)
	if !ok {
		t.Fatalf("Image() = %T, want *framebuf.Indexed8", d.Image())
	}
	if got := img.At(1, 0); got != pal[1] {
		t.Errorf("At(1, 0) = %v, want %v", got, pal[1])
	}
}
