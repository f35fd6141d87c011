package bgfx

import (
	"errors"
	"image"
	"testing"
)

func TestDrawPixelRotation(t *testing.T) {
	tests := []struct {
		name     string
		rotation Rotation
		x, y     int
		want     image.Point
	}{
		{"rot0 origin", Rotate0, 0, 0, image.Pt(0, 0)},
		{"rot0 corner", Rotate0, 127, 63, image.Pt(127, 63)},
		{"rot90 origin", Rotate90, 0, 0, image.Pt(127, 0)},
		{"rot90 far corner", Rotate90, 63, 127, image.Pt(0, 63)},
		{"rot90 point", Rotate90, 10, 20, image.Pt(107, 10)},
		{"rot180 origin", Rotate180, 0, 0, image.Pt(127, 63)},
		{"rot180 point", Rotate180, 10, 20, image.Pt(117, 43)},
		{"rot270 origin", Rotate270, 0, 0, image.Pt(0, 63)},
		{"rot270 point", Rotate270, 10, 20, image.Pt(20, 53)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newRecorded(t, 128, 64)
			d.SetRotation(tt.rotation)
			d.DrawPixel(tt.x, tt.y, 1)
			if len(rec.order) != 1 {
				t.Fatalf("got %d writes, want 1", len(rec.order))
			}
			if rec.order[0] != tt.want {
				t.Errorf("DrawPixel(%d, %d) landed on %v, want %v", tt.x, tt.y, rec.order[0], tt.want)
			}
		})
	}
}

func TestRotationIsBijection(t *testing.T) {
	for r := Rotate0; r <= Rotate270; r++ {
		d, rec := newRecorded(t, 7, 5)
		d.SetRotation(r)
		for y := 0; y < d.Height(); y++ {
			for x := 0; x < d.Width(); x++ {
				d.DrawPixel(x, y, 1)
			}
		}
		if len(rec.hits) != 35 || rec.maxHits() != 1 {
			t.Errorf("rotation %d: %d distinct pixels, max hits %d, want 35 and 1", r, len(rec.hits), rec.maxHits())
		}
		for p := range rec.hits {
			if !p.In(image.Rect(0, 0, 7, 5)) {
				t.Errorf("rotation %d: %v outside the panel", r, p)
			}
		}
	}
}

func TestRotationInverses(t *testing.T) {
	d, err := New(&Opts{W: 9, H: 6})
	if err != nil {
		t.Fatal(err)
	}
	d.SetRotation(Rotate180)
	for y := 0; y < 6; y++ {
		for x := 0; x < 9; x++ {
			px, py := d.physical(x, y)
			if gx, gy := d.physical(px, py); gx != x || gy != y {
				t.Errorf("rotation 2 applied twice to (%d,%d) gave (%d,%d)", x, y, gx, gy)
			}
		}
	}

	sq, err := New(&Opts{W: 8, H: 8})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq.SetRotation(Rotate90)
			px, py := sq.physical(x, y)
			sq.SetRotation(Rotate270)
			if gx, gy := sq.physical(px, py); gx != x || gy != y {
				t.Errorf("rotation 1 then 3 mapped (%d,%d) to (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

func TestDrawPixelClipping(t *testing.T) {
	d, rec := newRecorded(t, 16, 8)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {16, 0}, {0, 8}, {-100, -100}, {1 << 20, 3}} {
		d.DrawPixel(p.X, p.Y, 1)
	}
	if len(rec.order) != 0 {
		t.Errorf("out-of-bounds pixels reached the sink: %v", rec.order)
	}
	if d.Err() != nil {
		t.Errorf("Err() = %v on a permissive display", d.Err())
	}

	d.SetRotation(Rotate90)
	d.DrawPixel(10, 0, 1) // x is past the logical width of 8
	if len(rec.order) != 0 {
		t.Errorf("pixel outside the rotated bounds reached the sink: %v", rec.order)
	}
}

func TestStrictErr(t *testing.T) {
	rec := newRecorder()
	d, err := New(&Opts{W: 16, H: 8, Sink: Callback(rec.set), Strict: true})
	if err != nil {
		t.Fatal(err)
	}

	d.DrawPixel(3, 3, 1)
	if d.Err() != nil {
		t.Fatalf("Err() = %v after an in-bounds pixel", d.Err())
	}

	d.DrawPixel(20, 3, 1)
	d.DrawPixel(-1, -1, 1)
	if !errors.Is(d.Err(), ErrOutOfBounds) {
		t.Fatalf("Err() = %v, want ErrOutOfBounds", d.Err())
	}
	want := "bgfx: pixel out of bounds: (20,3) outside 16x8"
	if d.Err().Error() != want {
		t.Errorf("Err() = %q, want the first failure %q", d.Err(), want)
	}
	if len(rec.order) != 1 {
		t.Errorf("got %d writes, want 1", len(rec.order))
	}

	d.ClearErr()
	if d.Err() != nil {
		t.Errorf("Err() = %v after ClearErr", d.Err())
	}
}

func TestDrawPixelNilSink(t *testing.T) {
	d, err := New(&Opts{W: 4, H: 4, Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	d.DrawPixel(1, 1, 1)
	d.FillCircle(2, 2, 3, 1)
	d.DrawString(0, 0, "ok", 1, 0, 1, 1)
	if !errors.Is(d.Err(), ErrOutOfBounds) {
		t.Errorf("Err() = %v, want bounds checks to run without a sink", d.Err())
	}
}
