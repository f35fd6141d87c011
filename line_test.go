package bgfx

import (
	"image"
	"math/rand"
	"testing"
)

func TestDrawLineDiagonal(t *testing.T) {
	d, rec := newRecorded(t, 8, 8)
	d.DrawLine(0, 0, 4, 4, 1)

	want := []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	if len(rec.order) != len(want) {
		t.Fatalf("got %d pixels %v, want %v", len(rec.order), rec.order, want)
	}
	for i, p := range want {
		if rec.order[i] != p {
			t.Errorf("pixel %d = %v, want %v", i, rec.order[i], p)
		}
	}
}

func TestDrawLineShapes(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"single point", 3, 3, 3, 3, []image.Point{{3, 3}}},
		{"horizontal", 1, 2, 4, 2, []image.Point{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"vertical reversed", 5, 4, 5, 1, []image.Point{{5, 1}, {5, 2}, {5, 3}, {5, 4}}},
		{"shallow", 0, 0, 4, 1, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newRecorded(t, 8, 8)
			d.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, 1)
			if len(rec.hits) != len(tt.want) {
				t.Fatalf("got %v, want %v", rec.order, tt.want)
			}
			for _, p := range tt.want {
				if rec.hits[p] != 1 {
					t.Errorf("pixel %v drawn %d times, want 1", p, rec.hits[p])
				}
			}
		})
	}
}

func TestDrawLineProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		x0, y0 := rnd.Intn(64), rnd.Intn(64)
		x1, y1 := rnd.Intn(64), rnd.Intn(64)

		d, fwd := newRecorded(t, 64, 64)
		d.DrawLine(x0, y0, x1, y1, 1)

		n := max(abs(x1-x0), abs(y1-y0)) + 1
		if len(fwd.order) != n || len(fwd.hits) != n {
			t.Fatalf("line (%d,%d)-(%d,%d): %d writes, %d distinct, want %d", x0, y0, x1, y1, len(fwd.order), len(fwd.hits), n)
		}
		for j := 1; j < len(fwd.order); j++ {
			a, b := fwd.order[j-1], fwd.order[j]
			if abs(a.X-b.X) > 1 || abs(a.Y-b.Y) > 1 {
				t.Fatalf("line (%d,%d)-(%d,%d): gap between %v and %v", x0, y0, x1, y1, a, b)
			}
		}

		r, rev := newRecorded(t, 64, 64)
		r.DrawLine(x1, y1, x0, y0, 1)
		for p := range fwd.hits {
			if rev.hits[p] != 1 {
				t.Fatalf("line (%d,%d)-(%d,%d): %v missing when drawn backwards", x0, y0, x1, y1, p)
			}
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	d, rec := newRecorded(t, 8, 8)
	d.DrawLine(-4, 2, 11, 2, 1)
	if len(rec.hits) != 8 {
		t.Errorf("got %d visible pixels, want 8", len(rec.hits))
	}
}
