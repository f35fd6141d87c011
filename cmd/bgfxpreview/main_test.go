package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/flavioheleno/bgfx"
	"github.com/flavioheleno/bgfx/internal/scene"
)

var white = scene.Palette{Fg: 0xFFFF, Bg: 0x0000}

func TestRender(t *testing.T) {
	pg, _ := scene.ByName("rects")
	img, err := render(pg, &bgfx.Opts{W: 128, H: 64}, white, 2)
	if err != nil {
		t.Fatal(err)
	}

	if img.Bounds() != image.Rect(0, 0, 256, 128) {
		t.Fatalf("Bounds() = %v, want 256x128", img.Bounds())
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{0, 0, 0, 0xFF}},
		{102, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{103, 1, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{50, 64, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}}, // left edge of the outline
		{52, 64, color.RGBA{0, 0, 0, 0xFF}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("RGBAAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderRotated(t *testing.T) {
	pg, _ := scene.ByName("lines")
	img, err := render(pg, &bgfx.Opts{W: 128, H: 64, Rotation: bgfx.Rotate180}, white, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The frame drawn one pixel in stays one pixel in when turned.
	if got := img.RGBAAt(126, 30); got.R != 0xFF {
		t.Errorf("RGBAAt(126, 30) = %v, want the frame", got)
	}
}

func TestWritePNG(t *testing.T) {
	pg, _ := scene.ByName("qr")
	path := filepath.Join(t.TempDir(), "qr.png")
	if err := writePNG(path, pg, &bgfx.Opts{W: 128, H: 64}, white, 3); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 384, 192) {
		t.Errorf("Bounds() = %v, want 384x192", img.Bounds())
	}
}

func TestRenderErrors(t *testing.T) {
	pg, _ := scene.ByName("qr")
	if _, err := render(pg, &bgfx.Opts{W: 16, H: 16}, white, 1); err == nil {
		t.Error("render() of a QR code on 16x16 succeeded")
	}
	if _, err := render(pg, &bgfx.Opts{W: 0, H: 16}, white, 1); err == nil {
		t.Error("render() with zero width succeeded")
	}
}
