package framebuf

import (
	"image"
	"image/color"
	"testing"
)

func TestPackRGB565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0x00, 0x00, 0x00, 0x0000},
		{"white", 0xFF, 0xFF, 0xFF, 0xFFFF},
		{"red", 0xFF, 0x00, 0x00, 0xF800},
		{"green", 0x00, 0xFF, 0x00, 0x07E0},
		{"blue", 0x00, 0x00, 0xFF, 0x001F},
		{"low bits dropped", 0x07, 0x03, 0x07, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackRGB565(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("PackRGB565(%#x, %#x, %#x) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
			if got := RGB565Of(color.RGBA{tt.r, tt.g, tt.b, 0xFF}); got != tt.want {
				t.Errorf("RGB565Of = %#04x, want %#04x", got, tt.want)
			}
		})
	}
}

func TestUnpackRGB565(t *testing.T) {
	tests := []struct {
		v    uint16
		want color.RGBA
	}{
		{0x0000, color.RGBA{0, 0, 0, 0xFF}},
		{0xFFFF, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{0xF800, color.RGBA{0xFF, 0, 0, 0xFF}},
		{0x07E0, color.RGBA{0, 0xFF, 0, 0xFF}},
		{0x001F, color.RGBA{0, 0, 0xFF, 0xFF}},
		{0x8410, color.RGBA{0x84, 0x82, 0x84, 0xFF}},
	}
	for _, tt := range tests {
		if got := UnpackRGB565(tt.v); got != tt.want {
			t.Errorf("UnpackRGB565(%#04x) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestParseRGB565(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"#ff0000", 0xF800, false},
		{"#00ff00", 0x07E0, false},
		{"#ffffff", 0xFFFF, false},
		{"#000000", 0x0000, false},
		{"red", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGB565(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGB565(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRGB565(%q) = %#04x, want %#04x", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGB565SetGet(t *testing.T) {
	img := NewRGB565(image.Rect(0, 0, 3, 2))

	img.Set(0, 0, color.White)
	img.SetRaw(2, 1, 0xF800)

	if img.Pix[0] != 0xFFFF {
		t.Errorf("Pix[0] = %#04x, want 0xffff", img.Pix[0])
	}
	if img.Pix[5] != 0xF800 {
		t.Errorf("Pix[5] = %#04x, want 0xf800 (row-major)", img.Pix[5])
	}
	if got := img.At(2, 1); got != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Errorf("At(2, 1) = %v, want red", got)
	}
	if got := img.RawAt(3, 0); got != 0 {
		t.Errorf("RawAt(3, 0) = %#04x, want 0 out of bounds", got)
	}
	if img.ColorModel() != RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}
}

func TestRGB565ModelRounds(t *testing.T) {
	got := RGB565Model.Convert(color.RGBA{0x87, 0x87, 0x87, 0xFF}).(color.RGBA)
	want := color.RGBA{0x84, 0x86, 0x84, 0xFF}
	if got != want {
		t.Errorf("Convert = %v, want %v", got, want)
	}
}
