package bgfx

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Glyph cell of the built-in font, including the spacing column.
const (
	CharWidth  = 6
	CharHeight = 8
)

// Font is a proportional bitmap font in the Adafruit GFX layout.
//
// Proportional fonts are not rendered: New rejects an Opts carrying one with
// ErrCustomFont.
type Font struct {
	Bitmap   []byte
	Glyphs   []Glyph
	First    byte
	Last     byte
	YAdvance int
}

// Glyph describes one character of a Font.
type Glyph struct {
	BitmapOffset int
	Width        int
	Height       int
	XAdvance     int
	XOffset      int
	YOffset      int
}

// SetCursor moves the text cursor used by Write.
func (d *Display) SetCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
}

// Cursor returns the text cursor.
func (d *Display) Cursor() (x, y int) {
	return d.cursorX, d.cursorY
}

// SetTextColor sets the colors used by Write. A background equal to the
// foreground leaves the background untouched.
func (d *Display) SetTextColor(color, bg uint16) {
	d.textColor, d.textBg = color, bg
}

// SetTextSize sets the magnification used by Write. Values below 1 mean 1.
func (d *Display) SetTextSize(sizeX, sizeY int) {
	d.textSizeX = max(sizeX, 1)
	d.textSizeY = max(sizeY, 1)
}

// SetCP437 selects the code page 437 glyph order. When false, codes from 176
// up are shifted by one to match the classic table.
func (d *Display) SetCP437(on bool) {
	d.cp437 = on
}

// DrawChar draws glyph c with its top-left corner at (x, y), each font pixel
// magnified to sizeX×sizeY. When bg equals color only the set pixels are
// drawn; otherwise the whole 6×8 cell is painted.
func (d *Display) DrawChar(x, y int, c byte, color, bg uint16, sizeX, sizeY int) {
	sizeX = max(sizeX, 1)
	sizeY = max(sizeY, 1)

	if x >= d.width || y >= d.height ||
		x+CharWidth*sizeX-1 < 0 || y+CharHeight*sizeY-1 < 0 {
		return
	}

	idx := int(c)
	if !d.cp437 && c >= 176 {
		idx++
	}
	opaque := bg != color
	one := sizeX == 1 && sizeY == 1

	for i := 0; i < 5; i++ {
		var line byte
		// Code 255 in classic mode runs off the table and renders blank.
		if idx < 256 {
			line = glcdfont[idx*5+i]
		}
		for j := 0; j < 8; j, line = j+1, line>>1 {
			px := color
			if line&1 == 0 {
				if !opaque {
					continue
				}
				px = bg
			}
			if one {
				d.DrawPixel(x+i, y+j, px)
			} else {
				d.FillRect(x+i*sizeX, y+j*sizeY, sizeX, sizeY, px)
			}
		}
	}

	if opaque {
		if one {
			d.DrawLine(x+5, y, x+5, y+7, bg)
		} else {
			d.FillRect(x+5*sizeX, y, sizeX, 8*sizeY, bg)
		}
	}
}

// DrawString draws the bytes of s as glyph codes from left to right, without
// wrapping.
func (d *Display) DrawString(x, y int, s string, color, bg uint16, sizeX, sizeY int) {
	sizeX = max(sizeX, 1)
	for i := 0; i < len(s); i++ {
		d.DrawChar(x, y, s[i], color, bg, sizeX, sizeY)
		x += CharWidth * sizeX
	}
}

// DrawText is DrawString for UTF-8 text: s is encoded to code page 437 first
// and runes outside it are drawn as the substitute glyph. Characters from 176
// up only match their CP437 shape when SetCP437(true) is in effect.
func (d *Display) DrawText(x, y int, s string, color, bg uint16, sizeX, sizeY int) {
	d.DrawString(x, y, EncodeCP437(s), color, bg, sizeX, sizeY)
}

// EncodeCP437 converts UTF-8 text to code page 437 glyph codes.
func EncodeCP437(s string) string {
	out, _ := encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder()).String(s)
	return out
}

// Write draws p at the text cursor with the colors and size set by
// SetTextColor and SetTextSize, and moves the cursor past it. Bytes are glyph
// codes; there is no wrapping and '\n' is drawn like any other glyph.
//
// It implements io.Writer and never fails.
func (d *Display) Write(p []byte) (int, error) {
	for _, c := range p {
		d.DrawChar(d.cursorX, d.cursorY, c, d.textColor, d.textBg, d.textSizeX, d.textSizeY)
		d.cursorX += CharWidth * d.textSizeX
	}
	return len(p), nil
}
