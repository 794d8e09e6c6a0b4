package video

import (
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFont builds a Font by downsampling golang.org/x/image's
// built-in 7x13 ASCII face into the VM's fixed 8x8 glyph cells. The
// real bitmap-font glyphs are resource-supplied by the game data
// (out of scope per section 1's localisation-table boundary); this
// gives the CLI something legible to draw DrawString text with when
// no font resource is wired in, the same role basicfont plays in the
// corpus's other ebiten-hosted emulator CLI.
func DefaultFont() *Font {
	face := basicfont.Face7x13

	glyphs := make(map[byte]Glyph, 0x7F-0x20)
	for c := byte(0x20); c < 0x7F; c++ {
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, face.Ascent), rune(c))
		if !ok || mask == nil {
			continue
		}

		w, h := dr.Dx(), dr.Dy()
		if w == 0 || h == 0 {
			continue
		}

		var g Glyph
		for y := 0; y < GlyphHeight; y++ {
			srcY := dr.Min.Y + (y*h)/GlyphHeight
			var row byte
			for x := 0; x < GlyphWidth; x++ {
				srcX := dr.Min.X + (x*w)/GlyphWidth
				_, _, _, a := mask.At(maskp.X+(srcX-dr.Min.X), maskp.Y+(srcY-dr.Min.Y)).RGBA()
				if a > 0x7FFF {
					row |= 0x80 >> uint(x)
				}
			}
			g[y] = row
		}
		glyphs[c] = g
	}

	return NewFont(glyphs)
}
