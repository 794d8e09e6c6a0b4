package video

import "errors"

// GlyphWidth and GlyphHeight are the fixed bitmap-font cell
// dimensions used by DrawString, per section 4.2.
const (
	GlyphWidth  = 8
	GlyphHeight = 8
)

// ErrInvalidStringID is returned when a string id has no registered
// text.
var ErrInvalidStringID = errors.New("video: invalid string id")

// Glyph is an 8x8 1-bit bitmap, one byte per row, msb-first.
type Glyph [GlyphHeight]byte

// Font maps ASCII characters to glyphs. A character with no glyph in
// the table draws as blank, matching the reference renderer's
// silent skip of unknown glyphs.
type Font struct {
	glyphs map[byte]Glyph
}

// NewFont returns a Font backed by the given character-to-glyph
// table.
func NewFont(glyphs map[byte]Glyph) *Font {
	return &Font{glyphs: glyphs}
}

// StringTable maps a resource-defined string id to its text, per
// section 6's localisation boundary (the actual per-language text
// tables are supplied by the embedder, not hardcoded here).
type StringTable map[uint16]string

// DrawString renders the text registered under id into target at
// (col*GlyphWidth, row), using color for set pixels, per section 4.2.
func DrawString(target *Buffer, font *Font, strings StringTable, id uint16, color uint8, col, row int) error {
	text, ok := strings[id]
	if !ok {
		return ErrInvalidStringID
	}

	x := col * GlyphWidth
	for i := 0; i < len(text); i++ {
		glyph, ok := font.glyphs[text[i]]
		if ok {
			blit(target, glyph, x, row, color)
		}
		x += GlyphWidth
	}
	return nil
}

func blit(target *Buffer, g Glyph, x, y int, color uint8) {
	for row := 0; row < GlyphHeight; row++ {
		bits := g[row]
		for col := 0; col < GlyphWidth; col++ {
			if bits&(0x80>>col) != 0 {
				target.Set(x+col, y+row, color)
			}
		}
	}
}
