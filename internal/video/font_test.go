package video

import (
	"errors"
	"testing"
)

func TestDrawStringUnknownID(t *testing.T) {
	font := NewFont(map[byte]Glyph{})
	b := &Buffer{}
	if err := DrawString(b, font, StringTable{}, 42, 1, 0, 0); !errors.Is(err, ErrInvalidStringID) {
		t.Errorf("DrawString() err = %v, wanted ErrInvalidStringID", err)
	}
}

func TestDrawStringBlitsGlyph(t *testing.T) {
	glyph := Glyph{0x80} // top-left pixel set, rest of rows zero
	font := NewFont(map[byte]Glyph{'A': glyph})
	strings := StringTable{1: "A"}

	b := &Buffer{}
	if err := DrawString(b, font, strings, 1, 9, 0, 0); err != nil {
		t.Fatalf("DrawString() err = %v", err)
	}
	if got := b.Get(0, 0); got != 9 {
		t.Errorf("Get(0,0) = %d, wanted 9", got)
	}
	if got := b.Get(1, 0); got != 0 {
		t.Errorf("Get(1,0) = %d, wanted 0", got)
	}
}
