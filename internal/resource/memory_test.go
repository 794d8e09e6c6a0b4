package resource

import (
	"errors"
	"testing"

	"github.com/mkenney-dev/aworld/internal/gamepart"
)

func fixtureReader() *MemReader {
	descs := make([]Descriptor, 0x30)
	for i := range descs {
		descs[i] = Descriptor{Type: TypeEmpty}
	}
	blobs := map[int][]byte{}

	set := func(id int, typ Type, data []byte) {
		descs[id] = Descriptor{Type: typ, UncompressedSize: uint32(len(data)), CompressedSize: uint32(len(data))}
		blobs[id] = data
	}

	set(0x14, TypePalettes, []byte{1, 2, 3})
	set(0x15, TypeBytecode, []byte{4, 5})
	set(0x16, TypePolygons, []byte{6})
	set(0x05, TypeSound, []byte{9, 9, 9})
	bmp := make([]byte, BitmapStagingSize)
	bmp[0] = 0x42
	set(0x06, TypeBitmap, bmp)

	return NewMemReader(descs, blobs)
}

func TestLoadPart(t *testing.T) {
	m := New(fixtureReader())
	part := gamepart.Resources{Palettes: 0x14, Bytecode: 0x15, Polygons: 0x16, Animations: gamepart.NoAnimations}

	res, err := m.LoadPart(part)
	if err != nil {
		t.Fatalf("LoadPart() err = %v", err)
	}
	if string(res.Palettes) != "\x01\x02\x03" {
		t.Errorf("Palettes = %v, wanted [1 2 3]", res.Palettes)
	}
	if res.Animations != nil {
		t.Errorf("Animations = %v, wanted nil", res.Animations)
	}
}

func TestLoadPartIsIdempotent(t *testing.T) {
	m := New(fixtureReader())
	part := gamepart.Resources{Palettes: 0x14, Bytecode: 0x15, Polygons: 0x16, Animations: gamepart.NoAnimations}

	first, err := m.LoadPart(part)
	if err != nil {
		t.Fatalf("first LoadPart() err = %v", err)
	}
	second, err := m.LoadPart(part)
	if err != nil {
		t.Fatalf("second LoadPart() err = %v", err)
	}
	if string(first.Palettes) != string(second.Palettes) {
		t.Errorf("LoadPart() not idempotent: %v vs %v", first.Palettes, second.Palettes)
	}
}

func TestLoadIndividualSound(t *testing.T) {
	m := New(fixtureReader())
	buf, err := m.LoadIndividual(0x05)
	if err != nil {
		t.Fatalf("LoadIndividual() err = %v", err)
	}
	if len(buf) != 3 {
		t.Errorf("len(buf) = %d, wanted 3", len(buf))
	}
}

func TestLoadIndividualBitmapUsesStaging(t *testing.T) {
	m := New(fixtureReader())
	buf, err := m.LoadIndividual(0x06)
	if err != nil {
		t.Fatalf("LoadIndividual() err = %v", err)
	}
	if &buf[0] != &m.staging[0] {
		t.Errorf("bitmap load did not use staging region")
	}
	if buf[0] != 0x42 {
		t.Errorf("buf[0] = %x, wanted 0x42", buf[0])
	}
}

func TestLoadIndividualRejectsGamePartOnlyTypes(t *testing.T) {
	m := New(fixtureReader())
	if _, err := m.LoadIndividual(0x14); !errors.Is(err, ErrGamePartOnlyResourceType) {
		t.Errorf("LoadIndividual(palette) err = %v, wanted ErrGamePartOnlyResourceType", err)
	}
}

func TestUnloadAllLeavesGamePartCellsAlone(t *testing.T) {
	m := New(fixtureReader())
	part := gamepart.Resources{Palettes: 0x14, Bytecode: 0x15, Polygons: 0x16, Animations: gamepart.NoAnimations}
	m.LoadPart(part)
	m.LoadIndividual(0x05)

	m.UnloadAll()

	if m.cells[0x05] != nil {
		t.Errorf("sound cell not unloaded")
	}
	if m.cells[0x14] == nil {
		t.Errorf("game-part cell wrongly unloaded")
	}
}

func TestInvalidAndEmptyResourceID(t *testing.T) {
	m := New(fixtureReader())
	if _, err := m.LoadIndividual(9999); !errors.Is(err, ErrInvalidResourceID) {
		t.Errorf("LoadIndividual(9999) err = %v, wanted ErrInvalidResourceID", err)
	}
	if _, err := m.LoadIndividual(0x00); !errors.Is(err, ErrEmptyResourceID) {
		t.Errorf("LoadIndividual(0x00) err = %v, wanted ErrEmptyResourceID", err)
	}
}
