package resource

import (
	"fmt"

	"github.com/mkenney-dev/aworld/internal/gamepart"
)

// BitmapStagingSize is the fixed size of the bitmap load staging
// region: a full 320x200 4bpp frame.
const BitmapStagingSize = 320 * 200 / 2

// Memory is the VM's resource manager: an indexed table of owned
// byte regions plus one fixed staging region for bitmap loads, per
// section 4.5.
type Memory struct {
	reader  Reader
	cells   [][]byte // indexed by resource id; nil when empty
	staging [BitmapStagingSize]byte
}

// New returns a Memory backed by reader. The cell table is sized to
// len(reader.Descriptors()).
func New(reader Reader) *Memory {
	return &Memory{
		reader: reader,
		cells:  make([][]byte, len(reader.Descriptors())),
	}
}

// Staging returns the fixed bitmap staging region.
func (m *Memory) Staging() []byte {
	return m.staging[:]
}

func (m *Memory) descriptor(id int) (Descriptor, error) {
	descs := m.reader.Descriptors()
	if id < 0 || id >= len(descs) {
		return Descriptor{}, ErrInvalidResourceID
	}
	d := descs[id]
	if d.Type == TypeEmpty {
		return Descriptor{}, ErrEmptyResourceID
	}
	return d, nil
}

func (m *Memory) load(id int, d Descriptor) ([]byte, error) {
	buf := make([]byte, d.UncompressedSize)
	if err := m.reader.ReadInto(buf, id, d); err != nil {
		return nil, fmt.Errorf("resource: loading id %d: %w", id, err)
	}
	return buf, nil
}

// PartResult carries the four resource pointers a successful
// LoadPart hands back to the VM driver, matching section 4.5's
// game-part load sequence.
type PartResult struct {
	Palettes   []byte
	Bytecode   []byte
	Polygons   []byte
	Animations []byte // nil if the part has none
}

// LoadPart frees every owned region, then loads the four resources
// named by part's bindings. It is semantically atomic: on the first
// error nothing further is allocated, but previously freed cells are
// not restored (matching the reference VM, which has no rollback
// either).
func (m *Memory) LoadPart(part gamepart.Resources) (PartResult, error) {
	m.UnloadAll()
	for i := range m.cells {
		m.cells[i] = nil
	}

	var res PartResult
	var err error

	res.Palettes, err = m.loadGamePartResource(part.Palettes)
	if err != nil {
		return PartResult{}, err
	}
	res.Bytecode, err = m.loadGamePartResource(part.Bytecode)
	if err != nil {
		return PartResult{}, err
	}
	res.Polygons, err = m.loadGamePartResource(part.Polygons)
	if err != nil {
		return PartResult{}, err
	}
	if part.Animations != gamepart.NoAnimations {
		res.Animations, err = m.loadGamePartResource(part.Animations)
		if err != nil {
			return PartResult{}, err
		}
	}

	return res, nil
}

func (m *Memory) loadGamePartResource(id int) ([]byte, error) {
	d, err := m.descriptor(id)
	if err != nil {
		return nil, err
	}
	buf, err := m.load(id, d)
	if err != nil {
		return nil, err
	}
	m.cells[id] = buf
	return buf, nil
}

// TypeOf returns the descriptor type for id, so a caller can decide
// how to route the bytes LoadIndividual hands back (e.g. bitmap bytes
// go to the video engine, sound/music bytes go to the audio player)
// without guessing from buffer size.
func (m *Memory) TypeOf(id int) (Type, error) {
	d, err := m.descriptor(id)
	if err != nil {
		return TypeEmpty, err
	}
	return d.Type, nil
}

// LoadIndividual services the "otherwise treat id as a resource id"
// branch of ControlResources for sound, music, and bitmap resources.
// Game-part-only resource types fail ErrGamePartOnlyResourceType.
func (m *Memory) LoadIndividual(id int) ([]byte, error) {
	d, err := m.descriptor(id)
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case TypeSound, TypeMusic:
		if m.cells[id] != nil {
			return m.cells[id], nil
		}
		buf, err := m.load(id, d)
		if err != nil {
			return nil, err
		}
		m.cells[id] = buf
		return buf, nil

	case TypeBitmap:
		if d.UncompressedSize != BitmapStagingSize {
			return nil, fmt.Errorf("resource: bitmap id %d has size %d, wanted %d: %w", id, d.UncompressedSize, BitmapStagingSize, ErrInvalidResourceSize)
		}
		if err := m.reader.ReadInto(m.staging[:], id, d); err != nil {
			return nil, fmt.Errorf("resource: loading bitmap id %d: %w", id, err)
		}
		return m.staging[:], nil

	default:
		return nil, ErrGamePartOnlyResourceType
	}
}

// UnloadAll frees every cell whose descriptor type is sound or music,
// per section 4.5's unload_all contract. Game-part cells are left
// alone.
func (m *Memory) UnloadAll() {
	descs := m.reader.Descriptors()
	for id := range m.cells {
		if id >= len(descs) {
			continue
		}
		switch descs[id].Type {
		case TypeSound, TypeMusic:
			m.cells[id] = nil
		}
	}
}
