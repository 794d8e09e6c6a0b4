package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// fixtureTypeNames maps the type tag used in a fixture file's name to
// the Descriptor.Type it should carry.
var fixtureTypeNames = map[string]Type{
	"sound":      TypeSound,
	"music":      TypeMusic,
	"bitmap":     TypeBitmap,
	"palettes":   TypePalettes,
	"bytecode":   TypeBytecode,
	"polygons":   TypePolygons,
	"animations": TypeAnimations,
}

// LoadFixtureDir builds a MemReader from a directory of already
// decompressed resource files, one per file, named
// "<resource-id>.<type>.bin" (e.g. "024.bytecode.bin"). This is a
// convenience fixture format for the CLI and tests, not a MEMLIST/BANK
// decoder: the real on-disk format is out of scope (section 1) and
// this reader never compresses or decompresses anything, simply
// handing back bytes it already holds in memory.
func LoadFixtureDir(dir string) (*MemReader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("resource: reading fixture dir %q: %w", dir, err)
	}

	descriptors := make([]Descriptor, MaxResources)
	for i := range descriptors {
		descriptors[i] = Descriptor{Type: TypeEmpty}
	}
	blobs := make(map[int][]byte)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		if !strings.HasSuffix(name, ".bin") {
			continue
		}

		base := strings.TrimSuffix(name, ".bin")
		parts := strings.SplitN(base, ".", 2)
		if len(parts) != 2 {
			continue
		}

		id, err := strconv.Atoi(parts[0])
		if err != nil || id < 0 || id >= MaxResources {
			continue
		}

		typ, ok := fixtureTypeNames[parts[1]]
		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("resource: reading fixture %q: %w", name, err)
		}

		descriptors[id] = Descriptor{
			Type:             typ,
			UncompressedSize: uint32(len(data)),
			CompressedSize:   uint32(len(data)),
		}
		blobs[id] = data
	}

	return NewMemReader(descriptors, blobs), nil
}
