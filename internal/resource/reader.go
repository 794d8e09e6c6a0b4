package resource

import "fmt"

// MemReader is an in-memory Reader: a descriptor table paired with
// already-uncompressed resource bytes, keyed by resource id. It never
// touches disk and performs no decompression of its own; it simply
// hands back fixed-size slices it already holds in memory.
type MemReader struct {
	descriptors []Descriptor
	blobs       map[int][]byte
}

// NewMemReader returns a MemReader over descriptors, with blobs
// supplying the uncompressed bytes for each non-empty descriptor,
// keyed by resource id (index into descriptors).
func NewMemReader(descriptors []Descriptor, blobs map[int][]byte) *MemReader {
	return &MemReader{descriptors: descriptors, blobs: blobs}
}

// Descriptors implements Reader.
func (r *MemReader) Descriptors() []Descriptor {
	return r.descriptors
}

// ReadInto implements Reader.
func (r *MemReader) ReadInto(buf []byte, id int, d Descriptor) error {
	if d.CompressedSize > d.UncompressedSize {
		return ErrInvalidResourceSize
	}
	if uint32(len(buf)) < d.UncompressedSize {
		return ErrBufferTooSmall
	}

	blob, ok := r.blobs[id]
	if !ok {
		return fmt.Errorf("resource: no backing bytes for id %d: %w", id, ErrRepositoryFailure)
	}
	if uint32(len(blob)) < d.UncompressedSize {
		return ErrTruncatedData
	}
	copy(buf, blob[:d.UncompressedSize])
	return nil
}
