package resource

import "errors"

var (
	// ErrInvalidResourceID is returned for a resource id outside the
	// descriptor table.
	ErrInvalidResourceID = errors.New("resource: invalid resource id")
	// ErrEmptyResourceID is returned when the descriptor at a valid id
	// is the empty marker.
	ErrEmptyResourceID = errors.New("resource: empty resource id")
	// ErrGamePartOnlyResourceType is returned when ControlResources is
	// asked to individually load a palette/bytecode/polygon/animation
	// resource; those load only as part of a game part.
	ErrGamePartOnlyResourceType = errors.New("resource: resource type can only be loaded as part of a game part")
	// ErrInvalidResourceSize indicates a descriptor whose compressed
	// size exceeds its uncompressed size.
	ErrInvalidResourceSize = errors.New("resource: invalid resource size")
	// ErrInvalidCompressedData indicates malformed compressed bytes.
	ErrInvalidCompressedData = errors.New("resource: invalid compressed data")
	// ErrTruncatedData indicates fewer bytes were available than the
	// descriptor promised.
	ErrTruncatedData = errors.New("resource: truncated data")
	// ErrBufferTooSmall indicates a destination buffer smaller than
	// the descriptor's uncompressed size.
	ErrBufferTooSmall = errors.New("resource: destination buffer too small")
	// ErrOutOfMemory indicates an allocation failure.
	ErrOutOfMemory = errors.New("resource: out of memory")
	// ErrRepositoryFailure is a catch-all for reader-side I/O failure.
	ErrRepositoryFailure = errors.New("resource: repository failure")
)
