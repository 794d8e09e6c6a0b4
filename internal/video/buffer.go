// Package video implements the VM's four packed 4bpp framebuffers,
// polygon rasterisation, palette resolution, and glyph drawing, per
// section 4.4.
package video

import "errors"

const (
	// Width and Height are the fixed frame dimensions.
	Width  = 320
	Height = 200
	// Stride is the number of bytes per row (two 4-bit pixels per byte).
	Stride = Width / 2
	// BufferSize is the packed size of one buffer, matching the
	// resource staging region size in section 4.5.
	BufferSize = Stride * Height
	// BufferCount is the fixed number of physical buffers.
	BufferCount = 4
)

// ErrInvalidBufferID is returned for a buffer id outside 0..3 (after
// the front/back sentinels have already been resolved).
var ErrInvalidBufferID = errors.New("video: invalid buffer id")

// Buffer is one packed 320x200 4-bit-per-pixel frame.
type Buffer struct {
	pixels [BufferSize]byte
}

// Get returns the 4-bit color index at (x, y). Out-of-range
// coordinates return 0, matching the reference renderer's silent
// clipping of off-screen polygon vertices.
func (b *Buffer) Get(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	idx := y*Stride + x/2
	v := b.pixels[idx]
	if x%2 == 0 {
		return v >> 4
	}
	return v & 0x0F
}

// Set stores a 4-bit color index at (x, y), clipping silently when
// out of bounds.
func (b *Buffer) Set(x, y int, color uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	idx := y*Stride + x/2
	if x%2 == 0 {
		b.pixels[idx] = (b.pixels[idx] & 0x0F) | (color << 4)
	} else {
		b.pixels[idx] = (b.pixels[idx] & 0xF0) | (color & 0x0F)
	}
}

// Fill sets every pixel in b to color.
func (b *Buffer) Fill(color uint8) {
	v := color<<4 | color&0x0F
	for i := range b.pixels {
		b.pixels[i] = v
	}
}

// Bytes returns the packed pixel storage.
func (b *Buffer) Bytes() []byte {
	return b.pixels[:]
}

// CopyFrom copies src into b, offset vertically by yOffset. Rows that
// would land outside [0, Height) are skipped, matching section 4.4's
// "out-of-range offsets are silently clamped/skipped".
func (b *Buffer) CopyFrom(src *Buffer, yOffset int) {
	if yOffset == 0 {
		b.pixels = src.pixels
		return
	}
	for y := 0; y < Height; y++ {
		sy := y - yOffset
		if sy < 0 || sy >= Height {
			continue
		}
		copy(b.pixels[y*Stride:(y+1)*Stride], src.pixels[sy*Stride:(sy+1)*Stride])
	}
}

// LoadPlanarBitmap converts a 32000-byte, 4-bitplane planar image
// (planes stored high-to-low: 3, 2, 1, 0; see section 6.4) into b's
// packed representation.
func (b *Buffer) LoadPlanarBitmap(data []byte) error {
	if len(data) != BufferSize {
		return errors.New("video: planar bitmap must be exactly 32000 bytes")
	}

	// Each plane is 8000 bytes (320*200/8 bits per pixel per plane).
	const bytesPerPlane = Width * Height / 8
	for y := 0; y < Height; y++ {
		for xByte := 0; xByte < Width/8; xByte++ {
			var planeBits [4]byte
			for plane := 0; plane < 4; plane++ {
				// Planes are stored in reverse order: plane 3 first.
				srcPlane := 3 - plane
				offset := srcPlane*bytesPerPlane + y*(Width/8) + xByte
				planeBits[plane] = data[offset]
			}
			for bit := 0; bit < 8; bit++ {
				shift := 7 - bit
				var px uint8
				for plane := 0; plane < 4; plane++ {
					px |= ((planeBits[plane] >> shift) & 1) << plane
				}
				b.Set(xByte*8+bit, y, px)
			}
		}
	}
	return nil
}
