// Package cursor implements a bounded, big-endian reader over a single
// bytecode region, as used by the program cursor of each VM thread.
package cursor

import "errors"

// ErrEndOfProgram is returned when a read or skip would advance the
// cursor past the end of its bytecode region.
var ErrEndOfProgram = errors.New("cursor: end of program")

// ErrInvalidAddress is returned when a jump targets an address outside
// the bytecode region.
var ErrInvalidAddress = errors.New("cursor: invalid address")

// Cursor reads big-endian values from a fixed bytecode slice, tracking
// a single read position. It never mutates the underlying bytes.
type Cursor struct {
	code []byte
	pos  uint16
}

// New returns a Cursor positioned at the start of code. code must be
// no longer than 65536 bytes; callers are expected to enforce this
// when loading resources, since the wire format (section 6.3) never
// produces larger programs.
func New(code []byte) *Cursor {
	return &Cursor{code: code}
}

// Pos returns the current read position.
func (c *Cursor) Pos() uint16 {
	return c.pos
}

// Len returns the length of the underlying bytecode region.
func (c *Cursor) Len() int {
	return len(c.code)
}

// ReadU8 reads one byte and advances the cursor.
func (c *Cursor) ReadU8() (uint8, error) {
	if int(c.pos)+1 > len(c.code) {
		c.pos = uint16(len(c.code))
		return 0, ErrEndOfProgram
	}
	v := c.code[c.pos]
	c.pos++
	return v, nil
}

// ReadU16 reads a big-endian uint16 and advances the cursor by 2.
func (c *Cursor) ReadU16() (uint16, error) {
	if int(c.pos)+2 > len(c.code) {
		c.pos = uint16(len(c.code))
		return 0, ErrEndOfProgram
	}
	v := uint16(c.code[c.pos])<<8 | uint16(c.code[c.pos+1])
	c.pos += 2
	return v, nil
}

// ReadI16 reads a big-endian, two's-complement int16 and advances the
// cursor by 2.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// Skip advances the cursor by n bytes. If n would run past the end of
// the program, the cursor clamps to Len() and ErrEndOfProgram is
// returned.
func (c *Cursor) Skip(n uint16) error {
	if int(c.pos)+int(n) > len(c.code) {
		c.pos = uint16(len(c.code))
		return ErrEndOfProgram
	}
	c.pos += n
	return nil
}

// Jump sets the read position to addr. addr must be strictly less
// than Len(); jumping to the end of the program (a common "halt"
// idiom in some bytecode) is rejected the same as any other
// out-of-range address, matching section 4.1.
func (c *Cursor) Jump(addr uint16) error {
	if int(addr) >= len(c.code) {
		return ErrInvalidAddress
	}
	c.pos = addr
	return nil
}
