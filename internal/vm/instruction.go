package vm

// Instruction is a decoded bytecode operation: one tagged struct
// carrying only the operand fields its Op actually uses, per section
// 9's "union-of-struct instructions" guidance. Decoding always
// consumes the instruction's full byte width (section 6.3) before any
// semantic validation runs, so a caller that chooses to recover from
// a semantic error can still resume decoding at the next opcode.
type Instruction struct {
	Op Opcode

	Reg  uint8
	Reg2 uint8

	Imm16 int16
	Mask  uint16
	Shift uint8

	Addr uint16

	ThreadID    uint8
	ThreadStart uint8
	ThreadEnd   uint8
	ThreadOp    ThreadControlOp

	Cmp     JumpComparison
	RHSKind RHSKind
	RHSImm  int16
	RHSReg  uint8

	PaletteID uint8

	BufferID  uint8
	BufferID2 uint8
	Color     uint8
	Scroll    bool

	StringID uint16
	Col      int
	Row      int

	PolygonX, PolygonY int
	Zoom               uint16

	ResourceID int

	SoundFreq   uint8
	SoundVolume uint8
	Channel     uint8

	MusicDelay  uint16
	MusicOffset uint8
}
