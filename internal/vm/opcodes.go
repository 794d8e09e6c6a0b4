package vm

// Opcode enumerates the closed set of table-dispatched instructions
// (the two polygon-draw instructions are selected by the top two bits
// of the opcode byte before table dispatch even begins; see
// decode.go).
type Opcode uint8

const (
	OpSetConstant Opcode = iota
	OpCopy
	OpAdd
	OpAddConstant
	OpSub
	OpAnd
	OpOr
	OpShiftLeft
	OpShiftRight
	OpJump
	OpCall
	OpReturn
	OpJumpIfNotZero
	OpJumpConditional
	OpActivateThread
	OpControlThreads
	OpKill
	OpYield
	OpSelectPalette
	OpSelectVideoBuffer
	OpFillVideoBuffer
	OpCopyVideoBuffer
	OpRenderVideoBuffer
	OpDrawString
	OpControlResources
	OpControlSound
	OpControlMusic

	opcodeCount
)

// DrawBackgroundPolygon and DrawSpritePolygon are not part of the
// table above: they're selected directly from the raw opcode byte's
// top bits (section 4.2) and carry their own Instruction variants.
const (
	OpDrawBackgroundPolygon Opcode = 0xF0 + iota
	OpDrawSpritePolygon
)

// JumpComparison enumerates JumpConditional's comparison codes.
type JumpComparison uint8

const (
	CmpEqual JumpComparison = iota
	CmpNotEqual
	CmpGreater
	CmpGreaterEqual
	CmpLess
	CmpLessEqual
)

// RHSKind enumerates how JumpConditional's right-hand side is encoded,
// selected by the control byte's top two bits.
type RHSKind uint8

const (
	RHSImmediate8  RHSKind = 0
	RHSImmediate16 RHSKind = 1
	RHSRegister    RHSKind = 2
)

// ThreadControlOp mirrors scheduler.PauseOp for the ControlThreads
// instruction's decoded operand.
type ThreadControlOp uint8

const (
	ThreadResume ThreadControlOp = iota
	ThreadSuspend
	ThreadDeactivate
)
