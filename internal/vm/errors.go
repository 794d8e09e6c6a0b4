package vm

import "errors"

var (
	// ErrInvalidOpcode is returned when a fetched opcode byte matches
	// none of the 29 known instructions.
	ErrInvalidOpcode = errors.New("vm: invalid opcode")
	// ErrInvalidJumpComparison is returned for a JumpConditional
	// comparison code of 6 or 7.
	ErrInvalidJumpComparison = errors.New("vm: invalid jump comparison")
	// ErrShiftTooLarge is returned for a shift distance outside 0..15.
	ErrShiftTooLarge = errors.New("vm: shift distance too large")
	// ErrYieldWithinFunction is returned when Yield executes with a
	// non-empty call stack.
	ErrYieldWithinFunction = errors.New("vm: yield within function")
	// ErrInstructionLimitExceeded is returned when a single thread's
	// tic exceeds the fixed per-tic instruction budget.
	ErrInstructionLimitExceeded = errors.New("vm: instruction limit exceeded")
)
