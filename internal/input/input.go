// Package input translates one tic's user input snapshot into
// register writes, per section 6.6. It never touches a host toolkit
// directly; that wiring lives in internal/host.
package input

import "github.com/mkenney-dev/aworld/internal/registers"

// Movement bit positions within registers.MovementInputs, per section
// 6.6.
const (
	BitRight = 1 << 0
	BitLeft  = 1 << 1
	BitDown  = 1 << 2
	BitUp    = 1 << 3
)

// BitAction is bit 7 of registers.AllInputs.
const BitAction = 1 << 7

// Snapshot is one tic's worth of polled input, independent of any
// host toolkit's key constants.
type Snapshot struct {
	Up, Down, Left, Right bool
	Action                bool
	// LastKey is the most recently pressed key as an ASCII byte, or 0
	// if none. Apply normalises it with NormalizeKey before writing
	// it to registers.LastChar.
	LastKey byte
	// ShowPassword requests a transition to the password_entry game
	// part.
	ShowPassword bool
}

// Apply writes s into regs per section 6.6: left wins over right,
// up wins over down, the directional bitfield mirrors both signed
// axes, and the action flag occupies bit 7 of AllInputs in addition
// to its own register.
func Apply(regs *registers.Bank, s Snapshot, passwordEntryActive bool) {
	var lr int16
	switch {
	case s.Left:
		lr = -1
	case s.Right:
		lr = 1
	}
	regs.SetSigned(registers.MovementLeftRight, lr)

	var ud int16
	switch {
	case s.Up:
		ud = -1
	case s.Down:
		ud = 1
	}
	regs.SetSigned(registers.MovementUpDown, ud)

	var bits uint16
	if s.Right {
		bits |= BitRight
	}
	if s.Left {
		bits |= BitLeft
	}
	if s.Down {
		bits |= BitDown
	}
	if s.Up {
		bits |= BitUp
	}
	regs.SetUnsigned(registers.MovementInputs, bits)

	var action uint16
	if s.Action {
		action = 1
	}
	regs.SetUnsigned(registers.ActionInput, action)

	all := regs.Unsigned(registers.AllInputs) &^ BitAction
	if s.Action {
		all |= BitAction
	}
	regs.SetUnsigned(registers.AllInputs, all)

	if passwordEntryActive {
		regs.SetUnsigned(registers.LastChar, uint16(NormalizeKey(s.LastKey)))
	}
}

// NormalizeKey implements section 6.6's key-normalisation rule:
// uppercase ASCII A-Z pass through uppercased, backspace is 8,
// carriage return maps to 0, everything else maps to 0.
func NormalizeKey(k byte) byte {
	switch {
	case k >= 'a' && k <= 'z':
		return k - ('a' - 'A')
	case k >= 'A' && k <= 'Z':
		return k
	case k == 8:
		return 8
	default:
		return 0
	}
}
