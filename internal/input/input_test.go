package input

import (
	"testing"

	"github.com/mkenney-dev/aworld/internal/registers"
)

func TestLeftWinsOverRight(t *testing.T) {
	regs := registers.New()
	Apply(regs, Snapshot{Left: true, Right: true}, false)
	if got := regs.Signed(registers.MovementLeftRight); got != -1 {
		t.Errorf("MovementLeftRight = %d, wanted -1", got)
	}
}

func TestUpWinsOverDown(t *testing.T) {
	regs := registers.New()
	Apply(regs, Snapshot{Up: true, Down: true}, false)
	if got := regs.Signed(registers.MovementUpDown); got != -1 {
		t.Errorf("MovementUpDown = %d, wanted -1", got)
	}
}

func TestMovementBitfield(t *testing.T) {
	regs := registers.New()
	Apply(regs, Snapshot{Right: true, Down: true}, false)
	got := regs.Unsigned(registers.MovementInputs)
	want := uint16(BitRight | BitDown)
	if got != want {
		t.Errorf("MovementInputs = %04x, wanted %04x", got, want)
	}
}

func TestActionSetsBothRegisters(t *testing.T) {
	regs := registers.New()
	Apply(regs, Snapshot{Action: true}, false)
	if got := regs.Unsigned(registers.ActionInput); got != 1 {
		t.Errorf("ActionInput = %d, wanted 1", got)
	}
	if got := regs.Unsigned(registers.AllInputs); got&BitAction == 0 {
		t.Errorf("AllInputs bit7 not set: %04x", got)
	}
}

func TestLastCharOnlyWrittenDuringPasswordEntry(t *testing.T) {
	regs := registers.New()
	regs.SetUnsigned(registers.LastChar, 0xAB)
	Apply(regs, Snapshot{LastKey: 'x'}, false)
	if got := regs.Unsigned(registers.LastChar); got != 0xAB {
		t.Errorf("LastChar = %04x, wanted unchanged 00ab", got)
	}

	Apply(regs, Snapshot{LastKey: 'x'}, true)
	if got := regs.Unsigned(registers.LastChar); got != 'X' {
		t.Errorf("LastChar = %04x, wanted %02x ('X')", got, 'X')
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   byte
		want byte
	}{
		{'a', 'A'},
		{'Z', 'Z'},
		{8, 8},
		{13, 0},
		{'!', 0},
	}
	for _, tc := range cases {
		if got := NormalizeKey(tc.in); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, wanted %q", tc.in, got, tc.want)
		}
	}
}
