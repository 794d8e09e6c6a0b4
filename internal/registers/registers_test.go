package registers

import "testing"

func TestAddWraps(t *testing.T) {
	b := New()
	b.SetSigned(0, 32767)
	b.SetSigned(1, 1)
	b.Add(0, 1)
	if got := b.Signed(0); got != -32768 {
		t.Errorf("Add overflow = %d, wanted -32768", got)
	}
}

func TestAddConstantWraps(t *testing.T) {
	b := New()
	b.SetSigned(0, 32767)
	b.AddConstant(0, 1)
	if got := b.Signed(0); got != -32768 {
		t.Errorf("AddConstant overflow = %d, wanted -32768", got)
	}
}

func TestViewsShareStorage(t *testing.T) {
	b := New()
	b.SetUnsigned(0, 0xFFFF)
	if got := b.Signed(0); got != -1 {
		t.Errorf("Signed(0) = %d, wanted -1", got)
	}
	if got := b.Unsigned(0); got != 0xFFFF {
		t.Errorf("Unsigned(0) = %04x, wanted ffff", got)
	}
}

func TestNewSeedsCopyProtectionBypass(t *testing.T) {
	b := New()
	cases := []struct {
		id   uint8
		want uint16
	}{
		{CopyProtectionVar1, 0x10},
		{CopyProtectionVar2, 0x80},
		{CopyProtectionVar3, 0x4000},
		{CopyProtectionVar4, 33},
	}
	for _, tc := range cases {
		if got := b.Unsigned(tc.id); got != tc.want {
			t.Errorf("Unsigned(%#x) = %#x, wanted %#x", tc.id, got, tc.want)
		}
	}
}

func TestDecrementAndTest(t *testing.T) {
	b := New()
	b.SetSigned(5, 0)
	if got := b.DecrementAndTest(5); !got {
		t.Errorf("DecrementAndTest from 0 = false, wanted true")
	}
	if got := b.Signed(5); got != -1 {
		t.Errorf("register after decrement = %d, wanted -1", got)
	}

	b.SetSigned(5, 1)
	if got := b.DecrementAndTest(5); got {
		t.Errorf("DecrementAndTest from 1 = true, wanted false")
	}
}

func TestShifts(t *testing.T) {
	cases := []struct {
		name  string
		start uint16
		shift uint8
		left  uint16
		right uint16
	}{
		{"zero shift", 0x00FF, 0, 0x00FF, 0x00FF},
		{"shift by 15", 0x0001, 15, 0x8000, 0x0000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			b.SetUnsigned(0, tc.start)
			b.ShiftLeft(0, tc.shift)
			if got := b.Unsigned(0); got != tc.left {
				t.Errorf("ShiftLeft(%d) = %04x, wanted %04x", tc.shift, got, tc.left)
			}

			b2 := New()
			b2.SetUnsigned(0, tc.start)
			b2.ShiftRight(0, tc.shift)
			if got := b2.Unsigned(0); got != tc.right {
				t.Errorf("ShiftRight(%d) = %04x, wanted %04x", tc.shift, got, tc.right)
			}
		})
	}
}
