package gamepart

import "testing"

func TestFromControlResourcesID(t *testing.T) {
	id, ok := FromControlResourcesID(0x3E82)
	if !ok || id != Gameplay1 {
		t.Errorf("FromControlResourcesID(0x3e82) = %v, %v, wanted Gameplay1, true", id, ok)
	}

	if _, ok := FromControlResourcesID(0x3E90); ok {
		t.Errorf("FromControlResourcesID(0x3e90) = true, wanted false")
	}
}

func TestAllowsPasswordEntry(t *testing.T) {
	cases := []struct {
		id   ID
		want bool
	}{
		{CopyProtection, false},
		{PasswordEntry, false},
		{Gameplay2, true},
		{IntroCinematic, true},
	}
	for _, tc := range cases {
		if got := tc.id.AllowsPasswordEntry(); got != tc.want {
			t.Errorf("%v.AllowsPasswordEntry() = %v, wanted %v", tc.id, got, tc.want)
		}
	}
}

func TestByNameRoundTrip(t *testing.T) {
	for id := CopyProtection; id < count; id++ {
		got, err := ByName(id.String())
		if err != nil || got != id {
			t.Errorf("ByName(%q) = %v, %v, wanted %v, nil", id.String(), got, err, id)
		}
	}
}
