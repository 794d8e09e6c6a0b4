// Package gamepart defines the closed table of nine game parts and the
// resource ids each one binds, per section 6.5.
package gamepart

import "errors"

// ErrUnknownPart is returned when a requested part id is outside the
// closed table.
var ErrUnknownPart = errors.New("gamepart: unknown part")

// ID identifies one of the nine game parts.
type ID uint8

const (
	CopyProtection ID = iota
	IntroCinematic
	Gameplay1
	Gameplay2
	Gameplay3
	Gameplay4
	ArenaCinematic
	EndingCinematic
	PasswordEntry

	count
)

// FirstReservedResourceID and LastReservedResourceID bound the
// reserved ControlResources range (0x3E80..0x3E88, one id per part)
// that requests a part switch.
const (
	FirstReservedResourceID = 0x3E80
	LastReservedResourceID  = 0x3E80 + int(count) - 1
)

// NoAnimations is the sentinel Resources.Animations value for parts
// with no shared sprite table.
const NoAnimations = -1

// Resources names the up-to-four resource ids a part binds: palettes,
// bytecode, polygons, and an optional animations table.
type Resources struct {
	Palettes   int
	Bytecode   int
	Polygons   int
	Animations int // NoAnimations if absent
}

// table holds fixed placeholder resource ids consistent with the relative ordering the original
// release used (palettes, bytecode, polygons grouped per part, with
// gameplay parts additionally sharing one animations table).
var table = [count]Resources{
	CopyProtection:  {Palettes: 0x14, Bytecode: 0x15, Polygons: 0x16, Animations: NoAnimations},
	IntroCinematic:  {Palettes: 0x17, Bytecode: 0x18, Polygons: 0x19, Animations: NoAnimations},
	Gameplay1:       {Palettes: 0x1A, Bytecode: 0x1B, Polygons: 0x1C, Animations: 0x11},
	Gameplay2:       {Palettes: 0x1D, Bytecode: 0x1E, Polygons: 0x1F, Animations: 0x11},
	Gameplay3:       {Palettes: 0x20, Bytecode: 0x21, Polygons: 0x22, Animations: 0x11},
	Gameplay4:       {Palettes: 0x23, Bytecode: 0x24, Polygons: 0x25, Animations: 0x11},
	ArenaCinematic:  {Palettes: 0x26, Bytecode: 0x27, Polygons: 0x28, Animations: NoAnimations},
	EndingCinematic: {Palettes: 0x29, Bytecode: 0x2A, Polygons: 0x2B, Animations: NoAnimations},
	PasswordEntry:   {Palettes: 0x2C, Bytecode: 0x2D, Polygons: 0x2E, Animations: NoAnimations},
}

var names = [count]string{
	CopyProtection:  "copy_protection",
	IntroCinematic:  "intro_cinematic",
	Gameplay1:       "gameplay1",
	Gameplay2:       "gameplay2",
	Gameplay3:       "gameplay3",
	Gameplay4:       "gameplay4",
	ArenaCinematic:  "arena_cinematic",
	EndingCinematic: "ending_cinematic",
	PasswordEntry:   "password_entry",
}

// Resources returns the resource bindings for id.
func (id ID) Resources() (Resources, error) {
	if int(id) >= int(count) {
		return Resources{}, ErrUnknownPart
	}
	return table[id], nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	if int(id) >= int(count) {
		return "unknown"
	}
	return names[id]
}

// ByName resolves a part by its glossary name, used by the CLI's
// --part flag.
func ByName(name string) (ID, error) {
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, ErrUnknownPart
}

// FromControlResourcesID maps a raw ControlResources resource id in
// the reserved range to a part, per section 4.2.
func FromControlResourcesID(id int) (ID, bool) {
	if id < FirstReservedResourceID || id > LastReservedResourceID {
		return 0, false
	}
	return ID(id - FirstReservedResourceID), true
}

// AllowsPasswordEntry reports whether id may transition to
// PasswordEntry via the show-password input, per section 6.6: any
// cinematic or gameplay part, but not copy protection or password
// entry itself.
func (id ID) AllowsPasswordEntry() bool {
	switch id {
	case CopyProtection, PasswordEntry:
		return false
	default:
		return true
	}
}
