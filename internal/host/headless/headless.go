// Package headless provides a no-op presenter and input source for
// tests and the CLI's --headless flag, following the stand-in role
// mappers.Dummy plays for tests that need a Mapper without real ROM
// data.
package headless

import "github.com/mkenney-dev/aworld/internal/video"

// Surface discards every frame it is handed and reports no input.
// It implements video.Presenter and host.InputSource.
type Surface struct {
	frames int
}

// New returns a Surface that drops every frame presented to it.
func New() *Surface {
	return &Surface{}
}

// Present implements video.Presenter by counting frames without
// rendering them.
func (s *Surface) Present(frame *video.Buffer, palette video.Palette, delayMS int) error {
	s.frames++
	return nil
}

// Frames returns the number of frames presented so far, useful for
// tests that drive a fixed number of tics and check the VM kept
// running.
func (s *Surface) Frames() int {
	return s.frames
}

// Poll implements host.InputSource by reporting no input ever
// pressed.
func (s *Surface) Poll() (up, down, left, right, action bool, lastKey byte, showPassword bool) {
	return false, false, false, false, false, 0, false
}
