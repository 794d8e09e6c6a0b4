// Package ebitenhost implements the VM's presenter and input source on
// top of ebiten, following the window setup and Draw/Layout/Update
// shape used by the NES bus driver this module was adapted from.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mkenney-dev/aworld/internal/video"
)

// Surface is an ebiten.Game that presents VM frames and polls keyboard
// input. It implements video.Presenter and host.InputSource.
type Surface struct {
	img     *ebiten.Image
	pending *ebiten.Image
	scale   int
}

// New returns a Surface sized to the VM's fixed 320x200 frame, scaled
// by factor for the window.
func New(scale int) *Surface {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(video.Width*scale, video.Height*scale)
	ebiten.SetWindowTitle("Another World")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return &Surface{
		img:   ebiten.NewImage(video.Width, video.Height),
		scale: scale,
	}
}

// Present implements video.Presenter by converting the VM's 4bpp
// buffer and 16-colour palette to an RGBA ebiten.Image for the next Draw.
func (s *Surface) Present(frame *video.Buffer, palette video.Palette, delayMS int) error {
	frm := ebiten.NewImage(video.Width, video.Height)
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			c := palette[frame.Get(x, y)]
			frm.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	s.pending = frm
	return nil
}

// Layout returns the constant VM resolution, forcing ebiten to scale
// the window rather than the simulation.
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.Width, video.Height
}

// Draw copies the most recently presented frame to screen.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.pending != nil {
		s.img = s.pending
	}
	screen.DrawImage(s.img, nil)
}

// Update is a no-op: the VM driver advances state on its own tic
// cadence, not ebiten's.
func (s *Surface) Update() error {
	return nil
}

// These key lists name every direction/action key this port
// recognizes, one list per Snapshot field; multiple physical keys may set the same bit
// to match the original keyboard and joystick layouts.
var (
	upKeys     = []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}
	downKeys   = []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}
	leftKeys   = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	rightKeys  = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	actionKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Poll implements host.InputSource by sampling ebiten's keyboard
// state for the current frame.
func (s *Surface) Poll() (up, down, left, right, action bool, lastKey byte, showPassword bool) {
	var key byte
	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		key = byte(chars[0])
	}
	return anyPressed(upKeys), anyPressed(downKeys), anyPressed(leftKeys), anyPressed(rightKeys),
		anyPressed(actionKeys), key, ebiten.IsKeyPressed(ebiten.KeyF1)
}
