package video

import "errors"

// Buffer id sentinels used by SelectVideoBuffer/CopyVideoBuffer, per
// section 4.2.
const (
	IDFront uint8 = 0xFF
	IDBack  uint8 = 0xFE
)

// ErrAnimationsNotLoaded is returned when a sprite-polygon draw
// references the animations source but none is loaded, per section
// 4.4.
var ErrAnimationsNotLoaded = errors.New("video: animations resource not loaded")

// Presenter is the host-facing boundary a Engine calls once a frame
// is ready to display, matching section 6.2's HostSurface contract.
type Presenter interface {
	Present(frame *Buffer, palette Palette, delayMS int) error
}

// Engine owns the four physical buffers and their rotating
// front/back/target roles, plus the currently selected palette and
// polygon/animation resource pointers, per section 3's video state.
type Engine struct {
	buffers   [BufferCount]Buffer
	front     int
	back      int
	target    int
	paletteID uint8
	palettes  *PaletteTable

	polygons   []byte
	animations []byte // nil if not loaded

	presenter Presenter
}

// NewEngine returns an Engine with buffer 0 as front/back/target and
// presenter as its frame sink.
func NewEngine(presenter Presenter) *Engine {
	return &Engine{presenter: presenter}
}

// Mask returns buffer 0, the fixed mask/bitmap-destination buffer.
func (e *Engine) Mask() *Buffer {
	return &e.buffers[0]
}

// Target returns the currently selected draw destination.
func (e *Engine) Target() *Buffer {
	return &e.buffers[e.target]
}

// SetPalettes installs the palette table parsed from a newly loaded
// game part's palette resource.
func (e *Engine) SetPalettes(pt *PaletteTable) {
	e.palettes = pt
}

// SetPolygons installs the polygon-tree bytes for the current game
// part.
func (e *Engine) SetPolygons(data []byte) {
	e.polygons = data
}

// SetAnimations installs the optional shared animations polygon
// table, or nil if the current part has none.
func (e *Engine) SetAnimations(data []byte) {
	e.animations = data
}

// SelectPalette resolves id against PaletteCount and sets it as
// current.
func (e *Engine) SelectPalette(id uint8) error {
	if int(id) >= PaletteCount {
		return ErrInvalidPaletteID
	}
	e.paletteID = id
	return nil
}

func resolveBufferID(raw uint8, front, back int) (int, error) {
	switch raw {
	case IDFront:
		return front, nil
	case IDBack:
		return back, nil
	default:
		if int(raw) >= BufferCount {
			return 0, ErrInvalidBufferID
		}
		return int(raw), nil
	}
}

// SelectTarget sets the draw destination buffer from a raw
// SelectVideoBuffer operand.
func (e *Engine) SelectTarget(raw uint8) error {
	id, err := resolveBufferID(raw, e.front, e.back)
	if err != nil {
		return err
	}
	e.target = id
	return nil
}

// Fill fills the buffer named by raw with color.
func (e *Engine) Fill(raw uint8, color uint8) error {
	id, err := resolveBufferID(raw, e.front, e.back)
	if err != nil {
		return err
	}
	e.buffers[id].Fill(color)
	return nil
}

// Copy copies src into dst, applying yOffset only when scroll is
// true, per CopyVideoBuffer's scroll-flag contract (section 4.2).
func (e *Engine) Copy(rawSrc, rawDst uint8, scroll bool, scrollY int16) error {
	src, err := resolveBufferID(rawSrc, e.front, e.back)
	if err != nil {
		return err
	}
	dst, err := resolveBufferID(rawDst, e.front, e.back)
	if err != nil {
		return err
	}
	offset := 0
	if scroll {
		offset = int(scrollY)
	}
	e.buffers[dst].CopyFrom(&e.buffers[src], offset)
	return nil
}

// LoadBitmap decodes a planar bitmap directly into buffer 0, per
// section 4.4.
func (e *Engine) LoadBitmap(data []byte) error {
	return e.buffers[0].LoadPlanarBitmap(data)
}

// DrawBackgroundPolygon draws a polygon tree node from the current
// part's polygons resource.
func (e *Engine) DrawBackgroundPolygon(addr uint16, x, y int, zoom uint16) error {
	return ResolveAndDraw(e.Target(), e.Mask(), e.polygons, addr, x, y, zoom)
}

// DrawSpritePolygon draws a polygon tree node from the shared
// animations resource, failing ErrAnimationsNotLoaded when the
// current part has none.
func (e *Engine) DrawSpritePolygon(addr uint16, x, y int, zoom uint16) error {
	if e.animations == nil {
		return ErrAnimationsNotLoaded
	}
	return ResolveAndDraw(e.Target(), e.Mask(), e.animations, addr, x, y, zoom)
}

// MarkReady rotates buffer roles per section 4.4 and hands the new
// front buffer (with the current palette) to the presenter.
func (e *Engine) MarkReady(raw uint8, delayMS int) error {
	switch raw {
	case IDFront:
		// re-present current front; front/back unchanged
	case IDBack:
		e.front, e.back = e.back, e.front
	default:
		if int(raw) >= BufferCount {
			return ErrInvalidBufferID
		}
		e.front = int(raw)
	}

	pal := Palette{}
	if e.palettes != nil {
		p, err := e.palettes.Palette(e.paletteID)
		if err != nil {
			return err
		}
		pal = p
	}
	return e.presenter.Present(&e.buffers[e.front], pal, delayMS)
}
