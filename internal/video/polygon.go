package video

import (
	"errors"

	"github.com/mkenney-dev/aworld/internal/cursor"
)

// MaxVertices bounds a single polygon's point list to the format's
// fixed capacity.
const MaxVertices = 50

// HighlightColor is the colour byte sentinel that remaps destination
// pixels through highlightTable instead of drawing a fresh fill.
const HighlightColor = 0x10

// MaskColor is the lowest colour byte sentinel that requests drawing
// through the mask buffer (buffer 0) rather than a flat fill.
const MaskColor = 0x11

// ErrInvalidColorID is returned when a polygon's colour byte can't be
// interpreted under section 4.4's rules.
var ErrInvalidColorID = errors.New("video: invalid color id")

// highlightTable remaps a destination pixel's existing color when a
// polygon is drawn with the HighlightColor sentinel. Indices 0x0-0xE
// map to themselves; index 0xF maps to 0x8.
var highlightTable = [16]uint8{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x08,
}

// Point is a vertex relative to a polygon's bounding box origin.
type Point struct {
	X, Y int16
}

// Polygon is a single filled shape: a bounding box, a colour byte,
// and a closed vertex loop (first half top edge, second half bottom
// edge, matching the original's "draw between two point lists"
// rasterisation).
type Polygon struct {
	BBWidth, BBHeight int16
	Color             uint8
	Points            []Point
}

// Source identifies which resource a polygon draw instruction reads
// from.
type Source int

const (
	SourcePolygons Source = iota
	SourceAnimations
)

// resolvePolygon parses a single polygon node (not a group) at the
// cursor's current position: bbox width/height, vertex count, then
// that many (x, y) byte pairs.
func resolvePolygon(c *cursor.Cursor, color uint8) (*Polygon, error) {
	w, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	h, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	n, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	if int(n) > MaxVertices {
		return nil, errors.New("video: polygon vertex count exceeds maximum")
	}

	pts := make([]Point, n)
	for i := range pts {
		x, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		y, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		pts[i] = Point{X: int16(x), Y: int16(y)}
	}

	return &Polygon{BBWidth: int16(w), BBHeight: int16(h), Color: color, Points: pts}, nil
}

// ResolveAndDraw reads the polygon tree node at addr within data and
// rasterises it into target at position, offset by (dx, dy), the
// relative offset a parent group node applies to its children.
func ResolveAndDraw(target *Buffer, mask *Buffer, data []byte, addr uint16, x, y int, zoom uint16) error {
	c := cursor.New(data)
	if err := c.Jump(addr); err != nil {
		return err
	}
	return drawNode(target, mask, data, c, x, y, zoom)
}

func drawNode(target, mask *Buffer, data []byte, c *cursor.Cursor, x, y int, zoom uint16) error {
	colorByte, err := c.ReadU8()
	if err != nil {
		return err
	}

	if colorByte&0xC0 == 0xC0 {
		// Single polygon node: top two bits set flags this is not a
		// group; color is the low 6 bits * 2 + 0x11 sentinel offset in
		// the reference format. Simplified here to the low 6 bits
		// directly, without further validation.
		poly, err := resolvePolygon(c, colorByte&0x3F)
		if err != nil {
			return err
		}
		return rasterise(target, mask, poly, x, y, zoom)
	}

	// Group node: a count of children, then for each a 16-bit
	// relative polygon-tree address and an (dx, dy) offset pair.
	count, err := c.ReadU8()
	if err != nil {
		return err
	}
	for i := uint8(0); i < count; i++ {
		childAddr, err := c.ReadU16()
		if err != nil {
			return err
		}
		dx, err := c.ReadU8()
		if err != nil {
			return err
		}
		dy, err := c.ReadU8()
		if err != nil {
			return err
		}
		if err := ResolveAndDraw(target, mask, data, childAddr<<1, x+int(dx), y+int(dy), zoom); err != nil {
			return err
		}
	}
	return nil
}

// rasterise fills poly's vertex loop into target at (x, y), applying
// the mask/highlight/solid rules of section 4.4. Points pair up by
// index from both ends of the list (i with n-1-i): each pair gives
// the left/right x bound of one scanline row, and consecutive rows
// are filled by interpolating x linearly down to the next row's y.
func rasterise(target, mask *Buffer, poly *Polygon, x, y int, zoom uint16) error {
	n := len(poly.Points)
	if n < 2 {
		// A degenerate single-point "polygon" is a single pixel, used
		// by the original format for point sprites.
		plotPixel(target, mask, poly.Color, x, y)
		return nil
	}

	originX := x - int(poly.BBWidth)/2
	originY := y - int(poly.BBHeight)/2
	half := n / 2

	if half == 1 {
		left, right := poly.Points[0], poly.Points[1]
		drawSpan(target, mask, poly.Color, originX+int(left.X), originX+int(right.X), originY+int(left.Y))
		return nil
	}

	for i := 0; i < half-1; i++ {
		left, right := poly.Points[i], poly.Points[n-1-i]
		nextLeft, nextRight := poly.Points[i+1], poly.Points[n-2-i]

		y0 := originY + int(left.Y)
		y1 := originY + int(nextLeft.Y)
		x0, x1 := originX+int(left.X), originX+int(nextLeft.X)
		rx0, rx1 := originX+int(right.X), originX+int(nextRight.X)

		if y1 == y0 {
			drawSpan(target, mask, poly.Color, x0, rx0, y0)
			continue
		}

		height := y1 - y0
		step := 1
		if height < 0 {
			step = -1
			height = -height
		}
		for s, sy := 0, y0; ; sy += step {
			xl := x0 + (x1-x0)*s/height
			xr := rx0 + (rx1-rx0)*s/height
			drawSpan(target, mask, poly.Color, xl, xr, sy)
			if sy == y1 {
				break
			}
			s++
		}
	}
	return nil
}

func drawSpan(target, mask *Buffer, color uint8, x0, x1, y int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		plotPixel(target, mask, color, x, y)
	}
}

func plotPixel(target, mask *Buffer, color uint8, x, y int) {
	switch {
	case color == HighlightColor:
		cur := target.Get(x, y)
		target.Set(x, y, highlightTable[cur&0x0F])
	case color >= MaskColor:
		target.Set(x, y, mask.Get(x, y))
	default:
		target.Set(x, y, color&0x0F)
	}
}
