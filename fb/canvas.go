package fb

// Mode selects the ink and coverage of rectangle and circle drawing.
// Bit 1 picks the ink (set or clear), bit 0 picks between filling the
// interior and tracing the 1-pixel border.
type Mode uint8

const (
	// ClearBorder traces the outline with cleared pixels.
	ClearBorder Mode = 0b00
	// Clear fills the interior with cleared pixels.
	Clear Mode = 0b01
	// FillBorder traces the outline with set pixels.
	FillBorder Mode = 0b10
	// Fill fills the interior with set pixels.
	Fill Mode = 0b11
)

func (m Mode) ink() bool    { return m&0b10 != 0 }
func (m Mode) filled() bool { return m&0b01 != 0 }

// Canvas wraps a frame view with a current font and cursor state and
// implements the drawing primitives. The font reference is always
// valid; construct with NewCanvas, not from the zero value.
type Canvas struct {
	frame   FrameView
	font    *Font
	cursorX int16
	cursorY int16

	// AutoNextLine makes Text wrap to a new line instead of dropping
	// the rest of the input when a character does not fit.
	AutoNextLine bool
}

// NewCanvas returns a canvas over v using the blank placeholder font
// with the cursor at the origin.
func NewCanvas(v FrameView) Canvas {
	return Canvas{frame: v, font: &blankFont}
}

// Frame returns the underlying frame view.
func (c *Canvas) Frame() FrameView { return c.frame }

// Font returns the current font.
func (c *Canvas) Font() *Font { return c.font }

// SetFont switches the current font. A nil font resets to the blank
// placeholder so the reference stays usable.
func (c *Canvas) SetFont(f *Font) {
	if f == nil {
		f = &blankFont
	}
	c.font = f
}

// Sub returns a canvas over a sub-region of this one, inheriting the
// current font with a fresh cursor at the origin.
func (c *Canvas) Sub(width, height, offsetX, offsetY int16) (Canvas, error) {
	v, err := c.frame.Sub(width, height, offsetX, offsetY)
	if err != nil {
		return Canvas{}, err
	}
	sub := NewCanvas(v)
	sub.font = c.font
	return sub, nil
}

// SubUnchecked is Sub without validation, for extents proven by the
// caller.
func (c *Canvas) SubUnchecked(width, height, offsetX, offsetY int16) Canvas {
	sub := NewCanvas(c.frame.SubUnchecked(width, height, offsetX, offsetY))
	sub.font = c.font
	return sub
}

// Width returns the frame width in pixels.
func (c *Canvas) Width() int16 { return c.frame.width }

// Height returns the frame height in pixels.
func (c *Canvas) Height() int16 { return c.frame.height }

func (c *Canvas) maxX() int16      { return c.frame.width - 1 }
func (c *Canvas) maxY() int16      { return c.frame.height - 1 }
func (c *Canvas) centerX() int16   { return c.maxX() / 2 }
func (c *Canvas) centerY() int16   { return c.maxY() / 2 }
func (c *Canvas) maxGlyphX() int16 { return c.frame.width - c.font.glyphWidth }
func (c *Canvas) maxGlyphY() int16 { return c.frame.height - c.font.glyphHeight }
func (c *Canvas) tabWidth() int16  { return c.font.WidthTotal() * 4 }

// Fill sets or clears the whole frame.
func (c *Canvas) Fill(on bool) { c.frame.Fill(on) }

// Dot sets or clears a single pixel, ignoring out-of-bounds
// coordinates.
func (c *Canvas) Dot(x, y int16, on bool) { c.frame.SetPixel(x, y, on) }

// Bitmap blits bm at (x, y), clipped to the frame.
func (c *Canvas) Bitmap(x, y int16, bm Bitmap, on bool) { c.frame.DrawBitmap(x, y, bm, on) }

// Line draws a straight segment between the endpoints using integer
// Bresenham stepping. Axis-aligned segments short-circuit to plain
// span draws.
func (c *Canvas) Line(x0, y0, x1, y1 int16, on bool) {
	if x0 == x1 {
		if y0 == y1 {
			c.Dot(x0, y0, on)
			return
		}
		c.lineVertical(x0, y0, y1, on)
		return
	}
	if y0 == y1 {
		c.lineHorizontal(x0, x1, y0, on)
		return
	}

	dx := int(x1) - int(x0)
	if dx < 0 {
		dx = -dx
	}
	dy := int(y0) - int(y1)
	if dy > 0 {
		dy = -dy
	}
	sx := int16(1)
	if x0 > x1 {
		sx = -1
	}
	sy := int16(1)
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		c.Dot(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the rectangle spanned by the two corners, in any corner
// order. Fill modes clip to the frame and fill through the
// page-granular path; border modes trace the outline writing each
// corner exactly once.
func (c *Canvas) Rect(x0, y0, x1, y1 int16, mode Mode) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	if mode.filled() {
		c.fillRect(x0, y0, x1, y1, mode.ink())
		return
	}

	c.lineHorizontal(x0, x1, y0, mode.ink())
	c.lineHorizontal(x0, x1, y1, mode.ink())
	for y := y0 + 1; y < y1; y++ {
		c.frame.SetPixel(x0, y, mode.ink())
		c.frame.SetPixel(x1, y, mode.ink())
	}
}

// fillRect clamps the corners to the frame, then fills the remaining
// extent through a sub-view. Fully off-frame rectangles vanish.
func (c *Canvas) fillRect(x0, y0, x1, y1 int16, on bool) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= c.frame.width {
		x1 = c.frame.width - 1
	}
	if y1 >= c.frame.height {
		y1 = c.frame.height - 1
	}
	if x1 < x0 || y1 < y0 {
		return
	}
	c.frame.SubUnchecked(x1-x0+1, y1-y0+1, x0, y0).Fill(on)
}

// Circle draws a circle of radius r around (cx, cy) with the midpoint
// algorithm: integer state only, the error term advanced by successive
// odd numbers. Points are plotted before the state steps, so r=0
// degenerates to the single center pixel.
func (c *Canvas) Circle(cx, cy, r int16, mode Mode) {
	x := r
	y := int16(0)
	err := 0

	for x >= y {
		if mode.filled() {
			c.lineHorizontal(cx-x, cx+x, cy-y, mode.ink())
			c.lineHorizontal(cx-x, cx+x, cy+y, mode.ink())
			if x != y {
				c.lineHorizontal(cx-y, cx+y, cy-x, mode.ink())
				c.lineHorizontal(cx-y, cx+y, cy+x, mode.ink())
			}
		} else {
			c.circlePoints(cx, cy, x, y, mode.ink())
		}

		y++
		err += 2*int(y) + 1
		if 2*(err-int(x))+1 > 0 {
			x--
			err -= 2*int(x) + 1
		}
	}
}

// circlePoints plots the 8-way symmetric reflections of (dx, dy)
// around (cx, cy). The set is symmetric in dx and dy, so it covers
// both octants of a midpoint step.
func (c *Canvas) circlePoints(cx, cy, dx, dy int16, on bool) {
	c.frame.SetPixel(cx+dx, cy+dy, on)
	c.frame.SetPixel(cx+dy, cy+dx, on)
	c.frame.SetPixel(cx-dy, cy+dx, on)
	c.frame.SetPixel(cx-dx, cy+dy, on)
	c.frame.SetPixel(cx-dx, cy-dy, on)
	c.frame.SetPixel(cx-dy, cy-dx, on)
	c.frame.SetPixel(cx+dy, cy-dx, on)
	c.frame.SetPixel(cx+dx, cy-dy, on)
}

// lineHorizontal draws the inclusive span [x0, x1] at row y, in either
// argument order.
func (c *Canvas) lineHorizontal(x0, x1, y int16, on bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.frame.SetPixel(x, y, on)
	}
}

// lineVertical draws the inclusive span [y0, y1] at column x, in
// either argument order.
func (c *Canvas) lineVertical(x, y0, y1 int16, on bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.frame.SetPixel(x, y, on)
	}
}
