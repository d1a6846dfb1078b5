package fb

// Text control bytes, chosen outside the printable font range.
const (
	// TextInkOn switches back to normal video.
	TextInkOn byte = 0x80
	// TextInkOff switches to inverse video.
	TextInkOff byte = 0x81
	// TextCenter jumps the cursor to the horizontal frame center,
	// clearing the skipped segment first.
	TextCenter byte = 0x82
)

// inkState is the text renderer's video mode.
type inkState uint8

const (
	inkNormal inkState = iota
	inkInverted
)

// ink returns the effective drawing ink for lit glyph bits.
func (s inkState) ink() bool { return s == inkNormal }

// SetCursor places the text cursor.
func (c *Canvas) SetCursor(x, y int16) {
	c.cursorX = x
	c.cursorY = y
}

// Cursor returns the text cursor position.
func (c *Canvas) Cursor() (x, y int16) { return c.cursorX, c.cursorY }

// Text renders s at the cursor with the current font, advancing the
// cursor as it goes. on selects the initial video mode; the TextInkOn,
// TextInkOff and TextCenter control bytes switch modes mid-stream.
// '\n' clears the rest of the line and starts the next one, '\t'
// advances to the next tab stop clearing the skipped segment. A
// character that does not fit the line stops rendering, or wraps first
// when AutoNextLine is set; a line that does not fit the frame always
// stops it.
func (c *Canvas) Text(s string, on bool) {
	state := inkNormal
	if !on {
		state = inkInverted
	}

	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case TextInkOn:
			state = inkNormal
		case TextInkOff:
			state = inkInverted
		case TextCenter:
			newX := c.centerX()
			c.clearLineSegment(newX, state.ink())
			c.cursorX = newX
		case '\n':
			c.clearLineSegment(c.maxX(), state.ink())
			c.nextLine()
		case '\t':
			tw := c.tabWidth()
			newX := (c.cursorX/tw + 1) * tw
			c.clearLineSegment(newX, state.ink())
			c.cursorX = newX
		default:
			if !c.printChar(ch, state.ink()) {
				return
			}
		}
	}
}

// printChar renders one ordinary character and advances the cursor.
// It reports false when rendering must stop for good.
func (c *Canvas) printChar(ch byte, ink bool) bool {
	if c.cursorX > c.maxGlyphX() {
		c.clearLineSegment(c.maxX(), ink)
		if !c.AutoNextLine {
			return false
		}
		c.nextLine()
	}
	if c.cursorY > c.maxGlyphY() {
		return false
	}

	c.drawGlyph(c.cursorX, c.cursorY, c.font.Glyph(ch), ink)
	c.cursorX += c.font.glyphWidth

	if c.cursorX < c.frame.width {
		c.lineVertical(c.cursorX, c.cursorY, c.cursorY+c.font.glyphHeight, !ink)
	}
	c.cursorX++
	return true
}

// drawGlyph renders one glyph cell opaquely: lit bits in the ink,
// unlit bits in its inverse. A missing glyph renders as an outlined
// placeholder box.
func (c *Canvas) drawGlyph(x, y int16, glyph []byte, ink bool) {
	if glyph == nil {
		mode := ClearBorder
		if ink {
			mode = FillBorder
		}
		c.Rect(x, y, x+c.font.glyphWidth-1, y+c.font.glyphHeight-1, mode)
		return
	}

	mask := byte(1<<c.font.glyphHeight - 1)
	for col := int16(0); col < c.font.glyphWidth; col++ {
		bits := glyph[col] & mask
		for bit := int16(0); bit < c.font.glyphHeight; bit++ {
			lit := bits&(1<<bit) != 0
			c.frame.SetPixel(x+col, y+bit, lit == ink)
		}
	}
}

// clearLineSegment paints the glyph band from the cursor through
// column x in the current background. A cursor already past x leaves
// the buffer alone.
func (c *Canvas) clearLineSegment(x int16, ink bool) {
	if x < c.cursorX {
		return
	}
	mode := Fill
	if ink {
		mode = Clear
	}
	c.Rect(c.cursorX, c.cursorY, x, c.cursorY+c.font.glyphHeight, mode)
}

// nextLine moves the cursor to the start of the next text line.
func (c *Canvas) nextLine() {
	c.cursorX = 0
	c.cursorY += c.font.HeightTotal()
}
