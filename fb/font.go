package fb

import (
	"github.com/pagefb/pagefb/internal/errors"
)

// Character range covered by every font table.
const (
	FontStartChar byte = 32
	FontEndChar   byte = 127
)

// Font is an immutable fixed-cell glyph table covering the printable
// ASCII range. Glyph data is one byte per column, bit 0 at the top;
// only the low GlyphHeight bits of each column are significant. A font
// without data renders every character as a placeholder box.
type Font struct {
	data        []byte
	glyphWidth  int16
	glyphHeight int16
}

var blankFont = Font{glyphWidth: 3, glyphHeight: 5}

// BlankFont returns the placeholder-only font a canvas uses before a
// real font is set.
func BlankFont() *Font { return &blankFont }

// NewFont builds a font over a glyph table covering the codes
// FontStartChar through FontEndChar. glyphHeight is a row count of
// 1 to 8, so one glyph row fits a single buffer page.
func NewFont(data []byte, glyphWidth, glyphHeight int16) (*Font, error) {
	if glyphWidth < 1 || glyphHeight < 1 {
		return nil, errors.New(ErrSizeTooSmall)
	}
	if glyphHeight > 8 {
		return nil, errors.Errorf(`glyph height %d exceeds one page`, glyphHeight)
	}
	want := int(FontEndChar-FontStartChar+1) * int(glyphWidth)
	if len(data) != want {
		return nil, errors.Errorf(`font table is %d bytes, want %d for glyph width %d`, len(data), want, glyphWidth)
	}
	return &Font{data: data, glyphWidth: glyphWidth, glyphHeight: glyphHeight}, nil
}

// MustFont is NewFont for static asset declarations; it panics on
// invalid input.
func MustFont(data []byte, glyphWidth, glyphHeight int16) *Font {
	f, err := NewFont(data, glyphWidth, glyphHeight)
	if err != nil {
		panic(err)
	}
	return f
}

// GlyphWidth returns the glyph cell width in pixels.
func (f *Font) GlyphWidth() int16 { return f.glyphWidth }

// GlyphHeight returns the glyph cell height in pixels.
func (f *Font) GlyphHeight() int16 { return f.glyphHeight }

// WidthTotal is the horizontal advance per character: the glyph cell
// plus the separator column.
func (f *Font) WidthTotal() int16 { return f.glyphWidth + 1 }

// HeightTotal is the line advance: the glyph cell plus the separator
// row.
func (f *Font) HeightTotal() int16 { return f.glyphHeight + 1 }

// Glyph returns the column data for ch, or nil when ch lies outside
// the font range or the font has no data.
func (f *Font) Glyph(ch byte) []byte {
	if f.data == nil || ch < FontStartChar || ch > FontEndChar {
		return nil
	}
	start := int(ch-FontStartChar) * int(f.glyphWidth)
	return f.data[start : start+int(f.glyphWidth)]
}
