package fonts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/fonts"
	"github.com/pagefb/pagefb/internal/testutil"
)

func TestGyver5x7Metrics(t *testing.T) {
	f := fonts.Gyver5x7
	require.NotNil(t, f)
	assert.Equal(t, int16(5), f.GlyphWidth())
	assert.Equal(t, int16(7), f.GlyphHeight())
	assert.Equal(t, int16(6), f.WidthTotal())
	assert.Equal(t, int16(8), f.HeightTotal())
}

func TestGyver5x7CoversFullRange(t *testing.T) {
	f := fonts.Gyver5x7
	for ch := fb.FontStartChar; ; ch++ {
		glyph := f.Glyph(ch)
		require.Len(t, glyph, 5, "char %d", ch)
		for col, b := range glyph {
			// only the low seven bits carry pixels
			assert.Zero(t, b&0x80, "char %d column %d", ch, col)
		}
		if ch == fb.FontEndChar {
			break
		}
	}
	assert.Nil(t, f.Glyph(fb.FontEndChar+1))
}

func TestGyver5x7Glyphs(t *testing.T) {
	f := fonts.Gyver5x7
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, f.Glyph(' '))
	assert.Equal(t, []byte{0x00, 0x00, 0x5f, 0x00, 0x00}, f.Glyph('!'))
	assert.Equal(t, []byte{0x7e, 0x11, 0x11, 0x11, 0x7e}, f.Glyph('A'))
}

func TestGyver5x7RendersA(t *testing.T) {
	_, v := testutil.NewBuffer(5, 7)
	c := fb.NewCanvas(v)
	c.SetFont(fonts.Gyver5x7)

	c.Text(`A`, true)
	assert.Equal(t, testutil.Art(`
		.###.
		#...#
		#...#
		#...#
		#####
		#...#
		#...#
	`), testutil.Render(v))
}
