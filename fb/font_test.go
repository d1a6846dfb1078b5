package fb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb/fb"
)

func fontTable(glyphWidth int) []byte {
	return make([]byte, int(fb.FontEndChar-fb.FontStartChar+1)*glyphWidth)
}

func TestNewFontValidation(t *testing.T) {
	_, err := fb.NewFont(fontTable(3), 3, 5)
	assert.NoError(t, err)

	_, err = fb.NewFont(fontTable(3), 0, 5)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)
	_, err = fb.NewFont(fontTable(3), 3, 0)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)

	// one glyph row has to fit a single page
	_, err = fb.NewFont(fontTable(3), 3, 9)
	assert.Error(t, err)

	_, err = fb.NewFont(fontTable(3)[:10], 3, 5)
	assert.Error(t, err)
	_, err = fb.NewFont(fontTable(4), 3, 5)
	assert.Error(t, err)
}

func TestMustFont(t *testing.T) {
	assert.NotPanics(t, func() { fb.MustFont(fontTable(2), 2, 7) })
	assert.Panics(t, func() { fb.MustFont(nil, 2, 7) })
}

func TestFontMetrics(t *testing.T) {
	f, err := fb.NewFont(fontTable(5), 5, 7)
	require.NoError(t, err)
	assert.Equal(t, int16(5), f.GlyphWidth())
	assert.Equal(t, int16(7), f.GlyphHeight())
	assert.Equal(t, int16(6), f.WidthTotal())
	assert.Equal(t, int16(8), f.HeightTotal())
}

func TestFontGlyphLookup(t *testing.T) {
	data := fontTable(2)
	for i := range data {
		data[i] = byte(i)
	}
	f, err := fb.NewFont(data, 2, 8)
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 1}, f.Glyph(fb.FontStartChar))
	assert.Equal(t, []byte{2, 3}, f.Glyph(fb.FontStartChar+1))
	last := int(fb.FontEndChar-fb.FontStartChar) * 2
	assert.Equal(t, []byte{byte(last), byte(last + 1)}, f.Glyph(fb.FontEndChar))

	assert.Nil(t, f.Glyph(fb.FontStartChar-1))
	assert.Nil(t, f.Glyph(fb.FontEndChar+1))
	assert.Nil(t, f.Glyph(0xff))
}

func TestBlankFont(t *testing.T) {
	f := fb.BlankFont()
	require.NotNil(t, f)
	assert.Same(t, f, fb.BlankFont())
	assert.Equal(t, int16(3), f.GlyphWidth())
	assert.Equal(t, int16(5), f.GlyphHeight())
	assert.Nil(t, f.Glyph('A'))
}
