package pagefb_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb"
	"github.com/pagefb/pagefb/fb"
)

func TestNewDisplay(t *testing.T) {
	d, err := pagefb.NewDisplay(16, 12)
	require.NoError(t, err)
	// 12 rows round up to two pages
	assert.Len(t, d.Bytes(), 32)
	assert.Equal(t, int16(16), d.Frame().Width())
	assert.Equal(t, int16(12), d.Frame().Height())

	_, err = pagefb.NewDisplay(0, 12)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)
	_, err = pagefb.NewDisplay(-1, 8)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)
	_, err = pagefb.NewDisplay(16, -1)
	assert.ErrorIs(t, err, fb.ErrSizeTooSmall)

	// 32767 rows are 4096 pages; the page count must not wrap in
	// 16-bit arithmetic.
	d, err = pagefb.NewDisplay(2, 32767)
	require.NoError(t, err)
	assert.Len(t, d.Bytes(), 8192)
	assert.Equal(t, int16(32767), d.Frame().Height())
}

func TestDisplayDrawAndClear(t *testing.T) {
	d, err := pagefb.NewDisplay(4, 4)
	require.NoError(t, err)

	d.Canvas().Rect(0, 0, 3, 3, fb.FillBorder)
	assert.Equal(t, "####\n#..#\n#..#\n####\n", d.String())
	assert.Equal(t, []byte{0x0f, 0x09, 0x09, 0x0f}, d.Bytes())

	d.Clear()
	assert.Equal(t, make([]byte, 4), d.Bytes())
}

// fakeDisplayer records SetPixel writes like a TinyGo driver would.
type fakeDisplayer struct {
	w, h      int16
	pixels    map[[2]int16]color.RGBA
	displayed int
	err       error
}

func newFakeDisplayer(w, h int16) *fakeDisplayer {
	return &fakeDisplayer{w: w, h: h, pixels: map[[2]int16]color.RGBA{}}
}

func (f *fakeDisplayer) Size() (int16, int16) { return f.w, f.h }

func (f *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) {
	f.pixels[[2]int16{x, y}] = c
}

func (f *fakeDisplayer) Display() error {
	f.displayed++
	return f.err
}

func TestPresent(t *testing.T) {
	d, err := pagefb.NewDisplay(4, 4)
	require.NoError(t, err)
	d.Canvas().Dot(1, 2, true)

	fake := newFakeDisplayer(4, 4)
	require.NoError(t, pagefb.Present(fake, d.Frame()))
	assert.Equal(t, 1, fake.displayed)
	assert.Len(t, fake.pixels, 16)

	on := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	off := color.RGBA{A: 0xff}
	assert.Equal(t, on, fake.pixels[[2]int16{1, 2}])
	assert.Equal(t, off, fake.pixels[[2]int16{0, 0}])
	assert.Equal(t, off, fake.pixels[[2]int16{3, 3}])
}

func TestPresentClipsToSmaller(t *testing.T) {
	d, err := pagefb.NewDisplay(8, 8)
	require.NoError(t, err)

	// a smaller panel only receives its own extent
	fake := newFakeDisplayer(4, 2)
	require.NoError(t, pagefb.Present(fake, d.Frame()))
	assert.Len(t, fake.pixels, 8)

	// a larger panel is clipped to the view
	fake = newFakeDisplayer(16, 16)
	require.NoError(t, pagefb.Present(fake, d.Frame()))
	assert.Len(t, fake.pixels, 64)
}

func TestPresentErrors(t *testing.T) {
	d, err := pagefb.NewDisplay(4, 4)
	require.NoError(t, err)

	assert.Error(t, pagefb.Present(nil, d.Frame()))

	fake := newFakeDisplayer(4, 4)
	fake.err = assert.AnError
	assert.ErrorIs(t, pagefb.Present(fake, d.Frame()), assert.AnError)
}
