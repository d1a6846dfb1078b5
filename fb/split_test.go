package fb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/testutil"
)

func TestSplitHorizontallyWidths(t *testing.T) {
	_, v := testutil.NewBuffer(16, 8)
	c := fb.NewCanvas(v)

	parts := c.SplitHorizontally(1, 1, 1)
	require.Len(t, parts, 3)
	// 16/3 truncates to 5, the leftover pixel goes to the first child
	assert.Equal(t, int16(6), parts[0].Width())
	assert.Equal(t, int16(5), parts[1].Width())
	assert.Equal(t, int16(5), parts[2].Width())
	var sum int16
	for i := range parts {
		assert.Equal(t, int16(8), parts[i].Height())
		sum += parts[i].Width()
	}
	assert.Equal(t, c.Width(), sum)

	parts[1].Fill(true)
	for x := int16(0); x < 16; x++ {
		want := x >= 6 && x < 11
		assert.Equal(t, want, v.Pixel(x, 4), "column %d", x)
	}
}

func TestSplitVerticallyHeights(t *testing.T) {
	_, v := testutil.NewBuffer(16, 24)
	c := fb.NewCanvas(v)

	parts := c.SplitVertically(1, 2)
	require.Len(t, parts, 2)
	assert.Equal(t, int16(8), parts[0].Height())
	assert.Equal(t, int16(16), parts[1].Height())

	parts[1].Fill(true)
	assert.False(t, v.Pixel(3, 7))
	assert.True(t, v.Pixel(3, 8))
	assert.True(t, v.Pixel(3, 23))
}

func TestSplitWeightsProportional(t *testing.T) {
	_, v := testutil.NewBuffer(16, 8)
	c := fb.NewCanvas(v)

	parts := c.SplitHorizontally(3, 1)
	require.Len(t, parts, 2)
	assert.Equal(t, int16(12), parts[0].Width())
	assert.Equal(t, int16(4), parts[1].Width())
}

func TestSplitRemainderRoundRobin(t *testing.T) {
	_, v := testutil.NewBuffer(10, 8)
	c := fb.NewCanvas(v)

	parts := c.SplitHorizontally(1, 1, 1, 1)
	require.Len(t, parts, 4)
	widths := make([]int16, len(parts))
	for i := range parts {
		widths[i] = parts[i].Width()
	}
	assert.Equal(t, []int16{3, 3, 2, 2}, widths)
}

func TestSplitNonPositiveWeights(t *testing.T) {
	_, v := testutil.NewBuffer(10, 8)
	c := fb.NewCanvas(v)

	parts := c.SplitHorizontally(0, -3)
	require.Len(t, parts, 2)
	assert.Equal(t, int16(5), parts[0].Width())
	assert.Equal(t, int16(5), parts[1].Width())
}

func TestSplitNoWeights(t *testing.T) {
	_, v := testutil.NewBuffer(10, 8)
	c := fb.NewCanvas(v)
	assert.Empty(t, c.SplitHorizontally())
	assert.Empty(t, c.SplitVertically())
}

func TestSplitChildrenInheritFont(t *testing.T) {
	_, v := testutil.NewBuffer(16, 8)
	c := fb.NewCanvas(v)
	f := testFont(t)
	c.SetFont(f)
	c.SetCursor(9, 3)

	parts := c.SplitVertically(1, 1)
	require.Len(t, parts, 2)
	for i := range parts {
		assert.Same(t, f, parts[i].Font())
		x, y := parts[i].Cursor()
		assert.Equal(t, int16(0), x)
		assert.Equal(t, int16(0), y)
	}
}

func TestSplitChildrenClipIndependently(t *testing.T) {
	_, v := testutil.NewBuffer(16, 8)
	c := fb.NewCanvas(v)

	parts := c.SplitHorizontally(1, 1)
	// drawing past the first child's edge must not bleed into the second
	parts[0].Line(0, 2, 15, 2, true)
	for x := int16(0); x < 16; x++ {
		assert.Equal(t, x < 8, v.Pixel(x, 2), "column %d", x)
	}
}
