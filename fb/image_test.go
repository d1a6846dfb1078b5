package fb_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb/internal/testutil"
)

func TestFrameViewAsImage(t *testing.T) {
	_, v := testutil.NewBuffer(6, 4)
	v.SetPixel(1, 2, true)
	v.SetPixel(3, 1, true)

	assert.Equal(t, image.Rect(0, 0, 6, 4), v.Bounds())
	assert.Equal(t, color.White, v.At(1, 2))
	assert.Equal(t, color.Black, v.At(0, 0))

	// outside the view everything reads black
	assert.Equal(t, color.Black, v.At(-1, 0))
	assert.Equal(t, color.Black, v.At(6, 3))

	// the model cuts at half scale gray
	cm := v.ColorModel()
	assert.Equal(t, color.White, cm.Convert(color.Gray{Y: 0x80}))
	assert.Equal(t, color.Black, cm.Convert(color.Gray{Y: 0x7f}))
	assert.Equal(t, color.White, cm.Convert(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))

	// a sub view is an image over its own region
	sub, err := v.Sub(2, 2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), sub.Bounds())
	assert.Equal(t, color.White, sub.At(0, 0))
	assert.Equal(t, color.Black, sub.At(1, 1))
}

func TestFrameViewAsDrawTarget(t *testing.T) {
	_, v := testutil.NewBuffer(6, 4)

	v.Set(0, 0, color.Gray{Y: 0xff})
	assert.True(t, v.Pixel(0, 0))
	v.Set(0, 0, color.Gray{Y: 0x10})
	assert.False(t, v.Pixel(0, 0))

	draw.Draw(v, image.Rect(1, 1, 4, 3), image.NewUniform(color.White), image.Point{}, draw.Src)
	assert.Equal(t, testutil.Art(`
		......
		.###..
		.###..
		......
	`), testutil.Render(v))

	draw.Draw(v, image.Rect(2, 1, 3, 2), image.NewUniform(color.Black), image.Point{}, draw.Src)
	assert.Equal(t, testutil.Art(`
		......
		.#.#..
		.###..
		......
	`), testutil.Render(v))
}

func TestFloydSteinbergIntoFrameView(t *testing.T) {
	// pure white and pure black quantize without error, so the dither
	// result is exact
	_, v := testutil.NewBuffer(4, 4)
	draw.FloydSteinberg.Draw(v, v.Bounds(), image.NewUniform(color.White), image.Point{})
	for y := int16(0); y < 4; y++ {
		for x := int16(0); x < 4; x++ {
			if !v.Pixel(x, y) {
				t.Fatalf(`pixel %d,%d not set`, x, y)
			}
		}
	}
	draw.FloydSteinberg.Draw(v, v.Bounds(), image.NewUniform(color.Black), image.Point{})
	for y := int16(0); y < 4; y++ {
		for x := int16(0); x < 4; x++ {
			if v.Pixel(x, y) {
				t.Fatalf(`pixel %d,%d still set`, x, y)
			}
		}
	}
}
