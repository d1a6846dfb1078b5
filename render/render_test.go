package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagefb/pagefb/internal/testutil"
	"github.com/pagefb/pagefb/render"
)

func TestHalfBlocks(t *testing.T) {
	_, v := testutil.NewBuffer(4, 4)
	v.SetPixel(0, 0, true)
	v.SetPixel(1, 1, true)
	v.SetPixel(2, 0, true)
	v.SetPixel(2, 1, true)

	assert.Equal(t, "▀▄█ \n    \n", render.HalfBlocks(v))
}

func TestHalfBlocksOddHeight(t *testing.T) {
	_, v := testutil.NewBuffer(2, 3)
	v.Fill(true)

	// the phantom fourth row below the frame reads as clear
	assert.Equal(t, "██\n▀▀\n", render.HalfBlocks(v))
}

func TestStyledHalfBlocks(t *testing.T) {
	_, v := testutil.NewBuffer(2, 2)
	v.SetPixel(0, 0, true)

	// the ascii profile strips all styling
	assert.Equal(t, render.HalfBlocks(v), render.StyledHalfBlocks(v, termenv.Ascii))

	styled := render.StyledHalfBlocks(v, termenv.ANSI)
	assert.Contains(t, styled, "▀")
	assert.Contains(t, styled, "\x1b[")
}

func TestBraille(t *testing.T) {
	_, v := testutil.NewBuffer(4, 4)
	for y := int16(0); y < 4; y++ {
		v.SetPixel(0, y, true)
	}
	v.SetPixel(3, 0, true)

	assert.Equal(t, "⡇⠈\n", render.Braille(v))

	v.Fill(true)
	assert.Equal(t, "⣿⣿\n", render.Braille(v))

	v.Fill(false)
	assert.Equal(t, "⠀⠀\n", render.Braille(v))
}

func TestRGBA(t *testing.T) {
	_, v := testutil.NewBuffer(3, 2)
	v.SetPixel(1, 0, true)

	on := color.NRGBA{R: 0xff, A: 0xff}
	off := color.NRGBA{B: 0xff, A: 0xff}
	m := render.RGBA(v, 2, on, off)

	assert.Equal(t, 6, m.Bounds().Dx())
	assert.Equal(t, 4, m.Bounds().Dy())
	// every image pixel of the scaled cell carries the same color
	assert.Equal(t, on, m.NRGBAAt(2, 0))
	assert.Equal(t, on, m.NRGBAAt(3, 1))
	assert.Equal(t, off, m.NRGBAAt(0, 0))
	assert.Equal(t, off, m.NRGBAAt(4, 3))
}

func TestRGBAScaleFloor(t *testing.T) {
	_, v := testutil.NewBuffer(2, 2)
	m := render.RGBA(v, 0, color.White, color.Black)
	assert.Equal(t, 2, m.Bounds().Dx())
	assert.Equal(t, 2, m.Bounds().Dy())
}

func TestPNGRoundTrip(t *testing.T) {
	_, v := testutil.NewBuffer(4, 4)
	v.SetPixel(2, 1, true)

	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, v, 1))

	m, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Bounds().Dx())
	assert.Equal(t, 4, m.Bounds().Dy())

	r, g, b, _ := m.At(2, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	r, g, b, _ = m.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestSixel(t *testing.T) {
	_, v := testutil.NewBuffer(8, 8)
	v.Fill(true)

	var buf bytes.Buffer
	require.NoError(t, render.Sixel(&buf, v, 1))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1bP"), "sixel stream starts with DCS")
	assert.Contains(t, out, "\x1b\\")
}
