// Package render encodes framebuffer views for host-side display:
// text renderings from block and braille characters, sixel streams,
// and plain raster images.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/errors"
)

// RGBA rasterizes v into a host image with pixelScale image pixels per
// framebuffer pixel, set pixels in on, clear pixels in off.
func RGBA(v fb.FrameView, pixelScale int, on, off color.Color) *image.NRGBA {
	if pixelScale < 1 {
		pixelScale = 1
	}
	w, h := int(v.Width()), int(v.Height())
	m := image.NewNRGBA(image.Rect(0, 0, w*pixelScale, h*pixelScale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := off
			if v.Pixel(int16(x), int16(y)) {
				c = on
			}
			for dy := 0; dy < pixelScale; dy++ {
				for dx := 0; dx < pixelScale; dx++ {
					m.Set(x*pixelScale+dx, y*pixelScale+dy, c)
				}
			}
		}
	}
	return m
}

// PNG writes v as a white-on-black PNG.
func PNG(w io.Writer, v fb.FrameView, pixelScale int) error {
	if err := png.Encode(w, RGBA(v, pixelScale, color.White, color.Black)); err != nil {
		return errors.New(err)
	}
	return nil
}
