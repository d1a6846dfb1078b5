package render

import (
	"image/color"
	"io"

	"github.com/mattn/go-sixel"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/errors"
)

// Sixel writes v as a white-on-black sixel stream for terminals with
// sixel support.
func Sixel(w io.Writer, v fb.FrameView, pixelScale int) error {
	if err := sixel.NewEncoder(w).Encode(RGBA(v, pixelScale, color.White, color.Black)); err != nil {
		return errors.New(err)
	}
	return nil
}
