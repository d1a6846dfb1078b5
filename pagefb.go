// Package pagefb bundles the frame buffer core with convenience
// constructors for the common single-display case.
package pagefb

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/errors"
)

// Display owns one full-size frame buffer and the canvas drawing on
// it.
type Display struct {
	buf    []byte
	view   fb.FrameView
	canvas fb.Canvas
}

// NewDisplay allocates a frame buffer for a width x height panel,
// height rounded up to whole 8-row pages.
func NewDisplay(width, height int16) (*Display, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(fb.ErrSizeTooSmall)
	}
	buf := make([]byte, int(width)*((int(height)+7)/8))
	view, err := fb.NewFrameView(buf, width, width, height, 0, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	return &Display{buf: buf, view: view, canvas: fb.NewCanvas(view)}, nil
}

// Canvas ...
func (d *Display) Canvas() *fb.Canvas { return &d.canvas }

// Frame ...
func (d *Display) Frame() fb.FrameView { return d.view }

// Bytes returns the raw page bytes in display write order, ready for
// a data transfer to an SSD1306 class controller.
func (d *Display) Bytes() []byte { return d.buf }

// Clear ...
func (d *Display) Clear() { d.view.Fill(false) }

// String renders the buffer as '#' and '.' rows for debugging.
func (d *Display) String() string {
	var sb strings.Builder
	for y := int16(0); y < d.view.Height(); y++ {
		for x := int16(0); x < d.view.Width(); x++ {
			if d.view.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Present pushes v to a TinyGo display driver pixel by pixel and
// flushes it. The transferred region is clipped to the smaller of the
// view and the driver.
func Present(d drivers.Displayer, v fb.FrameView) error {
	if err := errors.NilParam(d); err != nil {
		return err
	}
	w, h := d.Size()
	if w > v.Width() {
		w = v.Width()
	}
	if h > v.Height() {
		h = v.Height()
	}
	on := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	off := color.RGBA{A: 0xff}
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			c := off
			if v.Pixel(x, y) {
				c = on
			}
			d.SetPixel(x, y, c)
		}
	}
	if err := d.Display(); err != nil {
		return errors.New(err)
	}
	return nil
}
