package fb

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	_ image.Image = FrameView{}
	_ draw.Image  = FrameView{}
)

// bitModel quantizes any color to black or white by gray luminance.
type bitModel struct{}

func (bitModel) Convert(c color.Color) color.Color {
	if colorOn(c) {
		return color.White
	}
	return color.Black
}

func colorOn(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}

// ColorModel returns the 1-bit black and white model.
func (v FrameView) ColorModel() color.Model { return bitModel{} }

// Bounds returns the view extent with the origin at (0, 0).
func (v FrameView) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(v.width), int(v.height))
}

// At reports the pixel at (x, y) as white (set) or black (clear).
// Together with Bounds and ColorModel this lets a view be read by any
// image.Image consumer, like the png or sixel encoders.
func (v FrameView) At(x, y int) color.Color {
	if v.Pixel(int16(x), int16(y)) {
		return color.White
	}
	return color.Black
}

// Set draws the pixel at (x, y), mapping c to on when its gray
// luminance is at least half scale. This makes a view a valid
// draw.Image destination, so image/draw compositing and
// draw.FloydSteinberg dithering can target the framebuffer directly.
func (v FrameView) Set(x, y int, c color.Color) {
	v.SetPixel(int16(x), int16(y), colorOn(c))
}
