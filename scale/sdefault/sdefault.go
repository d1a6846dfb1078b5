package sdefault

import (
	"image"
	"runtime"

	"github.com/pagefb/pagefb/scale"
	"github.com/pagefb/pagefb/scale/rez"
	"github.com/pagefb/pagefb/scale/xdraw"
)

// Scaler picks a platform default: SIMD-assisted rez on amd64 for the
// image types it supports, x/image/draw ApproxBiLinear everywhere
// else.
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Scale(img, size)
	}
	switch img.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
		m, err := (&rez.Scaler{}).Scale(img, size)
		if err == nil {
			return m, nil
		}
	}
	return xdraw.ApproxBiLinear().Scale(img, size)
}
