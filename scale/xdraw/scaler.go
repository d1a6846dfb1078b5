// Package xdraw provides a scaler implementation using golang.org/x/image/draw.
// ApproxBiLinear is recommended for balanced speed/quality scaling.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/pagefb/pagefb/scale"
)

// scaler uses "golang.org/x/image/draw"
type scaler struct {
	kernel draw.Scaler
}

var _ scale.Scaler = (*scaler)(nil)

// ApproxBiLinear creates a scaler with ApproxBiLinear resampling (balanced speed/quality).
func ApproxBiLinear() scale.Scaler {
	return &scaler{kernel: draw.ApproxBiLinear}
}

// BiLinear creates a scaler with BiLinear resampling (higher quality, slower).
func BiLinear() scale.Scaler {
	return &scaler{kernel: draw.BiLinear}
}

// CatmullRom creates a scaler with CatmullRom resampling (highest quality, slowest).
func CatmullRom() scale.Scaler {
	return &scaler{kernel: draw.CatmullRom}
}

// Scale resizes img to the target size with the configured kernel.
func (s *scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	s.kernel.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst, nil
}
