package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/pagefb/pagefb/scale"
)

// Scaler uses "github.com/nfnt/resize"
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return m, nil
}
