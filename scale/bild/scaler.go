package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/pagefb/pagefb/scale"
)

// Scaler uses "github.com/anthonynsimon/bild/transform"
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	m := transform.Resize(img, size.X, size.Y, transform.Lanczos)
	return m, nil
}
