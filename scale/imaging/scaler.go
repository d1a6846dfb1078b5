package imaging

import (
	"image"

	"github.com/kovidgoyal/imaging"

	"github.com/pagefb/pagefb/scale"
)

// Scaler uses "github.com/kovidgoyal/imaging"
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos), nil
}
