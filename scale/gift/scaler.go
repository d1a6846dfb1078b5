package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/pagefb/pagefb/scale"
)

// Scaler uses "github.com/disintegration/gift"
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	gift.Resize(size.X, size.Y, gift.LanczosResampling).Draw(m, img, &gift.Options{Parallelization: true})
	return m, nil
}
