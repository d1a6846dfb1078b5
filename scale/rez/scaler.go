package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/pagefb/pagefb/scale"
)

// Scaler uses "github.com/bamiaux/rez". It only accepts the image
// types rez converts: YCbCr, RGBA, NRGBA and Gray.
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	if err := rez.Convert(m, img, rez.NewBilinearFilter()); err != nil {
		return nil, err
	}
	return m, nil
}
