// Seam Carving for Content-Aware Image Resizing
package caire

import (
	"image"
	"image/draw"

	"github.com/esimov/caire"

	"github.com/pagefb/pagefb/scale"
)

// Scaler uses "github.com/esimov/caire"
type Scaler struct{}

var _ scale.Scaler = (*Scaler)(nil)

// Scale ...
func (s *Scaler) Scale(img image.Image, size image.Point) (image.Image, error) {
	p := &caire.Processor{
		BlurRadius:     1, // or ie. 4
		SobelThreshold: 4, // or ie. 2
		NewWidth:       size.X,
		NewHeight:      size.Y,
		FaceDetect:     true,
		ShapeType:      "circle",
	}
	nimg, ok := img.(*image.NRGBA)
	if !ok {
		b := img.Bounds()
		nimg = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nimg, nimg.Bounds(), img, b.Min, draw.Src)
	}
	return p.Resize(nimg)
}
