// Package scale defines the image scaler used by the asset pipeline.
// Interchangeable implementations backed by different resampling
// libraries live in the subpackages; sdefault picks a sensible one for
// the build platform.
package scale

import (
	"image"
)

// Scaler resizes host-side images, typically before they are reduced
// to 1-bit framebuffer assets.
type Scaler interface {
	Scale(img image.Image, size image.Point) (image.Image, error)
}
