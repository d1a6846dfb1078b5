// Package bake turns ordinary images into bit-packed bitmap assets.
//
// A Baker runs a small pipeline: optional scaling to a target size,
// grayscale conversion, then reduction to one bit per pixel by a fixed
// threshold, an Otsu-derived threshold, or Floyd-Steinberg dithering.
// The result is an fb.Bitmap in the paged layout the frame buffer
// blits directly.
package bake

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"
	"os"

	"github.com/anthonynsimon/bild/segment"
	"github.com/kovidgoyal/imaging"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/internal/logx"
	"github.com/pagefb/pagefb/scale"
	"github.com/pagefb/pagefb/scale/sdefault"
)

// Reduce selects how gray values collapse to single bits.
type Reduce uint8

const (
	// ReduceThreshold cuts at a fixed gray level.
	ReduceThreshold Reduce = iota
	// ReduceOtsu derives the cut from the image histogram.
	ReduceOtsu
	// ReduceDither diffuses the error over neighboring pixels.
	ReduceDither
)

func (r Reduce) String() string {
	switch r {
	case ReduceThreshold:
		return `threshold`
	case ReduceOtsu:
		return `otsu`
	case ReduceDither:
		return `dither`
	}
	return `unknown`
}

// Baker bakes images into bitmap assets.
type Baker struct {
	size   image.Point
	scaler scale.Scaler
	reduce Reduce
	level  uint8
	invert bool
	logger *slog.Logger
}

// New returns a Baker with the given options applied. Without options
// it keeps the source size and cuts at mid-gray.
func New(opts ...Option) (*Baker, error) {
	b := &Baker{
		reduce: ReduceThreshold,
		level:  0x80,
	}
	if err := b.SetOptions(opts...); err != nil {
		return nil, err
	}
	return b, nil
}

// Image bakes a single image with a throwaway Baker.
func Image(img image.Image, opts ...Option) (fb.Bitmap, error) {
	b, err := New(opts...)
	if err != nil {
		return fb.Bitmap{}, err
	}
	return b.Image(img)
}

// File decodes the image at path and bakes it. Decoders for the
// formats in use have to be registered by the caller.
func File(path string, opts ...Option) (fb.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return fb.Bitmap{}, errors.New(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fb.Bitmap{}, errors.New(err)
	}
	return Image(img, opts...)
}

// Image runs the pipeline on img and returns the packed bitmap.
func (b *Baker) Image(img image.Image) (fb.Bitmap, error) {
	if err := errors.NilReceiver(b); err != nil {
		return fb.Bitmap{}, err
	}
	if err := errors.NilParam(img); err != nil {
		return fb.Bitmap{}, err
	}
	if b.size.X > 0 && b.size.Y > 0 && b.size != img.Bounds().Size() {
		err := logx.TimeIt(func() error {
			m, err := b.scalerOrDefault().Scale(img, b.size)
			if err != nil {
				return err
			}
			img = m
			return nil
		}, `scale source`, b.logger, `size`, b.size)
		if err != nil {
			return fb.Bitmap{}, errors.New(err)
		}
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w < 1 || h < 1 {
		return fb.Bitmap{}, errors.New(fb.ErrSizeTooSmall)
	}
	if w > math.MaxInt16 || h > math.MaxInt16 {
		return fb.Bitmap{}, errors.Errorf(`source %dx%d exceeds bitmap coordinate range`, w, h)
	}
	var lit func(x, y int) bool
	switch b.reduce {
	case ReduceThreshold:
		lit = thresholdFunc(img, b.level)
	case ReduceOtsu:
		level := otsuLevel(imaging.Grayscale(img))
		logx.Debug(`otsu level`, b.logger, `level`, level)
		lit = thresholdFunc(img, level)
	case ReduceDither:
		lit = ditherFunc(img)
	default:
		return fb.Bitmap{}, errors.Errorf(`unknown reduction %d`, b.reduce)
	}
	bm, err := fb.NewBitmap(int16(w), int16(h), b.pack(lit, w, h))
	if err != nil {
		return fb.Bitmap{}, errors.New(err)
	}
	logx.Info(`baked bitmap`, b.logger, `size`, img.Bounds().Size(), `reduce`, b.reduce.String(), `invert`, b.invert)
	return bm, nil
}

func (b *Baker) scalerOrDefault() scale.Scaler {
	if b.scaler != nil {
		return b.scaler
	}
	return &sdefault.Scaler{}
}

// thresholdFunc reports pixels brighter than level as lit.
func thresholdFunc(img image.Image, level uint8) func(x, y int) bool {
	bw := segment.Threshold(img, level)
	return func(x, y int) bool { return bw.GrayAt(x, y).Y >= 0x80 }
}

// ditherFunc diffuses quantization error with the Floyd-Steinberg
// kernel over a two color palette.
func ditherFunc(img image.Image) func(x, y int) bool {
	pal := color.Palette{color.Black, color.White}
	dst := image.NewPaletted(img.Bounds(), pal)
	draw.FloydSteinberg.Draw(dst, img.Bounds(), img, img.Bounds().Min)
	min := img.Bounds().Min
	return func(x, y int) bool { return dst.ColorIndexAt(min.X+x, min.Y+y) == 1 }
}

// otsuLevel maximizes the between-class variance of the gray histogram
// and returns the lowest gray value of the foreground class, so that
// an inclusive cut at the result reproduces the Otsu split exactly.
func otsuLevel(m *image.NRGBA) uint8 {
	var hist [256]int
	bounds := m.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[m.NRGBAAt(x, y).R]++
		}
	}
	total := float64(bounds.Dx() * bounds.Dy())
	var sumAll float64
	for i, n := range hist {
		sumAll += float64(i) * float64(n)
	}
	var wB, sumB, best float64
	var level uint8
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sumAll - sumB) / wF
		v := wB * wF * (mB - mF) * (mB - mF)
		if v > best {
			best = v
			level = uint8(t)
		}
	}
	// level is the top background bin; foreground starts one above
	return level + 1
}

// pack folds lit pixels into the paged byte layout, bit 0 on top.
func (b *Baker) pack(lit func(x, y int) bool, w, h int) []byte {
	pages := (h + 7) / 8
	data := make([]byte, w*pages)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			on := lit(x, y)
			if b.invert {
				on = !on
			}
			if on {
				data[(y>>3)*w+x] |= 1 << (y & 7)
			}
		}
	}
	return data
}
