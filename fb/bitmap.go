package fb

import (
	"github.com/pagefb/pagefb/internal/errors"
)

// Bitmap is an immutable bit-packed image resource in the same
// page/column/bit layout as the framebuffer: byte page*width+col holds
// rows [page*8, page*8+8) of column col, bit 0 at the top. The data
// slice is borrowed and must not be modified after creation.
type Bitmap struct {
	data   []byte
	width  int16
	height int16
}

// NewBitmap wraps data as a width x height bitmap. data must hold
// exactly width bytes for every started 8-row page of height.
func NewBitmap(width, height int16, data []byte) (Bitmap, error) {
	if width < 1 || height < 1 {
		return Bitmap{}, errors.New(ErrSizeTooSmall)
	}
	want := int(width) * ((int(height) + 7) / 8)
	if len(data) != want {
		return Bitmap{}, errors.Errorf(`bitmap data is %d bytes, want %d for %dx%d`, len(data), want, width, height)
	}
	return Bitmap{data: data, width: width, height: height}, nil
}

// MustBitmap is NewBitmap for static asset declarations; it panics on
// invalid input.
func MustBitmap(width, height int16, data []byte) Bitmap {
	bm, err := NewBitmap(width, height, data)
	if err != nil {
		panic(err)
	}
	return bm
}

// Width returns the bitmap width in pixels.
func (b Bitmap) Width() int16 { return b.width }

// Height returns the bitmap height in pixels.
func (b Bitmap) Height() int16 { return b.height }

// Data returns the backing bytes, not a copy.
func (b Bitmap) Data() []byte { return b.data }

func (b Bitmap) pages() int16 { return (b.height + 7) / 8 }

// Pixel reports the bit at (x, y), false outside the bitmap.
func (b Bitmap) Pixel(x, y int16) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.data[int(y>>3)*int(b.width)+int(x)]&(1<<(y&7)) != 0
}
