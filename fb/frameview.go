// Package fb implements a monochrome, bit-packed, paged framebuffer
// with bounds-checked windowing and page-granular drawing operations.
//
// The buffer layout matches SSD1306-class display controllers: the
// display is split into horizontal pages of 8 pixel rows, one byte per
// column per page, bit 0 of each byte at the top. A FrameView is a
// rectangular window onto such a buffer; a Canvas adds drawing
// primitives and cursor-driven text on top of it.
package fb

import (
	"github.com/pagefb/pagefb/internal/errors"
)

// FrameView is a rectangular, offset-and-size-bounded window onto a
// shared paged byte buffer. It owns no memory, only addressing state;
// copies and sub-views alias the same bytes, which is intentional.
// The zero value is unusable, construct with NewFrameView.
type FrameView struct {
	buf     []byte
	stride  int16
	width   int16
	height  int16
	offsetX int16
	offsetY int16
}

// NewFrameView returns a view of the given size at the given offset
// over buf. stride is the byte width of one buffer page row, normally
// the full physical display width. The buffer is borrowed, never
// copied; the caller must keep it alive while any derived view exists.
func NewFrameView(buf []byte, stride, width, height, offsetX, offsetY int16) (FrameView, error) {
	if width < 1 || height < 1 {
		return FrameView{}, errors.New(ErrSizeTooSmall)
	}
	if len(buf) == 0 {
		return FrameView{}, errors.New(ErrBufferNotInit)
	}
	return NewFrameViewUnchecked(buf, stride, width, height, offsetX, offsetY), nil
}

// NewFrameViewUnchecked is NewFrameView without validation, for
// callers that have already proven the arguments.
func NewFrameViewUnchecked(buf []byte, stride, width, height, offsetX, offsetY int16) FrameView {
	return FrameView{
		buf:     buf,
		stride:  stride,
		width:   width,
		height:  height,
		offsetX: offsetX,
		offsetY: offsetY,
	}
}

// Sub returns a child view of the given size at the given offset
// inside v, addressing the same backing bytes. Nesting is associative:
// chained Sub calls resolve to the same absolute pixels as one call
// with the combined offsets.
func (v FrameView) Sub(width, height, offsetX, offsetY int16) (FrameView, error) {
	if offsetX >= v.width || offsetY >= v.height {
		return FrameView{}, errors.New(ErrOffsetOutOfBounds)
	}
	if width > v.width-offsetX || height > v.height-offsetY {
		return FrameView{}, errors.New(ErrSizeTooLarge)
	}
	return NewFrameView(v.buf, v.stride, width, height, v.offsetX+offsetX, v.offsetY+offsetY)
}

// SubUnchecked is Sub without validation, used where the child extent
// is proven by construction, as in the canvas split helpers.
func (v FrameView) SubUnchecked(width, height, offsetX, offsetY int16) FrameView {
	return NewFrameViewUnchecked(v.buf, v.stride, width, height, v.offsetX+offsetX, v.offsetY+offsetY)
}

// Width returns the view width in pixels.
func (v FrameView) Width() int16 { return v.width }

// Height returns the view height in pixels.
func (v FrameView) Height() int16 { return v.height }

// Stride returns the byte width of one buffer page row.
func (v FrameView) Stride() int16 { return v.stride }

// OffsetX returns the view's horizontal offset in the buffer.
func (v FrameView) OffsetX() int16 { return v.offsetX }

// OffsetY returns the view's vertical offset in the buffer.
func (v FrameView) OffsetY() int16 { return v.offsetY }

// Bytes returns the backing buffer shared by all views derived from
// it, for handing to a display transport.
func (v FrameView) Bytes() []byte { return v.buf }

func (v FrameView) absX(x int16) int16 { return v.offsetX + x }
func (v FrameView) absY(y int16) int16 { return v.offsetY + y }

func pageOf(absY int16) int16   { return absY >> 3 }
func bitmaskOf(absY int16) byte { return 1 << (absY & 7) }

// SetPixel sets or clears the pixel at (x, y). Out-of-bounds
// coordinates are ignored.
func (v FrameView) SetPixel(x, y int16, on bool) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return
	}
	absY := v.absY(y)
	v.writeData(v.absX(x), pageOf(absY), bitmaskOf(absY), on)
}

// Pixel reports whether the pixel at (x, y) is set. Out-of-bounds
// coordinates read as false.
func (v FrameView) Pixel(x, y int16) bool {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return false
	}
	absY := v.absY(y)
	idx := int(pageOf(absY))*int(v.stride) + int(v.absX(x))
	if idx < 0 || idx >= len(v.buf) {
		return false
	}
	return v.buf[idx]&bitmaskOf(absY) != 0
}

// Fill sets or clears every pixel of the view. It works page by page
// with range masks instead of touching pixels one by one, so the cost
// is O(pages * width) rather than O(width * height).
func (v FrameView) Fill(on bool) {
	startPage := pageOf(v.offsetY)
	endPage := pageOf(v.offsetY + v.height + 6)
	for page := startPage; page <= endPage; page++ {
		mask := v.pageMaskFor(page)
		if mask == 0 {
			continue
		}
		for x := int16(0); x < v.width; x++ {
			absX := v.offsetX + x
			if absX < 0 || absX >= v.stride {
				continue
			}
			v.writeData(absX, page, mask, on)
		}
	}
}

// PageMask returns a byte with the inclusive bit range
// [startBit, endBit] set, or 0 when startBit is negative or
// exceeds endBit. endBit is clamped to bit 7.
func PageMask(startBit, endBit int16) byte {
	if startBit < 0 || startBit > endBit {
		return 0
	}
	if endBit > 7 {
		endBit = 7
	}
	return byte((1<<(endBit+1) - 1) ^ (1<<startBit - 1))
}

// pageMaskFor intersects the view's vertical extent with the 8 rows of
// the given buffer page and returns the bit mask for the overlap.
func (v FrameView) pageMaskFor(page int16) byte {
	pageTop := page * 8
	visibleTop := v.offsetY
	if pageTop > visibleTop {
		visibleTop = pageTop
	}
	visibleBottom := v.offsetY + v.height
	if pageTop+8 < visibleBottom {
		visibleBottom = pageTop + 8
	}
	if visibleTop >= visibleBottom {
		return 0
	}
	return PageMask(visibleTop-pageTop, visibleBottom-pageTop-1)
}

// DrawBitmap blits bm with its top left corner at (x, y), clipped to
// the view. The vertical offset need not be page-aligned: when it is
// not a multiple of 8, every source byte straddles two buffer pages
// and both halves are written.
func (v FrameView) DrawBitmap(x, y int16, bm Bitmap, on bool) {
	for pageIdx := int16(0); pageIdx < bm.pages(); pageIdx++ {
		pageY := v.absY(y) + pageIdx*8
		if pageY+7 < v.offsetY || pageY >= v.offsetY+v.height {
			continue
		}
		mask := v.bitmapMask(pageY)
		for bx := int16(0); bx < bm.width; bx++ {
			targetX := v.absX(x) + bx
			if targetX < v.offsetX || targetX >= v.offsetX+v.width {
				continue
			}
			data := bm.data[int(pageIdx)*int(bm.width)+int(bx)] & mask
			if data == 0 {
				continue
			}
			v.writeBitmapData(targetX, pageY, data, on)
		}
	}
}

// bitmapMask clips one source page against the view's top and bottom
// edges. pageY is the absolute buffer row of the source page's bit 0.
func (v FrameView) bitmapMask(pageY int16) byte {
	var clipTop int16
	if pageY < v.offsetY {
		clipTop = v.offsetY - pageY
	}
	clipBottom := int16(7)
	if pageY+7 >= v.offsetY+v.height {
		clipBottom = v.offsetY + v.height - pageY - 1
	}
	return PageMask(clipTop, clipBottom)
}

// writeBitmapData writes one masked source byte at absolute column
// absX, top row pageY, splitting across two pages when pageY is not
// page-aligned.
func (v FrameView) writeBitmapData(absX, pageY int16, data byte, on bool) {
	page := pageY >> 3
	offset := pageY & 7
	if offset == 0 {
		v.writeData(absX, page, data, on)
		return
	}
	v.writeData(absX, page, data<<offset, on)
	v.writeData(absX, page+1, data>>(8-offset), on)
}

// writeData ORs the mask into the addressed byte or ANDs its inverse
// out. Indexes outside the buffer are dropped, keeping partially
// off-buffer views safe.
func (v FrameView) writeData(absX, page int16, mask byte, on bool) {
	idx := int(page)*int(v.stride) + int(absX)
	if idx < 0 || idx >= len(v.buf) {
		return
	}
	if on {
		v.buf[idx] |= mask
	} else {
		v.buf[idx] &^= mask
	}
}
