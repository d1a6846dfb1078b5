// Package testutil renders framebuffers as ASCII art for golden
// comparisons and readable test failure output.
package testutil

import (
	"strings"

	"github.com/pagefb/pagefb/fb"
)

// NewBuffer returns a zeroed buffer for a width x height display and
// the root view over it.
func NewBuffer(width, height int16) ([]byte, fb.FrameView) {
	buf := make([]byte, int(width)*((int(height)+7)/8))
	v, err := fb.NewFrameView(buf, width, width, height, 0, 0)
	if err != nil {
		panic(err)
	}
	return buf, v
}

// Render draws v as one text line per pixel row, '#' for set pixels
// and '.' for clear ones.
func Render(v fb.FrameView) string {
	var sb strings.Builder
	for y := int16(0); y < v.Height(); y++ {
		for x := int16(0); x < v.Width(); x++ {
			if v.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderBitmap is Render for bitmap resources.
func RenderBitmap(bm fb.Bitmap) string {
	var sb strings.Builder
	for y := int16(0); y < bm.Height(); y++ {
		for x := int16(0); x < bm.Width(); x++ {
			if bm.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Art normalizes an indented raw-string pattern to Render output form:
// the first blank line and all per-line indentation are stripped.
func Art(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if line == `` {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
