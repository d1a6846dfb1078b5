package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/pagefb/pagefb/fb"
)

// HalfBlocks renders v with two pixel rows per text line using the
// half block characters, suitable for dumping a framebuffer into a
// terminal or a test log.
func HalfBlocks(v fb.FrameView) string {
	var sb strings.Builder
	for y := int16(0); y < v.Height(); y += 2 {
		sb.WriteString(halfBlockRow(v, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StyledHalfBlocks is HalfBlocks with every line styled white on black
// through the given termenv profile, so the framebuffer keeps its
// appearance on light terminals.
func StyledHalfBlocks(v fb.FrameView, profile termenv.Profile) string {
	fg := profile.Color(`15`)
	bg := profile.Color(`0`)
	var sb strings.Builder
	for y := int16(0); y < v.Height(); y += 2 {
		row := profile.String(halfBlockRow(v, y)).Foreground(fg).Background(bg)
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func halfBlockRow(v fb.FrameView, y int16) string {
	var sb strings.Builder
	for x := int16(0); x < v.Width(); x++ {
		top := v.Pixel(x, y)
		bottom := v.Pixel(x, y+1)
		switch {
		case top && bottom:
			sb.WriteRune('█')
		case top:
			sb.WriteRune('▀')
		case bottom:
			sb.WriteRune('▄')
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
