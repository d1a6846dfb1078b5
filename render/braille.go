package render

import (
	"strings"

	"github.com/pagefb/pagefb/fb"
)

// Braille renders v with a 2x4 pixel cell per rune from the braille
// patterns block, the densest pure-text encoding of the framebuffer.
func Braille(v fb.FrameView) string {
	var sb strings.Builder
	for y := int16(0); y < v.Height(); y += 4 {
		for x := int16(0); x < v.Width(); x += 2 {
			var cell byte
			for dx := int16(0); dx < 2; dx++ {
				for dy := int16(0); dy < 4; dy++ {
					if v.Pixel(x+dx, y+dy) {
						cell |= 1 << (dy + 4*dx)
					}
				}
			}
			sb.WriteRune(brailleRune(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// brailleRune maps a cell with the left column in bits 0-3 and the
// right column in bits 4-7, top to bottom, onto the braille dot
// numbering: dots 1-3 and 7 left, dots 4-6 and 8 right.
func brailleRune(cell byte) rune {
	return '⠀' + rune(cell&0b00000111|cell<<3&0b01000000|cell>>1&0b00111000|cell&0b10000000)
}
