package bake

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/pagefb/pagefb/fb"
)

const bytesPerLine = 12

// GoSource renders bm as a compilable Go file declaring a single
// asset variable in package pkg. name becomes an exported CamelCase
// identifier.
func GoSource(pkg, name string, bm fb.Bitmap) []byte {
	ident := strcase.ToCamel(name)
	if len(ident) == 0 || ident[0] >= '0' && ident[0] <= '9' {
		ident = `Asset` + ident
	}
	var sb strings.Builder
	sb.WriteString("// Code generated by fbtool bake. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	sb.WriteString("import (\n\t\"github.com/pagefb/pagefb/fb\"\n)\n\n")
	fmt.Fprintf(&sb, "// %s is a %dx%d bitmap asset.\n", ident, bm.Width(), bm.Height())
	fmt.Fprintf(&sb, "var %s = fb.MustBitmap(%d, %d, []byte{\n", ident, bm.Width(), bm.Height())
	data := bm.Data()
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		parts := make([]string, 0, bytesPerLine)
		for _, v := range data[i:end] {
			parts = append(parts, fmt.Sprintf(`0x%02x`, v))
		}
		fmt.Fprintf(&sb, "\t%s,\n", strings.Join(parts, `, `))
	}
	sb.WriteString("})\n")
	return []byte(sb.String())
}

// ASCII renders bm with one '#' or '.' per pixel, one row per line.
func ASCII(bm fb.Bitmap) string {
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
