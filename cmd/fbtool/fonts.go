package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/fonts"
	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/render"
)

func init() { rootCmd.AddCommand(fontsCmd) }

var fontsCmd = &cobra.Command{
	Use:   fontsCmdStr,
	Short: "print specimens of the bundled fonts",
	Long:  `print specimens of the bundled fonts`,
	Run: func(cmd *cobra.Command, args []string) {
		run(fontsRun)
	},
}

var fontsCmdStr = "fonts"

var titleStyle = lipgloss.NewStyle().Bold(true)

func fontsRun() error {
	for _, entry := range []struct {
		name string
		font *fb.Font
	}{
		{`gyver5x7`, fonts.Gyver5x7},
	} {
		view, err := specimen(entry.font)
		if err != nil {
			return err
		}
		title := fmt.Sprintf(`%s  glyph %dx%d, cell %dx%d`,
			entry.name,
			entry.font.GlyphWidth(), entry.font.GlyphHeight(),
			entry.font.WidthTotal(), entry.font.HeightTotal(),
		)
		fmt.Println(titleStyle.Render(title))
		fmt.Println(boxStyle.Render(strings.TrimSuffix(render.HalfBlocks(view), "\n")))
	}
	return nil
}

// specimen types the whole printable range of f onto a frame sized
// for 16 glyph columns.
func specimen(f *fb.Font) (fb.FrameView, error) {
	const cols = 16
	const first, last = 32, 127
	rows := int16((last - first + cols) / cols)
	w := cols * f.WidthTotal()
	h := rows * f.HeightTotal()
	buf := make([]byte, int(w)*((int(h)+7)/8))
	view, err := fb.NewFrameView(buf, w, w, h, 0, 0)
	if err != nil {
		return fb.FrameView{}, errors.New(err)
	}
	c := fb.NewCanvas(view)
	c.SetFont(f)
	c.AutoNextLine = true
	out := make([]byte, 0, last-first+1)
	for ch := first; ch <= last; ch++ {
		out = append(out, byte(ch))
	}
	c.Text(string(out), true)
	return view, nil
}
