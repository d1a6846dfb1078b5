package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pagefb/pagefb"
	"github.com/pagefb/pagefb/bake"
	"github.com/pagefb/pagefb/fb"
	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/render"
)

func init() {
	showCmd.Flags().StringVarP(&showSize, `size`, `s`, `128x64`, `frame size <w>x<h>`)
	showCmd.Flags().StringVarP(&showReduce, `reduce`, `r`, `dither`, `reduction: threshold, otsu or dither`)
	showCmd.Flags().StringVarP(&showAs, `as`, `a`, `halfblocks`, `renderer: halfblocks, braille, ascii, sixel or png`)
	showCmd.Flags().BoolVar(&showPlain, `plain`, false, `skip border and color`)
	rootCmd.AddCommand(showCmd)
}

var (
	showSize   string
	showReduce string
	showAs     string
	showPlain  bool
)

var showCmd = &cobra.Command{
	Use:   showCmdStr + ` <image>`,
	Short: "bake an image and render it to the terminal",
	Long:  `bake an image and render it to the terminal`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return showRun(args[0]) })
	},
}

var showCmdStr = "show"

func showRun(path string) error {
	w, h, err := splitSizeArg(showSize)
	if err != nil {
		return err
	}
	opts := bake.Options{bake.SetSize(w, h)}
	switch showReduce {
	case `threshold`:
		opts = append(opts, bake.SetReduce(bake.ReduceThreshold))
	case `otsu`:
		opts = append(opts, bake.SetReduce(bake.ReduceOtsu))
	case `dither`:
		opts = append(opts, bake.SetReduce(bake.ReduceDither))
	default:
		return errors.Errorf(`unknown reduction %q`, showReduce)
	}
	bm, err := bake.File(path, opts)
	if err != nil {
		return err
	}
	view, err := frameFor(bm)
	if err != nil {
		return err
	}

	switch showAs {
	case `halfblocks`:
		if showPlain {
			fmt.Println(render.HalfBlocks(view))
			return nil
		}
		fmt.Println(boxStyle.Render(strings.TrimSuffix(render.StyledHalfBlocks(view, termenv.ColorProfile()), "\n")))
	case `braille`:
		fmt.Println(render.Braille(view))
	case `ascii`:
		fmt.Print(bake.ASCII(bm))
	case `sixel`:
		return render.Sixel(os.Stdout, view, 2)
	case `png`:
		return render.PNG(os.Stdout, view, 2)
	default:
		return errors.Errorf(`unknown renderer %q`, showAs)
	}
	return nil
}

// frameFor blits bm into a freshly allocated full-size frame view.
func frameFor(bm fb.Bitmap) (fb.FrameView, error) {
	d, err := pagefb.NewDisplay(bm.Width(), bm.Height())
	if err != nil {
		return fb.FrameView{}, err
	}
	d.Frame().DrawBitmap(0, 0, bm, true)
	return d.Frame(), nil
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(`63`))
