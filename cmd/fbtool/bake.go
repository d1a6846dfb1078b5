package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/pagefb/pagefb/bake"
	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/scale"
	scbild "github.com/pagefb/pagefb/scale/bild"
	sccaire "github.com/pagefb/pagefb/scale/caire"
	scgift "github.com/pagefb/pagefb/scale/gift"
	scimaging "github.com/pagefb/pagefb/scale/imaging"
	scnfnt "github.com/pagefb/pagefb/scale/nfnt"
	screz "github.com/pagefb/pagefb/scale/rez"
	"github.com/pagefb/pagefb/scale/sdefault"
	"github.com/pagefb/pagefb/scale/xdraw"
)

func init() {
	bakeCmd.Flags().StringVarP(&bakeSize, `size`, `s`, ``, `scale to <w>x<h> before reduction`)
	bakeCmd.Flags().StringVarP(&bakeReduce, `reduce`, `r`, `threshold`, `reduction: threshold, otsu or dither`)
	bakeCmd.Flags().Uint8Var(&bakeLevel, `level`, 0x80, `cutoff for threshold reduction`)
	bakeCmd.Flags().BoolVar(&bakeInvert, `invert`, false, `flip the on/off sense of the result`)
	bakeCmd.Flags().StringVar(&bakeScaler, `scaler`, ``, `scaler: default, xdraw, nfnt, imaging, gift, bild, rez or caire`)
	bakeCmd.Flags().BoolVar(&bakeGo, `go`, false, `emit a Go source file`)
	bakeCmd.Flags().StringVar(&bakePkg, `pkg`, `assets`, `package name for --go output`)
	bakeCmd.Flags().StringVar(&bakeName, `name`, ``, `identifier for --go output, default the image file name`)
	bakeCmd.Flags().BoolVar(&bakeRaw, `raw`, false, `emit raw page bytes`)
	bakeCmd.Flags().StringVarP(&bakeOut, `out`, `o`, ``, `write to file instead of stdout`)
	rootCmd.AddCommand(bakeCmd)
}

var (
	bakeSize   string
	bakeReduce string
	bakeLevel  uint8
	bakeInvert bool
	bakeScaler string
	bakeGo     bool
	bakePkg    string
	bakeName   string
	bakeRaw    bool
	bakeOut    string
)

var bakeCmd = &cobra.Command{
	Use:   bakeCmdStr + ` <image>`,
	Short: "bake an image into a bitmap asset",
	Long:  `bake an image into a bitmap asset`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return bakeRun(args[0]) })
	},
}

var bakeCmdStr = "bake"

func bakeRun(path string) error {
	opts := bake.Options{
		bake.SetLevel(bakeLevel),
		bake.SetInvert(bakeInvert),
	}
	switch bakeReduce {
	case `threshold`:
		opts = append(opts, bake.SetReduce(bake.ReduceThreshold))
	case `otsu`:
		opts = append(opts, bake.SetReduce(bake.ReduceOtsu))
	case `dither`:
		opts = append(opts, bake.SetReduce(bake.ReduceDither))
	default:
		return errors.Errorf(`unknown reduction %q`, bakeReduce)
	}
	if len(bakeSize) > 0 {
		w, h, err := splitSizeArg(bakeSize)
		if err != nil {
			return err
		}
		sc, err := scalerByName(bakeScaler)
		if err != nil {
			return err
		}
		opts = append(opts, bake.SetSize(w, h), bake.SetScaler(sc))
	}
	if debug {
		opts = append(opts, bake.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	bm, err := bake.File(path, opts)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case bakeGo:
		name := bakeName
		if len(name) == 0 {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		out = bake.GoSource(bakePkg, name, bm)
	case bakeRaw:
		out = bm.Data()
	default:
		out = []byte(bake.ASCII(bm))
	}
	if len(bakeOut) > 0 {
		if err := os.WriteFile(bakeOut, out, 0644); err != nil {
			return errors.New(err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return errors.New(err)
	}
	return nil
}

func scalerByName(name string) (scale.Scaler, error) {
	switch name {
	case ``, `default`:
		return &sdefault.Scaler{}, nil
	case `xdraw`:
		return xdraw.CatmullRom(), nil
	case `nfnt`:
		return &scnfnt.Scaler{}, nil
	case `imaging`:
		return &scimaging.Scaler{}, nil
	case `gift`:
		return &scgift.Scaler{}, nil
	case `bild`:
		return &scbild.Scaler{}, nil
	case `rez`:
		return &screz.Scaler{}, nil
	case `caire`:
		return &sccaire.Scaler{}, nil
	}
	return nil, errors.Errorf(`unknown scaler %q`, name)
}

func splitSizeArg(size string) (w, h int, e error) {
	parts := strings.SplitN(size, `x`, 2)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf(`size string not "<w>x<h>": %q`, size)
	}
	var err error
	w, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.New(err)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.New(err)
	}
	return w, h, nil
}
