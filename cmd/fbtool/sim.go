package main

import (
	"context"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagefb/pagefb/internal/errors"
	"github.com/pagefb/pagefb/sim"
)

func init() {
	simCmd.Flags().StringVarP(&simSize, `size`, `s`, `128x64`, `frame size <w>x<h>`)
	simCmd.Flags().IntVar(&simFPS, `fps`, 20, `animation steps per second`)
	rootCmd.AddCommand(simCmd)
}

var (
	simSize string
	simFPS  int
)

var simCmd = &cobra.Command{
	Use:   simCmdStr,
	Short: "animate demo scenes in the terminal",
	Long:  `animate demo scenes in the terminal`,
	Run: func(cmd *cobra.Command, args []string) {
		run(simRun)
	},
}

var simCmdStr = "sim"

func simRun() error {
	w, h, err := splitSizeArg(simSize)
	if err != nil {
		return err
	}
	if w < 1 || h < 1 || w > math.MaxInt16 || h > math.MaxInt16 {
		return errors.Errorf(`frame size %dx%d out of range`, w, h)
	}
	if simFPS < 1 {
		return errors.Errorf(`fps %d below 1`, simFPS)
	}
	s, err := sim.New(int16(w), int16(h), sim.SetInterval(time.Second/time.Duration(simFPS)))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
