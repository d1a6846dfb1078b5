package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagefb/pagefb/internal/errors"
)

var rootCmd = &cobra.Command{
	Short:        "fbtool works with paged frame buffer graphics",
	Long:         "fbtool works with paged frame buffer graphics",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var debug bool

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.NilParam(fn)
	} else {
		err = fn()
	}
	if err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Println(stackFramer.ErrorStack())
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
