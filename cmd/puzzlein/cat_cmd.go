package main

import (
	"fmt"

	"github.com/puzzlein/puzzlein"
	"github.com/spf13/cobra"
)

func newCatCmd() *cobra.Command {
	var (
		test    bool
		dataDir string
		mode    string
		noStrip bool
	)

	cmd := &cobra.Command{
		Use:   "cat <solution-file>",
		Short: "Print the input a solution file would read",
		Long: `Resolve and print the input file for a solution file, using the
same lookup the library performs.

Examples:
  puzzlein cat y2024/d05.go
  puzzlein cat y2024/d05.go --test
  puzzlein cat y2024/d05.go --mode text --no-strip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions(test, dataDir)
			if err != nil {
				return err
			}
			opts.Strip = !noStrip
			opts.Mode, err = puzzlein.ParseMode(mode)
			if err != nil {
				return err
			}

			content, err := puzzlein.ReadFrom(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Println(content)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&test, "test", "t", false, "read the test file instead of the real input")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "data root relative to the solution file (default from config)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "lines", "read mode: lines or text")
	cmd.Flags().BoolVar(&noStrip, "no-strip", false, "keep line terminators and surrounding whitespace")

	return cmd
}
