package main

import (
	"fmt"
	"os"

	"github.com/puzzlein/puzzlein"
	"github.com/puzzlein/puzzlein/internal/config"
	"github.com/puzzlein/puzzlein/internal/ui"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	var (
		test    bool
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "path <solution-file>",
		Short: "Print the input file path for a solution file",
		Long: `Compute the data file a solution file reads from and report
whether it exists.

Examples:
  puzzlein path y2024/d05.go
  puzzlein path y2024/d05.go --test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readOptions(test, dataDir)
			if err != nil {
				return err
			}

			path, err := puzzlein.InputPath(args[0], opts)
			if err != nil {
				return err
			}

			fmt.Println(ui.Path(path))
			if _, err := os.Stat(path); err != nil {
				ui.WarningMsg("file does not exist yet")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&test, "test", "t", false, "resolve the test file instead of the real input")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "data root relative to the solution file (default from config)")

	return cmd
}

// readOptions builds library options from flags, falling back to the
// configured data dir when the flag is unset.
func readOptions(test bool, dataDir string) (puzzlein.Options, error) {
	opts := puzzlein.DefaultOptions()
	opts.Test = test

	if dataDir != "" {
		opts.DataDir = dataDir
		return opts, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return puzzlein.Options{}, fmt.Errorf("unable to load config: %w", err)
	}
	opts.DataDir = cfg.Data.Dir
	return opts, nil
}
