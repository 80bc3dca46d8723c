package main

import (
	"fmt"
	"strconv"

	"github.com/puzzlein/puzzlein/internal/config"
	"github.com/puzzlein/puzzlein/internal/scaffold"
	"github.com/puzzlein/puzzlein/internal/ui"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var (
		part int
		ext  string
		root string
	)

	cmd := &cobra.Command{
		Use:   "new <year> <day>",
		Short: "Scaffold a solution file and empty data files",
		Long: `Create y<year>/d<dd>.<ext> plus empty input and test data files.

Examples:
  puzzlein new 2024 5
  puzzlein new 2024 5 --part 2
  puzzlein new 2024 5 --ext py`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[1])
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("unable to load config: %w", err)
			}
			if ext == "" {
				ext = cfg.Scaffold.Extension
			}

			result, err := scaffold.Generate(scaffold.Options{
				Root:      root,
				Year:      year,
				Day:       day,
				Part:      part,
				Extension: ext,
				DataDir:   cfg.Data.Dir,
			})
			if err != nil {
				return err
			}

			ui.SuccessMsg("created %s", ui.Path(result.SolutionPath))
			ui.SuccessMsg("created %s", ui.Path(result.InputPath))
			ui.SuccessMsg("created %s", ui.Path(result.TestPath))
			return nil
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, "part suffix for the solution file")
	cmd.Flags().StringVar(&ext, "ext", "", "solution file extension (default from config)")
	cmd.Flags().StringVar(&root, "root", ".", "directory to create the year folder in")

	return cmd
}
