package main

import (
	"fmt"

	"github.com/puzzlein/puzzlein"
	"github.com/puzzlein/puzzlein/internal/ui"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <solution-file>",
		Short: "Show the puzzle a solution file maps to",
		Long: `Parse the year, day and part out of a solution file path.

Examples:
  puzzlein info y2024/d05.go
  puzzlein info solutions/2024/day05_2.py`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := puzzlein.ParsePath(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Puzzle: %s\n", ui.Puzzle(info.String()))
			fmt.Printf("  Year: %d\n", info.Year)
			fmt.Printf("  Day:  %d (%s)\n", info.Day, info.PaddedDay())
			if info.HasPart() {
				fmt.Printf("  Part: %d\n", info.Part)
			} else {
				fmt.Printf("  Part: %s\n", ui.Dim("none"))
			}
			return nil
		},
	}
}
