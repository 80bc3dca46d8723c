package main

import (
	"fmt"
	"os"

	"github.com/puzzlein/puzzlein/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	noColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "puzzlein",
		Short: "Locate and read puzzle input files",
		Long: `puzzlein infers year, day and part from solution file naming
conventions (y2024/d05_2.go) and resolves the matching input file
in a sibling data directory (data/2024/input05_2.txt).

Solution code imports the library; this CLI covers the rest:
inspecting parsed identifiers, printing inputs, scaffolding new
days and watching the data tree while you paste inputs in.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error:"), err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("puzzlein %s\n", version)
		},
	}
}
