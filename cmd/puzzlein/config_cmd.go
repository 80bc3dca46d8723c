package main

import (
	"fmt"

	"github.com/puzzlein/puzzlein/internal/config"
	"github.com/puzzlein/puzzlein/internal/paths"
	"github.com/puzzlein/puzzlein/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage puzzlein configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigExists() {
				path, _ := paths.ConfigPath()
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := config.DefaultConfig().Save(); err != nil {
				return err
			}
			path, _ := paths.ConfigPath()
			ui.SuccessMsg("wrote %s", ui.Path(path))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path, _ := paths.ConfigPath()
			if config.ConfigExists() {
				fmt.Println(ui.Dim("# " + path))
			} else {
				fmt.Println(ui.Dim("# defaults (no config file at " + path + ")"))
			}
			fmt.Print(cfg.ToTOML())
			return nil
		},
	})

	return cmd
}
