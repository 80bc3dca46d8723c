package main

import (
	"fmt"
	"os"

	"github.com/puzzlein/puzzlein/internal/config"
	"github.com/puzzlein/puzzlein/internal/logging"
	"github.com/puzzlein/puzzlein/internal/ui"
	"github.com/puzzlein/puzzlein/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [data-root]",
		Short: "Watch a data tree for input file changes",
		Long: `Watch a data directory and report input/test files as they appear
or change. Handy while pasting puzzle inputs into place.

Defaults to ./data when no root is given.

Examples:
  puzzlein watch
  puzzlein watch ../data`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "data"
			if len(args) == 1 {
				root = args[0]
			}
			if _, err := os.Stat(root); err != nil {
				return fmt.Errorf("unable to watch %s: %w", root, err)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("unable to load config: %w", err)
			}
			log, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
			if err != nil {
				return fmt.Errorf("unable to set up logging: %w", err)
			}
			defer log.Close()

			w, err := watcher.NewWatcher(&printHandler{}, watcher.WithLogger(log))
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Watch([]string{root}); err != nil {
				return err
			}

			ui.InfoMsg("watching %s for input files, Ctrl+C to stop", ui.Path(root))
			return w.Start()
		},
	}

	return cmd
}

// printHandler reports input file events on stdout.
type printHandler struct{}

func (h *printHandler) HandleInputEvent(event watcher.InputEvent) error {
	switch event.Type {
	case watcher.EventDelete, watcher.EventMove:
		ui.WarningMsg("%s %s", event.Type, ui.Path(event.Path))
	default:
		info, err := os.Stat(event.Path)
		if err != nil {
			ui.SuccessMsg("%s %s", event.Type, ui.Path(event.Path))
			return nil
		}
		ui.SuccessMsg("%s %s (%d bytes)", event.Type, ui.Path(event.Path), info.Size())
	}
	return nil
}
