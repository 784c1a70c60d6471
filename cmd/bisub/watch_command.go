package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/bisub/internal/config"
	"github.com/nguyentantai21042004/bisub/internal/watcher"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Translate every subtitle dropped into the input folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, proc, err := a.setup()
			if err != nil {
				return err
			}

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			w, err := watcher.New(cfg.Paths.Input, proc.HandleFile, log)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "========================================")
			log.Info(ctx, "Bilingual subtitle watcher is ready!")
			log.Info(ctx, "Translator: %s (%s <-> %s)", cfg.Translator.Provider, cfg.Languages.Primary, cfg.Languages.Secondary)
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			err = w.Start(ctx)
			if errors.Is(err, context.Canceled) {
				log.Info(ctx, "Watcher stopped")
				return nil
			}
			return err
		},
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
