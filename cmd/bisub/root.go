package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/bisub/internal/config"
	"github.com/nguyentantai21042004/bisub/internal/logger"
	"github.com/nguyentantai21042004/bisub/internal/processor"
	"github.com/nguyentantai21042004/bisub/internal/translator"
)

type app struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bisub",
		Short:         "Build bilingual Korean/Thai subtitles from SRT files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newTranslateCommand(a))
	rootCmd.AddCommand(newRenumberCommand())
	rootCmd.AddCommand(newWatchCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

// setup loads configuration and builds the logger and processor
func (a *app) setup() (*config.Config, logger.Logger, processor.Processor, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	tr, err := translator.New(cfg.Translator)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, processor.New(cfg, tr, log), nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
