package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/bisub/internal/processor"
)

func newTranslateCommand(a *app) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "translate <input.srt>",
		Short: "Translate one subtitle file into a bilingual, renumbered file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, proc, err := a.setup()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			inputPath := args[0]
			outputPath := outputFlag
			if outputPath == "" {
				outputPath = processor.OutputPath(filepath.Dir(inputPath), inputPath)
			}

			log.Info(ctx, "Translator: %s (%s <-> %s)", cfg.Translator.Provider, cfg.Languages.Primary, cfg.Languages.Secondary)
			_, err = proc.Process(ctx, inputPath, outputPath)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default <input>_bilingual.srt)")
	return cmd
}
