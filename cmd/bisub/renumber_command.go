package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/bisub/internal/srt"
)

func newRenumberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "renumber <input.srt> <output.srt>",
		Short: "Rewrite cue indices as a contiguous 1..N sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := srt.RenumberFile(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renumbered %d cues into %s\n", n, args[1])
			return nil
		},
	}
}
