package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subcue/subcue/pkg/caption"
)

var statsCmd = &cobra.Command{
	Use:   "stats <snapshot.json> [more...]",
	Short: "Report document statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			doc, err := caption.LoadFile(path)
			if err != nil {
				return err
			}
			s := doc.Stats()
			fmt.Fprintf(cmd.OutOrStdout(),
				"%s: %d frames (%d custom breaks), %d words, %.2fs covered; %d censored, %d removed, %d cut\n",
				path, s.Frames, s.CustomBreaks, s.Words, s.CoveredSeconds,
				s.Censored, s.Removed, s.Strikethrough)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
