package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/subcue/subcue/internal/engine"
	"github.com/subcue/subcue/pkg/caption"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight <snapshot.json> <time-ms>",
	Short: "Show the words active at a playhead position",
	Long: `Highlight resolves a playhead position (in milliseconds, as hosts supply
it) to the words a renderer would emphasise at that instant. All active
words belong to the single frame whose window contains the time.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		timeMs, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid time %q: %w", args[1], err)
		}

		doc, err := caption.LoadFile(path)
		if err != nil {
			return err
		}

		ed := engine.New(engine.WithMetrics(editorMetrics()))
		defer ed.Close()
		ed.SetDocument(doc)

		active := ed.Highlighted(timeMs)
		if len(active) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no active words at %.0fms\n", timeMs)
			return nil
		}

		// Report in document order, not map order.
		for _, f := range ed.Document().Frames {
			for _, w := range f.Words {
				if _, ok := active[w.ID]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\t[%.2fs – %.2fs]\n", w.ID, w.Word, w.Start, w.End)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}
