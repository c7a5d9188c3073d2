package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subcue/subcue/internal/engine"
	"github.com/subcue/subcue/pkg/caption"
)

var censorWrite bool

var censorCmd = &cobra.Command{
	Use:   "censor <snapshot.json> <word> [more words...]",
	Short: "Censor every occurrence of the given words",
	Long: `Censor masks every word whose original transcription equals one of the
given terms (case-insensitive): two characters or fewer become "**", longer
words keep their first character followed by asterisks. Censoring is
reversible; the original transcription is never modified.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, terms := args[0], args[1:]
		doc, err := caption.LoadFile(path)
		if err != nil {
			return err
		}

		wanted := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			wanted[strings.ToLower(t)] = struct{}{}
		}

		ed := engine.New(engine.WithMetrics(editorMetrics()))
		defer ed.Close()
		ed.SetDocument(doc)

		censored := 0
		for _, f := range ed.Document().Frames {
			for _, w := range f.Words {
				if _, hit := wanted[strings.ToLower(w.OriginalWord)]; !hit {
					continue
				}
				if ed.CensorWord(f.ID, w.ID) {
					censored++
				}
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "censored %d word(s)\n", censored)
		if censored > 0 && censorWrite {
			return caption.SaveFile(path, ed.Document())
		}
		if censored > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "re-run with --write to save the changes")
		}
		return nil
	},
}

func init() {
	censorCmd.Flags().BoolVarP(&censorWrite, "write", "w", false, "save the modified snapshot in place")
	rootCmd.AddCommand(censorCmd)
}
