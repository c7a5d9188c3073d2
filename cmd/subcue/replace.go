package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subcue/subcue/internal/engine"
	"github.com/subcue/subcue/internal/search"
	"github.com/subcue/subcue/pkg/caption"
)

var (
	replaceCaseSensitive bool
	replaceWholeWord     bool
	replaceFirst         bool
	replaceWrite         bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace <snapshot.json> <query> <replacement>",
	Short: "Replace matched words across the transcript",
	Long: `Replace substitutes the matched portion of every matching word with the
replacement text, under the same case-sensitivity and whole-word rules as
search. With --first only the first match is rewritten. Without --write the
result is only reported, not saved.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, query, replacement := args[0], args[1], args[2]
		doc, err := caption.LoadFile(path)
		if err != nil {
			return err
		}

		ed := engine.New(engine.WithMetrics(editorMetrics()))
		defer ed.Close()
		ed.SetDocument(doc)

		res := ed.Search(query, search.Options{
			CaseSensitive: replaceCaseSensitive,
			WholeWord:     replaceWholeWord,
		})
		if res.Len() == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no matches for %q\n", query)
			return nil
		}

		replaced := 0
		if replaceFirst {
			if ed.ReplaceCurrent(res, replacement) {
				replaced = 1
			}
		} else {
			replaced = ed.ReplaceAll(res, replacement)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "replaced %d word(s)\n", replaced)
		if replaced > 0 && replaceWrite {
			return caption.SaveFile(path, ed.Document())
		}
		if replaced > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "re-run with --write to save the changes")
		}
		return nil
	},
}

func init() {
	replaceCmd.Flags().BoolVarP(&replaceCaseSensitive, "case-sensitive", "c", false, "match letter case exactly")
	replaceCmd.Flags().BoolVarP(&replaceWholeWord, "whole-word", "W", false, "match on word boundaries only")
	replaceCmd.Flags().BoolVar(&replaceFirst, "first", false, "replace only the first match")
	replaceCmd.Flags().BoolVarP(&replaceWrite, "write", "w", false, "save the modified snapshot in place")
	rootCmd.AddCommand(replaceCmd)
}
