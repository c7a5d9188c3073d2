package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subcue/subcue/internal/engine"
	"github.com/subcue/subcue/internal/search"
	"github.com/subcue/subcue/pkg/caption"
)

var (
	searchCaseSensitive bool
	searchWholeWord     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <snapshot.json> <query>",
	Short: "Search for words across the transcript",
	Long: `Search matches the query against every word of the document. Matches are
word-granular: the query is literal text (no regex), matched as a substring
by default or on word boundaries with --whole-word. When nothing matches,
the closest-sounding words in the document are suggested.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, query := args[0], args[1]
		doc, err := caption.LoadFile(path)
		if err != nil {
			return err
		}

		ed := engine.New(
			engine.WithMetrics(editorMetrics()),
			engine.WithSuggestionLimit(cfg.Search.SuggestionLimit),
		)
		defer ed.Close()
		ed.SetDocument(doc)

		res := ed.Search(query, search.Options{
			CaseSensitive: searchCaseSensitive,
			WholeWord:     searchWholeWord,
		})
		if res.Len() == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no matches for %q\n", query)
			if suggestions := ed.Suggest(query); len(suggestions) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "did you mean: %v\n", suggestions)
			}
			return nil
		}

		for i, m := range res.Matches() {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d. [%8.2fs] frame %s word #%d: %s\n",
				i+1, m.FrameStartTime, m.FrameID, m.WordIndex, m.Context)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d match(es)\n", res.Len())
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "match letter case exactly")
	searchCmd.Flags().BoolVarP(&searchWholeWord, "whole-word", "W", false, "match on word boundaries only")
	rootCmd.AddCommand(searchCmd)
}
