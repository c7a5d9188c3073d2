package search

import (
	"slices"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/subcue/subcue/pkg/caption"
)

// defaultSuggestLimit caps how many suggestions a zero-hit search offers.
const defaultSuggestLimit = 5

// Suggest returns up to limit distinct words from doc that are closest to
// query, for "did you mean" hints when a search comes back empty.
//
// Candidates are ranked by Levenshtein distance on the lowercased strings,
// with Double Metaphone overlap breaking ties: a word that sounds like the
// query outranks one that merely shares letters. Words further than
// roughly a third of the query's length are not offered at all.
func Suggest(doc *caption.Document, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if doc == nil || query == "" {
		return nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	maxDist := max(len([]rune(query))/3, 2)
	qPrimary, qSecondary := matchr.DoubleMetaphone(query)

	type candidate struct {
		word     string
		dist     int
		phonetic bool
	}
	seen := make(map[string]struct{})
	var candidates []candidate

	for _, f := range doc.Frames {
		for _, w := range f.Words {
			word := strings.ToLower(strings.TrimSpace(w.Word))
			if word == "" || word == query {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}

			dist := matchr.Levenshtein(query, word)
			if dist > maxDist {
				continue
			}
			primary, secondary := matchr.DoubleMetaphone(word)
			phonetic := codesOverlap(qPrimary, qSecondary, primary, secondary)
			candidates = append(candidates, candidate{word: word, dist: dist, phonetic: phonetic})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		if a.phonetic != b.phonetic {
			if a.phonetic {
				return -1
			}
			return 1
		}
		return strings.Compare(a.word, b.word)
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.word)
	}
	return out
}

// codesOverlap reports whether any non-empty Double Metaphone code of the
// query matches any code of the candidate.
func codesOverlap(qp, qs, cp, cs string) bool {
	for _, q := range []string{qp, qs} {
		if q == "" {
			continue
		}
		if q == cp || (cs != "" && q == cs) {
			return true
		}
	}
	return false
}
