// Package search implements word-granular search and replace over a
// [caption.Document].
//
// Matching operates over the flattened (frame, word index) space rather than
// concatenated transcript text: a match is always exactly one word. Queries
// support case-sensitivity and whole-word toggles; the raw query is treated
// as literal text (regex metacharacters are escaped before any pattern is
// built).
//
// Indexing and navigation are deliberately independent: [Find] builds a
// [Results] once, and Next/Prev walk it circularly without re-running the
// search. Re-running on every navigation step resets the cursor to the first
// match and makes the UI lose its place — the "refocus" bug class this
// separation exists to prevent.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/subcue/subcue/pkg/caption"
)

// contextRadius is the number of neighbouring words included on each side of
// a match's context snippet.
const contextRadius = 2

// Options toggles how the query is matched against each word.
type Options struct {
	// CaseSensitive makes matching respect letter case. Default: insensitive.
	CaseSensitive bool

	// WholeWord requires the query to match on word boundaries instead of as
	// a plain substring.
	WholeWord bool
}

// Match is a single word-granular search hit.
type Match struct {
	// FrameID and WordIndex locate the matched word within the document the
	// search ran against. WordID is the word's stable identifier, which
	// survives re-sorts that would invalidate the index.
	FrameID   string
	WordIndex int
	WordID    string

	// Word is the matched word's display text at search time.
	Word string

	// FrameStartTime is the owning frame's start in seconds, for seek-to-match.
	FrameStartTime float64

	// Context is a short snippet of neighbouring words with the match
	// delimited by brackets, for UI emphasis.
	Context string
}

// Results is an immutable match list with a circular navigation cursor.
// Navigation never re-runs the search; build a fresh Results via [Find] when
// the document or query changes.
type Results struct {
	query string
	opts  Options
	re    *regexp.Regexp

	matches []Match
	cur     int
}

// compile builds the word-matching pattern for query under opts. The query
// is escaped first so it always matches literally.
func compile(query string, opts Options) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(query)
	if opts.WholeWord {
		pattern = `\b` + pattern + `\b`
	}
	if !opts.CaseSensitive {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("search: compile query %q: %w", query, err)
	}
	return re, nil
}

// Find indexes every word in doc against query and returns the match list.
// An empty or whitespace-only query yields an empty result. Find never fails:
// the escaped pattern always compiles.
func Find(doc *caption.Document, query string, opts Options) *Results {
	r := &Results{query: query, opts: opts}
	if doc == nil || strings.TrimSpace(query) == "" {
		return r
	}
	re, err := compile(query, opts)
	if err != nil {
		// Unreachable with an escaped pattern; return an empty result rather
		// than failing the caller.
		return r
	}
	r.re = re

	for _, f := range doc.Frames {
		for wi, w := range f.Words {
			if !re.MatchString(w.Word) {
				continue
			}
			r.matches = append(r.matches, Match{
				FrameID:        f.ID,
				WordIndex:      wi,
				WordID:         w.ID,
				Word:           w.Word,
				FrameStartTime: f.StartTime,
				Context:        contextSnippet(f.Words, wi),
			})
		}
	}
	return r
}

// contextSnippet renders the words around index wi with the match bracketed.
func contextSnippet(words []caption.WordSegment, wi int) string {
	lo := max(wi-contextRadius, 0)
	hi := min(wi+contextRadius+1, len(words))
	parts := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if i == wi {
			parts = append(parts, "["+words[i].Word+"]")
		} else {
			parts = append(parts, words[i].Word)
		}
	}
	return strings.Join(parts, " ")
}

// Query returns the query string this result set was built from.
func (r *Results) Query() string { return r.query }

// Len returns the number of matches.
func (r *Results) Len() int { return len(r.matches) }

// Matches returns a copy of the match list in document order.
func (r *Results) Matches() []Match {
	out := make([]Match, len(r.matches))
	copy(out, r.matches)
	return out
}

// Current returns the match under the navigation cursor.
// ok is false when there are no matches.
func (r *Results) Current() (Match, bool) {
	if len(r.matches) == 0 {
		return Match{}, false
	}
	return r.matches[r.cur], true
}

// Next advances the cursor, wrapping from the last match to the first.
func (r *Results) Next() (Match, bool) {
	if len(r.matches) == 0 {
		return Match{}, false
	}
	r.cur = (r.cur + 1) % len(r.matches)
	return r.matches[r.cur], true
}

// Prev moves the cursor back, wrapping from the first match to the last.
func (r *Results) Prev() (Match, bool) {
	if len(r.matches) == 0 {
		return Match{}, false
	}
	r.cur = (r.cur - 1 + len(r.matches)) % len(r.matches)
	return r.matches[r.cur], true
}
