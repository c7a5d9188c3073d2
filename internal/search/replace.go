package search

import (
	"github.com/subcue/subcue/pkg/caption"

	"github.com/subcue/subcue/internal/edit"
)

// currentText re-resolves a match against doc and returns the word's text as
// it is now, not as it was when the search ran. ok is false when the word has
// vanished or its current text no longer matches the pattern, so a stale
// match can never overwrite a newer edit.
func (r *Results) currentText(doc *caption.Document, m Match) (string, bool) {
	fi := doc.FrameIndex(m.FrameID)
	if fi < 0 {
		return "", false
	}
	wi := doc.Frames[fi].WordIndex(m.WordID)
	if wi < 0 {
		return "", false
	}
	text := doc.Frames[fi].Words[wi].Word
	if !r.re.MatchString(text) {
		return "", false
	}
	return text, true
}

// ReplaceCurrent rewrites the word under the navigation cursor, substituting
// the matched portion of its current text with replacement under the same
// case-sensitivity and whole-word rules the search used. The word's text is
// re-read from doc first; when it was edited since the search and no longer
// matches, the replace is a silent no-op. The rewrite goes through
// [edit.EditWord], so the returned snapshot carries a bumped modification
// stamp and the word drops back to the normal state.
//
// Match positions are not refreshed here — the caller re-runs [Find] against
// the returned snapshot, which is also what keeps replace and navigation
// independent.
func (r *Results) ReplaceCurrent(doc *caption.Document, replacement string) (*caption.Document, bool) {
	m, ok := r.Current()
	if !ok || r.re == nil {
		return doc, false
	}
	text, ok := r.currentText(doc, m)
	if !ok {
		return doc, false
	}
	return edit.EditWord(doc, m.FrameID, m.WordID, r.re.ReplaceAllString(text, replacement))
}

// ReplaceAll applies the substitution to every match in one pass and returns
// the final snapshot plus the number of words rewritten. Matches are per-word
// and cannot overlap, so order does not matter; words that vanished or were
// edited away from the pattern since the search are skipped silently.
func (r *Results) ReplaceAll(doc *caption.Document, replacement string) (*caption.Document, int) {
	if r.re == nil {
		return doc, 0
	}
	replaced := 0
	for _, m := range r.matches {
		text, ok := r.currentText(doc, m)
		if !ok {
			continue
		}
		next, ok := edit.EditWord(doc, m.FrameID, m.WordID, r.re.ReplaceAllString(text, replacement))
		if !ok {
			continue
		}
		doc = next
		replaced++
	}
	return doc, replaced
}
