package edit

import (
	"slices"
	"strings"

	"github.com/subcue/subcue/pkg/caption"
)

// Combine merges two or more words of a single frame into one word. The
// combined word's text is the space-joined texts of the sources in time
// order, its original text the space-joined original texts, its window spans
// from the first source's start to the last source's end, and its remaining
// fields (edit state, flags) are inherited from the first source.
//
// The combined word gets a fresh collision-checked id, which is returned so
// hosts can move selection to it.
//
// No-op cases: nil document, fewer than two ids, ids spread across more than
// one frame, or fewer than two ids resolving to words at all.
func Combine(doc *caption.Document, wordIDs []string) (*caption.Document, string, bool) {
	if doc == nil || len(wordIDs) < 2 {
		return doc, "", false
	}

	requested := make(map[string]struct{}, len(wordIDs))
	for _, id := range wordIDs {
		requested[id] = struct{}{}
	}

	// Every resolved id must live in one frame. Find the frame owning the
	// first resolvable id, then verify no other frame holds any of the rest.
	fi := -1
	for i, f := range doc.Frames {
		for _, w := range f.Words {
			if _, want := requested[w.ID]; want {
				if fi >= 0 && fi != i {
					return doc, "", false
				}
				fi = i
			}
		}
	}
	if fi < 0 {
		return doc, "", false
	}

	out := doc.Clone()
	frame := &out.Frames[fi]

	var targets []caption.WordSegment
	for _, w := range frame.Words {
		if _, want := requested[w.ID]; want {
			targets = append(targets, w)
		}
	}
	if len(targets) < 2 {
		return doc, "", false
	}
	slices.SortStableFunc(targets, func(a, b caption.WordSegment) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	texts := make([]string, len(targets))
	originals := make([]string, len(targets))
	for i, w := range targets {
		texts[i] = w.Word
		originals[i] = w.OriginalWord
	}

	combined := targets[0]
	combined.ID = caption.NewID("word", caption.WordIDSet(out.Frames))
	combined.Word = strings.Join(texts, " ")
	combined.OriginalWord = strings.Join(originals, " ")
	combined.Start = targets[0].Start
	combined.End = targets[len(targets)-1].End

	// Drop the sources, then insert the combined word before the first
	// remaining word that starts after it (append when none does).
	remaining := slices.DeleteFunc(frame.Words, func(w caption.WordSegment) bool {
		_, want := requested[w.ID]
		return want
	})
	at := len(remaining)
	for i, w := range remaining {
		if w.Start > combined.Start {
			at = i
			break
		}
	}
	frame.Words = slices.Insert(remaining, at, combined)

	touch(out)
	return out, combined.ID, true
}
