package edit

import (
	"slices"

	"github.com/subcue/subcue/pkg/caption"
)

// Split breaks the frame identified by frameID into two frames at the word
// identified by wordID; the named word starts the second frame.
//
// The first resulting frame keeps the original id and ends at its last word's
// end. The second frame gets a fresh collision-checked id, starts at its
// first word's start, and inherits segment lineage and style from the
// original. Both halves are flagged as custom breaks.
//
// No-op cases (changed=false, input returned untouched): unknown frame,
// unknown word, or a split point that would leave either half empty.
func Split(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	fi := doc.FrameIndex(frameID)
	if fi < 0 {
		return doc, false
	}
	wi := doc.Frames[fi].WordIndex(wordID)
	if wi <= 0 || wi >= len(doc.Frames[fi].Words) {
		// wi == 0 would leave the first half empty; wi == len never happens
		// for a found word but guards a malformed frame.
		return doc, false
	}

	out := doc.Clone()
	orig := out.Frames[fi]

	first := orig
	first.Words = slices.Clone(orig.Words[:wi])
	first.EndTime = first.Words[len(first.Words)-1].End
	first.IsCustomBreak = true

	second := caption.SubtitleFrame{
		ID:            caption.NewID("frame", caption.FrameIDSet(out.Frames)),
		StartTime:     orig.Words[wi].Start,
		EndTime:       orig.Words[len(orig.Words)-1].End,
		Words:         slices.Clone(orig.Words[wi:]),
		SegmentID:     orig.SegmentID,
		IsCustomBreak: true,
		Style:         slices.Clone(orig.Style),
	}

	out.Frames[fi] = first
	out.Frames = slices.Insert(out.Frames, fi+1, second)
	out.Frames, _ = Repair(out.Frames)
	touch(out)
	return out, true
}
