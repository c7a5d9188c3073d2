package edit

import (
	"slices"
	"time"

	"github.com/subcue/subcue/pkg/caption"
)

// Repair returns a corrected copy of frames that satisfies the document
// timing invariants: pairwise-distinct frame ids, frames sorted ascending by
// start time, no frame starting at or before its predecessor's end (colliding
// frames are re-spaced by [caption.FrameGap]), and every word clamped into
// its frame's window.
//
// The input may be arbitrarily malformed — duplicate ids, overlapping or
// inverted windows — as happens with snapshots freshly loaded from disk or
// produced by a buggy upstream transcriber. Repair never fails; an empty
// input is a valid "no subtitles" state and is returned as-is.
//
// The second return value counts the individual adjustments made. Zero means
// the input already satisfied every invariant and callers need not publish a
// new snapshot.
func Repair(frames []caption.SubtitleFrame) ([]caption.SubtitleFrame, int) {
	if len(frames) == 0 {
		return nil, 0
	}

	adjusted := 0
	fixed := make([]caption.SubtitleFrame, len(frames))
	seen := make(map[string]struct{}, len(frames))

	// Pass 1: deduplicate ids in array order. A repeated id is rewritten into
	// a visibly tagged form so diagnostics can tell repaired frames apart.
	for i, f := range frames {
		c := f.Clone()
		if _, dup := seen[c.ID]; dup {
			c.ID = caption.DuplicateFixID(c.ID, i)
			adjusted++
		}
		seen[c.ID] = struct{}{}
		fixed[i] = c
	}

	// Pass 2: sort by start time.
	slices.SortStableFunc(fixed, func(a, b caption.SubtitleFrame) int {
		switch {
		case a.StartTime < b.StartTime:
			return -1
		case a.StartTime > b.StartTime:
			return 1
		}
		return 0
	})

	// Pass 3: walk left to right closing overlaps. A frame starting at or
	// before its predecessor's end is pushed forward by FrameGap, keeps at
	// least MinFrameDuration, and has its words clamped into the new window.
	for i := 1; i < len(fixed); i++ {
		prev := fixed[i-1]
		cur := &fixed[i]
		if cur.StartTime > prev.EndTime {
			continue
		}
		cur.StartTime = prev.EndTime + caption.FrameGap
		cur.EndTime = max(cur.EndTime, cur.StartTime+caption.MinFrameDuration)
		clampWords(cur)
		adjusted++
	}

	return fixed, adjusted
}

// clampWords forces every word's timing into the frame's window, preserving
// start <= end per word.
func clampWords(f *caption.SubtitleFrame) {
	for i := range f.Words {
		w := &f.Words[i]
		w.Start = min(max(w.Start, f.StartTime), f.EndTime)
		w.End = min(max(w.End, w.Start), f.EndTime)
	}
}

// touch bumps doc.LastModified to the current Unix-millisecond time, strictly
// greater than the previous stamp even when two mutations land within the
// same millisecond.
func touch(doc *caption.Document) {
	now := time.Now().UnixMilli()
	if now <= doc.LastModified {
		now = doc.LastModified + 1
	}
	doc.LastModified = now
}

// RepairDocument applies [Repair] to doc and returns the corrected snapshot
// plus the number of adjustments made. When nothing needed fixing, the input
// document is returned unchanged and the count is zero, so hosts can skip
// publishing.
func RepairDocument(doc *caption.Document) (*caption.Document, int) {
	if doc == nil {
		return nil, 0
	}
	fixed, adjusted := Repair(doc.Frames)
	if adjusted == 0 {
		return doc, 0
	}
	out := &caption.Document{Frames: fixed, LastModified: doc.LastModified}
	touch(out)
	return out, adjusted
}
