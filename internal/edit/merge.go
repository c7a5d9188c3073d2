package edit

import (
	"slices"

	"github.com/subcue/subcue/pkg/caption"
)

// Direction selects the neighbour a frame is merged with.
type Direction string

const (
	// DirectionUp merges a frame into its earlier neighbour.
	DirectionUp Direction = "up"

	// DirectionDown merges a frame into its later neighbour.
	DirectionDown Direction = "down"
)

// IsValid reports whether d is a recognised merge direction.
func (d Direction) IsValid() bool {
	return d == DirectionUp || d == DirectionDown
}

// Merge combines the frame identified by frameID with its adjacent neighbour
// in the given direction. Any two time-adjacent frames may merge; the
// frames' segment lineage is carried but not consulted.
//
// Merging up keeps the earlier card's identity: the merged frame takes the
// neighbour's id and segment id. Merging down keeps this frame's. The merged
// window spans both sources, the word sets are concatenated and re-sorted by
// start (adjacency is not assumed pre-sorted), the custom-break flag is set
// if either source carried it, and this frame's style wins when present.
//
// No-op cases: unknown frame, invalid direction, or no neighbour on that side.
func Merge(doc *caption.Document, frameID string, dir Direction) (*caption.Document, bool) {
	if !dir.IsValid() {
		return doc, false
	}
	fi := doc.FrameIndex(frameID)
	if fi < 0 {
		return doc, false
	}
	ni := fi - 1
	if dir == DirectionDown {
		ni = fi + 1
	}
	if ni < 0 || ni >= len(doc.Frames) {
		return doc, false
	}

	out := doc.Clone()
	target := out.Frames[fi]
	neighbour := out.Frames[ni]

	var words []caption.WordSegment
	if dir == DirectionUp {
		words = append(words, neighbour.Words...)
		words = append(words, target.Words...)
	} else {
		words = append(words, target.Words...)
		words = append(words, neighbour.Words...)
	}
	slices.SortStableFunc(words, func(a, b caption.WordSegment) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	surviving := target
	if dir == DirectionUp {
		surviving = neighbour
	}
	style := target.Style
	if len(style) == 0 {
		style = neighbour.Style
	}
	merged := caption.SubtitleFrame{
		ID:            surviving.ID,
		StartTime:     min(target.StartTime, neighbour.StartTime),
		EndTime:       max(target.EndTime, neighbour.EndTime),
		Words:         words,
		SegmentID:     surviving.SegmentID,
		IsCustomBreak: target.IsCustomBreak || neighbour.IsCustomBreak,
		Style:         style,
	}

	lower := min(fi, ni)
	out.Frames = slices.Delete(out.Frames, lower, lower+2)
	out.Frames = slices.Insert(out.Frames, lower, merged)
	out.Frames, _ = Repair(out.Frames)
	touch(out)
	return out, true
}

// MergedFrameID reports which frame id survives a merge of frameID in the
// given direction, without performing the merge. Hosts use it to move
// selection to the merged frame. ok is false when the merge would no-op.
func MergedFrameID(doc *caption.Document, frameID string, dir Direction) (string, bool) {
	if !dir.IsValid() {
		return "", false
	}
	fi := doc.FrameIndex(frameID)
	if fi < 0 {
		return "", false
	}
	switch dir {
	case DirectionUp:
		if fi == 0 {
			return "", false
		}
		return doc.Frames[fi-1].ID, true
	default:
		if fi+1 >= len(doc.Frames) {
			return "", false
		}
		return frameID, true
	}
}
