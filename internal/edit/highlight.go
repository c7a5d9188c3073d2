package edit

import "github.com/subcue/subcue/pkg/caption"

// Highlighted maps a host playhead position (milliseconds) to the set of
// word ids active at that instant. It is pure and read-only, cheap enough to
// call on every playhead tick.
//
// Only the single frame whose window contains the time is scanned. Scanning
// every frame would let words bleed across frames when stale data still has
// numerically overlapping windows; narrowing to the active frame keeps the
// highlight exclusive to one caption card.
func Highlighted(doc *caption.Document, currentTimeMs float64) map[string]struct{} {
	ids := make(map[string]struct{})
	if doc == nil {
		return ids
	}
	t := caption.MillisToSeconds(currentTimeMs)
	frame, ok := doc.FrameAt(t)
	if !ok {
		return ids
	}
	for _, w := range frame.Words {
		if t >= w.Start && t <= w.End {
			ids[w.ID] = struct{}{}
		}
	}
	return ids
}
