package caption

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// alphanum is the alphabet used for random id suffixes.
const alphanum = "abcdefghijklmnopqrstuvwxyz0123456789"

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanum[rand.IntN(len(alphanum))]
	}
	return string(b)
}

// NewID generates an identifier with the given prefix that is guaranteed not
// to be present in existing. A single timestamp-based id is not trusted to be
// unique — two splits within the same millisecond would collide — so the
// generator loops: build a candidate from the current Unix-millisecond clock
// plus a random suffix, check it against existing, and retry on collision.
func NewID(prefix string, existing map[string]struct{}) string {
	for {
		id := fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), randSuffix(6))
		if _, taken := existing[id]; !taken {
			return id
		}
	}
}

// DuplicateFixID rewrites a colliding id into a visibly distinguishable form
// so that diagnostics can tell repaired ids apart from originals. index is the
// position of the offending frame at repair time.
func DuplicateFixID(id string, index int) string {
	return fmt.Sprintf("%s-duplicate-fix-%d-%d", id, time.Now().UnixMilli(), index)
}

// FrameIDSet collects every frame id in frames into a set, for use with [NewID].
func FrameIDSet(frames []SubtitleFrame) map[string]struct{} {
	set := make(map[string]struct{}, len(frames))
	for _, f := range frames {
		set[f.ID] = struct{}{}
	}
	return set
}

// WordIDSet collects every word id across frames into a set.
func WordIDSet(frames []SubtitleFrame) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range frames {
		for _, w := range f.Words {
			set[w.ID] = struct{}{}
		}
	}
	return set
}
