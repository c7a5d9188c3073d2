package edit_test

import (
	"github.com/subcue/subcue/pkg/caption"
)

// twoFrameDoc builds the canonical two-frame fixture:
//
//	f1 [0.00–0.90]: w0 "Hello" (0.0–0.4), w1 "world" (0.5–0.9)
//	f2 [0.91–1.50]: w2 "again" (0.95–1.2), w3 "friend" (1.25–1.5)
func twoFrameDoc() *caption.Document {
	return &caption.Document{
		Frames: []caption.SubtitleFrame{
			{
				ID:        "f1",
				StartTime: 0.0,
				EndTime:   0.9,
				SegmentID: "seg-1",
				Words: []caption.WordSegment{
					{ID: "w0", Word: "Hello", OriginalWord: "Hello", Start: 0.0, End: 0.4, EditState: caption.EditStateNormal},
					{ID: "w1", Word: "world", OriginalWord: "world", Start: 0.5, End: 0.9, EditState: caption.EditStateNormal},
				},
			},
			{
				ID:        "f2",
				StartTime: 0.91,
				EndTime:   1.5,
				SegmentID: "seg-2",
				Words: []caption.WordSegment{
					{ID: "w2", Word: "again", OriginalWord: "again", Start: 0.95, End: 1.2, EditState: caption.EditStateNormal},
					{ID: "w3", Word: "friend", OriginalWord: "friend", Start: 1.25, End: 1.5, EditState: caption.EditStateNormal},
				},
			},
		},
		LastModified: 1000,
	}
}

// wordTexts flattens a frame's words to their display texts.
func wordTexts(f caption.SubtitleFrame) []string {
	out := make([]string, len(f.Words))
	for i, w := range f.Words {
		out[i] = w.Word
	}
	return out
}
