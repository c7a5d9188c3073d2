// Package caption defines the shared data model for word-timed subtitle
// documents.
//
// These types form the lingua franca between the editing engine, host
// applications, and export consumers (SRT serializers, burned-caption
// renderers). They are intentionally minimal — each package defines its own
// domain types, but the frame/word timing contract lives here to avoid
// circular imports.
//
// Timing convention: all Start/End/StartTime/EndTime values are in seconds.
// Host-facing APIs (playhead position, seek targets) use milliseconds; the
// conversion happens exactly once at the host boundary (see [SecondsToMillis]
// and [MillisToSeconds]).
package caption

import (
	"encoding/json"
	"slices"
)

// Timing constants shared by the invariant enforcer and all mutation
// operations. Downstream renderers rely on these exact values, so they are
// part of the wire contract rather than configuration.
const (
	// FrameGap is the minimum gap in seconds enforced between the end of one
	// frame and the start of the next.
	FrameGap = 0.01

	// MinFrameDuration is the minimum duration in seconds a frame is allowed
	// to shrink to when the enforcer pushes its start time forward.
	MinFrameDuration = 0.1
)

// EditState describes the user-facing editing state of a single word.
type EditState string

const (
	// EditStateNormal is the default state: the word displays its current text.
	EditStateNormal EditState = "normal"

	// EditStateCensored masks the word's text (first character plus asterisks).
	EditStateCensored EditState = "censored"

	// EditStateRemovedCaption suppresses the word from rendered captions while
	// retaining its text internally for restoration.
	EditStateRemovedCaption EditState = "removedCaption"

	// EditStateStrikethrough marks the word for removal from exported media.
	// The caption text is kept for reference.
	EditStateStrikethrough EditState = "strikethrough"

	// EditStateEditing marks a word currently under manual text edit in a host UI.
	EditStateEditing EditState = "editing"
)

// IsValid reports whether s is a recognised edit state.
func (s EditState) IsValid() bool {
	switch s {
	case EditStateNormal, EditStateCensored, EditStateRemovedCaption,
		EditStateStrikethrough, EditStateEditing:
		return true
	}
	return false
}

// WordSegment is a single timed word within a subtitle frame.
type WordSegment struct {
	// ID is the stable unique identifier for this word.
	ID string `json:"id"`

	// Word is the current display text. Mutable through edit operations.
	Word string `json:"word"`

	// OriginalWord is the text as originally transcribed. It is never mutated
	// by any operation and is the source of truth for restore and censor.
	OriginalWord string `json:"originalWord"`

	// Start and End are the word's timing in seconds. Invariant: Start <= End,
	// and both lie within the owning frame's window.
	Start float64 `json:"start"`
	End   float64 `json:"end"`

	// EditState is the word's current editing state.
	EditState EditState `json:"editState"`

	// PreviousWord snapshots Word immediately before a remove-caption
	// transition so the exact prior text (including manual edits) can be
	// restored. Empty when no snapshot exists.
	PreviousWord string `json:"previousWord,omitempty"`

	// IsKeyword and IsPause are presentation flags, orthogonal to editing.
	IsKeyword bool `json:"isKeyword,omitempty"`
	IsPause   bool `json:"isPause,omitempty"`
}

// Duration returns the word's duration in seconds.
func (w WordSegment) Duration() float64 {
	return w.End - w.Start
}

// Midpoint returns the temporal midpoint of the word in seconds.
func (w WordSegment) Midpoint() float64 {
	return (w.Start + w.End) / 2
}

// SubtitleFrame is a time-boxed caption card holding an ordered run of words.
type SubtitleFrame struct {
	// ID is unique across the whole document, including after split/merge.
	ID string `json:"id"`

	// StartTime and EndTime bound the frame's window in seconds. Every word's
	// timing lies within [StartTime, EndTime].
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`

	// Words is the frame's word sequence, sorted ascending by Start. A frame
	// is never left empty by any operation.
	Words []WordSegment `json:"words"`

	// SegmentID traces lineage to the originating transcription segment.
	// Carried through split/merge but not consulted by any operation.
	SegmentID string `json:"segmentId,omitempty"`

	// IsCustomBreak is set once the frame boundary was produced or touched by
	// a user split or merge, as opposed to an original transcription boundary.
	IsCustomBreak bool `json:"isCustomBreak,omitempty"`

	// Style is presentation-only data, opaque to the engine. It is inherited
	// unchanged through split/merge and never altered by editing operations.
	Style json.RawMessage `json:"style,omitempty"`
}

// Duration returns the frame's duration in seconds.
func (f SubtitleFrame) Duration() float64 {
	return f.EndTime - f.StartTime
}

// Contains reports whether t (seconds) falls within the frame's window.
func (f SubtitleFrame) Contains(t float64) bool {
	return t >= f.StartTime && t <= f.EndTime
}

// WordIndex returns the index of the word with the given id, or -1.
func (f SubtitleFrame) WordIndex(wordID string) int {
	return slices.IndexFunc(f.Words, func(w WordSegment) bool { return w.ID == wordID })
}

// Clone returns a deep copy of the frame. The Style bytes are copied so a
// host mutating the returned frame cannot corrupt the source snapshot.
func (f SubtitleFrame) Clone() SubtitleFrame {
	out := f
	out.Words = slices.Clone(f.Words)
	out.Style = slices.Clone(f.Style)
	return out
}

// Document is a complete word-timed subtitle document: the unit of state
// exchanged between the editing engine and its host.
//
// Documents are treated as immutable snapshots. Every mutation operation
// returns a brand-new Document and leaves its input untouched; hosts detect
// change through the strictly increasing LastModified stamp.
type Document struct {
	// Frames is the time-ordered frame sequence. No two frames overlap.
	Frames []SubtitleFrame `json:"frames"`

	// LastModified is a Unix-millisecond timestamp that strictly increases on
	// every successful mutation. Hosts use it for change detection.
	LastModified int64 `json:"lastModified"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		Frames:       make([]SubtitleFrame, len(d.Frames)),
		LastModified: d.LastModified,
	}
	for i, f := range d.Frames {
		out.Frames[i] = f.Clone()
	}
	return out
}

// FrameIndex returns the index of the frame with the given id, or -1.
func (d *Document) FrameIndex(frameID string) int {
	if d == nil {
		return -1
	}
	return slices.IndexFunc(d.Frames, func(f SubtitleFrame) bool { return f.ID == frameID })
}

// FrameAt returns the frame whose window contains t (seconds). At most one
// frame can match because frame windows never overlap.
func (d *Document) FrameAt(t float64) (SubtitleFrame, bool) {
	if d == nil {
		return SubtitleFrame{}, false
	}
	for _, f := range d.Frames {
		if f.Contains(t) {
			return f, true
		}
	}
	return SubtitleFrame{}, false
}

// WordCount returns the total number of words across all frames.
func (d *Document) WordCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, f := range d.Frames {
		n += len(f.Words)
	}
	return n
}

// SecondsToMillis converts an engine-side time in seconds to a host-facing
// millisecond value.
func SecondsToMillis(s float64) float64 { return s * 1000 }

// MillisToSeconds converts a host-facing millisecond value to engine-side
// seconds.
func MillisToSeconds(ms float64) float64 { return ms / 1000 }
