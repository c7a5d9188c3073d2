package edit

import (
	"strings"

	"github.com/subcue/subcue/pkg/caption"
)

// updateWord locates a word by frame and word id, clones the document, and
// applies fn to the clone's copy of the word. fn returning false signals a
// failed precondition; the input document is then returned untouched.
func updateWord(doc *caption.Document, frameID, wordID string, fn func(*caption.WordSegment) bool) (*caption.Document, bool) {
	fi := doc.FrameIndex(frameID)
	if fi < 0 {
		return doc, false
	}
	wi := doc.Frames[fi].WordIndex(wordID)
	if wi < 0 {
		return doc, false
	}
	out := doc.Clone()
	if !fn(&out.Frames[fi].Words[wi]) {
		return doc, false
	}
	touch(out)
	return out, true
}

// MaskWord returns the censored form of text: two characters or fewer become
// "**", anything longer keeps its first character followed by one asterisk
// per remaining character. Counting is rune-based so multi-byte text masks
// to the visible length.
func MaskWord(text string) string {
	runes := []rune(text)
	if len(runes) <= 2 {
		return "**"
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

// EditWord replaces a word's display text with a manual edit and returns it
// to the normal state. The original transcription is untouched, so a later
// [RestoreWord] still recovers it.
func EditWord(doc *caption.Document, frameID, wordID, text string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		w.Word = text
		w.EditState = caption.EditStateNormal
		return true
	})
}

// BeginEdit marks a word as under manual edit, for hosts that render an
// inline editor. No-op when the word is already in the editing state.
func BeginEdit(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		if w.EditState == caption.EditStateEditing {
			return false
		}
		w.EditState = caption.EditStateEditing
		return true
	})
}

// CensorWord masks a word's text based on its original transcription.
// No-op when the word is already censored.
func CensorWord(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		if w.EditState == caption.EditStateCensored {
			return false
		}
		w.Word = MaskWord(w.OriginalWord)
		w.EditState = caption.EditStateCensored
		return true
	})
}

// UncensorWord restores a censored word to its original transcription.
// No-op when the word is not censored.
func UncensorWord(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		if w.EditState != caption.EditStateCensored {
			return false
		}
		w.Word = w.OriginalWord
		w.EditState = caption.EditStateNormal
		return true
	})
}

// RemoveCaption suppresses a word from rendered captions. The current text —
// including any manual edits — is snapshotted into PreviousWord so
// [RestoreCaption] recovers it exactly. No-op when already removed.
func RemoveCaption(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		if w.EditState == caption.EditStateRemovedCaption {
			return false
		}
		w.PreviousWord = w.Word
		w.EditState = caption.EditStateRemovedCaption
		return true
	})
}

// RestoreCaption undoes [RemoveCaption], restoring the snapshotted text when
// one exists. No-op when the word is not removed.
func RestoreCaption(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		if w.EditState != caption.EditStateRemovedCaption {
			return false
		}
		if w.PreviousWord != "" {
			w.Word = w.PreviousWord
		}
		w.PreviousWord = ""
		w.EditState = caption.EditStateNormal
		return true
	})
}

// CutFromVideo marks a word for removal from exported media. The caption
// text is retained for reference. Allowed from any state.
func CutFromVideo(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		if w.EditState == caption.EditStateStrikethrough {
			return false
		}
		w.EditState = caption.EditStateStrikethrough
		return true
	})
}

// RestoreWord fully resets a word: the display text reverts to the original
// transcription, manual edits and remove-caption snapshots are discarded, and
// the state returns to normal. Allowed from any state.
func RestoreWord(doc *caption.Document, frameID, wordID string) (*caption.Document, bool) {
	return updateWord(doc, frameID, wordID, func(w *caption.WordSegment) bool {
		w.Word = w.OriginalWord
		w.PreviousWord = ""
		w.EditState = caption.EditStateNormal
		return true
	})
}
