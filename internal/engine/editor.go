// Package engine provides the [Editor], the host-facing adapter around the
// pure editing operations in [edit] and the search engine in [search].
//
// The Editor always operates on an explicit snapshot it holds internally and
// publishes every successful mutation through the host's OnUpdate callback.
// Both host styles use the same codepath: a controlled host (which owns the
// document) feeds each published snapshot back via [Editor.SetDocument]; an
// uncontrolled host simply lets the Editor keep the only copy. The engine
// never branches on which style is in use.
//
// Time unit convention: the document stores seconds, hosts speak
// milliseconds. Every host-facing value (playhead position, seek targets)
// crosses the boundary exactly once, inside this package — the classic
// off-by-1000 defect lives and dies here.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/subcue/subcue/internal/config"
	"github.com/subcue/subcue/internal/edit"
	"github.com/subcue/subcue/internal/observe"
	"github.com/subcue/subcue/internal/search"
	"github.com/subcue/subcue/pkg/caption"
)

// Callbacks bundles the host-supplied hooks the Editor invokes. All fields
// are optional; nil callbacks are skipped. Callbacks are invoked
// synchronously (except the deferred self-correction publish) and are
// assumed fast and non-blocking — the engine places no timeout around them.
type Callbacks struct {
	// OnUpdate receives a full replacement snapshot after every successful
	// mutation, and the repaired snapshot after a deferred self-correction.
	OnUpdate func(doc *caption.Document)

	// OnFrameSelect is advisory: the engine calls it after operations that
	// should move focus (split selects the first half, merge the merged
	// frame, a word click its owning frame).
	OnFrameSelect func(frameID string)

	// OnTimeSeek is advisory: called with a millisecond playhead target after
	// a word click, per the configured seek policy.
	OnTimeSeek func(timeMs float64)
}

// Option is a functional option for configuring an [Editor].
type Option func(*Editor)

// WithCallbacks attaches the host callback set.
func WithCallbacks(cb Callbacks) Option {
	return func(e *Editor) { e.cb = cb }
}

// WithSeekPolicy sets where a word click seeks the playhead.
// Default: [config.SeekWordMidpoint].
func WithSeekPolicy(p config.SeekPolicy) Option {
	return func(e *Editor) {
		if p.IsValid() {
			e.seekPolicy = p
		}
	}
}

// WithMetrics attaches a metrics instance. When nil (the default), nothing
// is recorded.
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Editor) { e.metrics = m }
}

// WithSearchDebounce sets the quiet period for [Editor.SearchDebounced].
func WithSearchDebounce(d time.Duration) Option {
	return func(e *Editor) { e.debounce = search.NewDebouncer(d) }
}

// WithSuggestionLimit caps "did you mean" suggestions from [Editor.Suggest].
func WithSuggestionLimit(n int) Option {
	return func(e *Editor) { e.suggestLimit = n }
}

// Editor is the host adapter for the subtitle editing engine.
// All methods are safe for concurrent use.
type Editor struct {
	cb      Callbacks
	metrics *observe.Metrics

	mu           sync.Mutex
	doc          *caption.Document
	seekPolicy   config.SeekPolicy
	debounce     *search.Debouncer
	suggestLimit int

	// Deferred self-correction publish state. When several corrections are
	// scheduled in rapid succession only the newest snapshot is published —
	// later snapshot wins.
	pendMu       sync.Mutex
	pending      *caption.Document
	publishArmed bool
}

// New constructs an Editor with the supplied options. The document starts as
// nil — a valid "no subtitles" state — until the host calls
// [Editor.SetDocument].
func New(opts ...Option) *Editor {
	e := &Editor{
		seekPolicy:   config.SeekWordMidpoint,
		debounce:     search.NewDebouncer(0),
		suggestLimit: 5,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Close cancels any pending debounced search. The Editor remains usable for
// synchronous calls afterwards.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debounce.Stop()
}

// Document returns the current snapshot. May be nil.
func (e *Editor) Document() *caption.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// SetDocument replaces the current snapshot, repairing it first. When repair
// changed anything, the corrected snapshot becomes current immediately but
// the OnUpdate publish is deferred to a separate goroutine: pushing a
// self-correction back into a reactive host synchronously from the same call
// that handed us the data re-enters the host's update cycle.
//
// nil is accepted and means "no subtitles loaded".
func (e *Editor) SetDocument(doc *caption.Document) {
	repaired, adjusted := edit.RepairDocument(doc)

	e.mu.Lock()
	e.doc = repaired
	e.mu.Unlock()

	if adjusted == 0 {
		return
	}
	slog.Debug("editor: repaired document on load", "adjustments", adjusted)
	if e.metrics != nil {
		e.metrics.RepairAdjustments.Add(context.Background(), int64(adjusted))
	}
	e.schedulePublish(repaired)
}

// schedulePublish arms a deferred OnUpdate with doc. A newer snapshot
// scheduled before the publish fires replaces the older one.
func (e *Editor) schedulePublish(doc *caption.Document) {
	e.pendMu.Lock()
	e.pending = doc
	armed := e.publishArmed
	e.publishArmed = true
	e.pendMu.Unlock()
	if armed {
		return
	}
	go func() {
		e.pendMu.Lock()
		out := e.pending
		e.pending = nil
		e.publishArmed = false
		e.pendMu.Unlock()
		if e.cb.OnUpdate != nil {
			e.cb.OnUpdate(out)
		}
	}()
}

// apply runs a pure mutation against the current snapshot, stores and
// publishes the result when it changed, and records the operation.
func (e *Editor) apply(op string, fn func(doc *caption.Document) (*caption.Document, bool)) bool {
	e.mu.Lock()
	next, changed := fn(e.doc)
	if changed {
		e.doc = next
	}
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.RecordEditOperation(context.Background(), op, changed)
	}
	if !changed {
		return false
	}
	if e.cb.OnUpdate != nil {
		e.cb.OnUpdate(next)
	}
	return true
}

// selectFrame invokes the advisory frame-selection callback.
func (e *Editor) selectFrame(frameID string) {
	if e.cb.OnFrameSelect != nil {
		e.cb.OnFrameSelect(frameID)
	}
}

// Split breaks a frame in two at the given word and moves selection to the
// first resulting frame, which keeps the original id. Reports whether
// anything changed.
func (e *Editor) Split(frameID, wordID string) bool {
	ok := e.apply("split", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.Split(doc, frameID, wordID)
	})
	if ok {
		e.selectFrame(frameID)
	}
	return ok
}

// Merge combines a frame with its neighbour in the given direction and moves
// selection to the merged frame.
func (e *Editor) Merge(frameID string, dir edit.Direction) bool {
	var mergedID string
	ok := e.apply("merge", func(doc *caption.Document) (*caption.Document, bool) {
		id, valid := edit.MergedFrameID(doc, frameID, dir)
		if !valid {
			return doc, false
		}
		mergedID = id
		return edit.Merge(doc, frameID, dir)
	})
	if ok {
		e.selectFrame(mergedID)
	}
	return ok
}

// CombineWords merges two or more words of one frame into a single word and
// returns the combined word's id for selection.
func (e *Editor) CombineWords(wordIDs []string) (string, bool) {
	var newID string
	ok := e.apply("combine", func(doc *caption.Document) (*caption.Document, bool) {
		next, id, changed := edit.Combine(doc, wordIDs)
		newID = id
		return next, changed
	})
	if !ok {
		return "", false
	}
	return newID, true
}

// EditWord replaces a word's display text with a manual edit.
func (e *Editor) EditWord(frameID, wordID, text string) bool {
	return e.apply("edit_word", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.EditWord(doc, frameID, wordID, text)
	})
}

// BeginEdit marks a word as under manual edit.
func (e *Editor) BeginEdit(frameID, wordID string) bool {
	return e.apply("begin_edit", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.BeginEdit(doc, frameID, wordID)
	})
}

// CensorWord masks a word's text.
func (e *Editor) CensorWord(frameID, wordID string) bool {
	return e.apply("censor", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.CensorWord(doc, frameID, wordID)
	})
}

// UncensorWord restores a censored word to its original transcription.
func (e *Editor) UncensorWord(frameID, wordID string) bool {
	return e.apply("uncensor", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.UncensorWord(doc, frameID, wordID)
	})
}

// RemoveCaption suppresses a word from rendered captions.
func (e *Editor) RemoveCaption(frameID, wordID string) bool {
	return e.apply("remove_caption", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.RemoveCaption(doc, frameID, wordID)
	})
}

// RestoreCaption undoes a remove-caption, recovering the snapshotted text.
func (e *Editor) RestoreCaption(frameID, wordID string) bool {
	return e.apply("restore_caption", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.RestoreCaption(doc, frameID, wordID)
	})
}

// CutFromVideo marks a word for removal from exported media.
func (e *Editor) CutFromVideo(frameID, wordID string) bool {
	return e.apply("cut_from_video", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.CutFromVideo(doc, frameID, wordID)
	})
}

// RestoreWord fully resets a word to its original transcription.
func (e *Editor) RestoreWord(frameID, wordID string) bool {
	return e.apply("restore", func(doc *caption.Document) (*caption.Document, bool) {
		return edit.RestoreWord(doc, frameID, wordID)
	})
}

// Highlighted maps a host playhead position (milliseconds) to the set of
// word ids active at that instant. Read-only; safe to call on every tick.
func (e *Editor) Highlighted(currentTimeMs float64) map[string]struct{} {
	e.mu.Lock()
	doc := e.doc
	e.mu.Unlock()

	start := time.Now()
	ids := edit.Highlighted(doc, currentTimeMs)
	if e.metrics != nil {
		e.metrics.HighlightDuration.Record(context.Background(), time.Since(start).Seconds())
	}
	return ids
}

// ClickWord handles a user click on a word: selection moves to the owning
// frame and the playhead seeks to the word's start or midpoint per the
// configured policy. The seek target crosses the host boundary in
// milliseconds. Unknown ids are silent no-ops.
func (e *Editor) ClickWord(frameID, wordID string) bool {
	e.mu.Lock()
	doc := e.doc
	policy := e.seekPolicy
	e.mu.Unlock()

	fi := doc.FrameIndex(frameID)
	if fi < 0 {
		return false
	}
	wi := doc.Frames[fi].WordIndex(wordID)
	if wi < 0 {
		return false
	}
	word := doc.Frames[fi].Words[wi]

	e.selectFrame(frameID)
	if e.cb.OnTimeSeek != nil {
		target := word.Midpoint()
		if policy == config.SeekWordStart {
			target = word.Start
		}
		e.cb.OnTimeSeek(caption.SecondsToMillis(target))
	}
	return true
}

// Search indexes the current snapshot for query and returns the match list.
func (e *Editor) Search(query string, opts search.Options) *search.Results {
	e.mu.Lock()
	doc := e.doc
	e.mu.Unlock()

	start := time.Now()
	res := search.Find(doc, query, opts)
	if e.metrics != nil {
		e.metrics.RecordSearch(context.Background(), time.Since(start).Seconds(), res.Len())
	}
	return res
}

// SearchDebounced schedules a search to run after the configured quiet
// period, replacing any still-pending search. fn receives the results on a
// timer goroutine. Use for per-keystroke query updates so a multi-thousand
// word document is not re-indexed on every character.
func (e *Editor) SearchDebounced(query string, opts search.Options, fn func(*search.Results)) {
	e.mu.Lock()
	d := e.debounce
	e.mu.Unlock()
	d.Trigger(func() {
		fn(e.Search(query, opts))
	})
}

// Suggest returns near-miss words for a query that produced no matches.
func (e *Editor) Suggest(query string) []string {
	e.mu.Lock()
	doc := e.doc
	limit := e.suggestLimit
	e.mu.Unlock()
	return search.Suggest(doc, query, limit)
}

// ReplaceCurrent rewrites the word under res's cursor and publishes the new
// snapshot. The caller re-runs [Editor.Search] to refresh match positions.
func (e *Editor) ReplaceCurrent(res *search.Results, replacement string) bool {
	return e.apply("replace_one", func(doc *caption.Document) (*caption.Document, bool) {
		return res.ReplaceCurrent(doc, replacement)
	})
}

// ReplaceAll rewrites every match in res and publishes the final snapshot
// once. Returns the number of words rewritten.
func (e *Editor) ReplaceAll(res *search.Results, replacement string) int {
	replaced := 0
	e.apply("replace_all", func(doc *caption.Document) (*caption.Document, bool) {
		next, n := res.ReplaceAll(doc, replacement)
		replaced = n
		return next, n > 0
	})
	return replaced
}

// ApplyConfig hot-applies the reloadable parts of cfg: seek policy, search
// debounce, and suggestion limit. Safe to call from a [config.Watcher]
// onChange callback.
func (e *Editor) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if cfg.Editor.SeekPolicy.IsValid() {
		e.seekPolicy = cfg.Editor.SeekPolicy
	}
	e.suggestLimit = cfg.Search.SuggestionLimit
	e.debounce.Stop()
	e.debounce = search.NewDebouncer(cfg.DebounceDelay())
}
