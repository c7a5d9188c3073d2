package engine_test

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/subcue/subcue/internal/config"
	"github.com/subcue/subcue/internal/edit"
	"github.com/subcue/subcue/internal/engine"
	"github.com/subcue/subcue/internal/engine/mock"
	"github.com/subcue/subcue/internal/search"
	"github.com/subcue/subcue/pkg/caption"
)

// cleanDoc builds a two-frame document that passes repair untouched.
func cleanDoc() *caption.Document {
	return &caption.Document{
		Frames: []caption.SubtitleFrame{
			{
				ID: "f1", StartTime: 0, EndTime: 0.9,
				Words: []caption.WordSegment{
					{ID: "w0", Word: "Hello", OriginalWord: "Hello", Start: 0, End: 0.4, EditState: caption.EditStateNormal},
					{ID: "w1", Word: "world", OriginalWord: "world", Start: 0.5, End: 0.9, EditState: caption.EditStateNormal},
				},
			},
			{
				ID: "f2", StartTime: 0.91, EndTime: 1.5,
				Words: []caption.WordSegment{
					{ID: "w2", Word: "again", OriginalWord: "again", Start: 0.95, End: 1.2, EditState: caption.EditStateNormal},
					{ID: "w3", Word: "friend", OriginalWord: "friend", Start: 1.25, End: 1.5, EditState: caption.EditStateNormal},
				},
			},
		},
		LastModified: 1000,
	}
}

// overlappingDoc builds a document the repair pass must adjust.
func overlappingDoc() *caption.Document {
	doc := cleanDoc()
	doc.Frames[1].StartTime = 0.5 // overlaps f1's [0, 0.9]
	return doc
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestSetDocument_CleanSnapshotIsSilent(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()

	doc := cleanDoc()
	e.SetDocument(doc)

	if got := e.Document(); got != doc {
		t.Error("clean snapshot must be stored verbatim")
	}
	time.Sleep(50 * time.Millisecond)
	if n := len(h.Updates()); n != 0 {
		t.Errorf("updates published = %d, want 0 for a clean load", n)
	}
}

func TestSetDocument_RepairsAndPublishesDeferred(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()

	e.SetDocument(overlappingDoc())

	// The corrected snapshot is current immediately.
	repaired := e.Document()
	f1, f2 := repaired.Frames[0], repaired.Frames[1]
	if f2.StartTime < f1.EndTime+caption.FrameGap-1e-9 {
		t.Errorf("frames still overlap after load: f1 ends %v, f2 starts %v", f1.EndTime, f2.StartTime)
	}

	// The publish arrives on a separate goroutine with the same snapshot.
	waitFor(t, func() bool { return h.LastUpdate() == repaired })
}

func TestSetDocument_LaterSnapshotWins(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()

	e.SetDocument(overlappingDoc())
	e.SetDocument(overlappingDoc())
	final := e.Document()

	waitFor(t, func() bool { return h.LastUpdate() == final })
}

func TestSetDocument_NilMeansNoSubtitles(t *testing.T) {
	t.Parallel()

	e := engine.New()
	defer e.Close()

	e.SetDocument(nil)
	if e.Document() != nil {
		t.Error("Document = non-nil, want nil")
	}
	if e.Split("f1", "w1") {
		t.Error("Split on empty editor: changed=true, want false")
	}
	if id, ok := e.CombineWords([]string{"w0", "w1"}); ok || id != "" {
		t.Errorf("CombineWords on empty editor = (%q, %v), want no-op", id, ok)
	}
	if ids := e.Highlighted(200); len(ids) != 0 {
		t.Errorf("Highlighted on empty editor = %v, want none", ids)
	}
}

func TestSplit_PublishesAndSelectsFirstHalf(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if !e.Split("f1", "w1") {
		t.Fatal("Split: changed=false, want true")
	}
	if got := e.Document(); len(got.Frames) != 3 {
		t.Fatalf("frame count = %d, want 3", len(got.Frames))
	}
	if got := h.LastUpdate(); got != e.Document() {
		t.Error("published snapshot differs from the stored one")
	}
	if sel := h.FrameSelects(); !slices.Equal(sel, []string{"f1"}) {
		t.Errorf("frame selects = %v, want [f1]", sel)
	}
}

func TestMerge_SelectsMergedFrame(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if !e.Merge("f2", edit.DirectionUp) {
		t.Fatal("Merge: changed=false, want true")
	}
	if sel := h.FrameSelects(); !slices.Equal(sel, []string{"f1"}) {
		t.Errorf("frame selects = %v, want [f1] (the surviving frame)", sel)
	}
}

func TestNoOp_DoesNotPublishOrSelect(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if e.Split("f1", "w0") { // first word: nothing to split off
		t.Error("Split at word 0: changed=true, want false")
	}
	if e.Merge("f1", edit.DirectionUp) {
		t.Error("Merge with no neighbour: changed=true, want false")
	}
	if e.CensorWord("f1", "missing") {
		t.Error("CensorWord on unknown id: changed=true, want false")
	}
	if n := len(h.Updates()); n != 0 {
		t.Errorf("updates published = %d, want 0", n)
	}
	if n := len(h.FrameSelects()); n != 0 {
		t.Errorf("frame selects = %d, want 0", n)
	}
}

func TestCombineWords_ReturnsNewWordID(t *testing.T) {
	t.Parallel()

	e := engine.New()
	defer e.Close()
	e.SetDocument(cleanDoc())

	id, ok := e.CombineWords([]string{"w0", "w1"})
	if !ok || id == "" {
		t.Fatalf("CombineWords = (%q, %v), want a fresh id and true", id, ok)
	}
	frame := e.Document().Frames[0]
	if len(frame.Words) != 1 || frame.Words[0].ID != id {
		t.Errorf("combined frame words = %v, want the single combined word %q", frame.Words, id)
	}
}

func TestClickWord_SeeksMidpointByDefault(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if !e.ClickWord("f1", "w1") {
		t.Fatal("ClickWord: ok=false, want true")
	}
	if sel := h.FrameSelects(); !slices.Equal(sel, []string{"f1"}) {
		t.Errorf("frame selects = %v, want [f1]", sel)
	}
	seeks := h.TimeSeeks()
	if len(seeks) != 1 {
		t.Fatalf("seeks = %v, want exactly one", seeks)
	}
	// w1 spans 0.5–0.9s; midpoint 0.7s crosses the boundary as 700ms.
	if math.Abs(seeks[0]-700) > 1e-6 {
		t.Errorf("seek target = %vms, want 700ms", seeks[0])
	}
}

func TestClickWord_SeekPolicyStart(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(
		engine.WithCallbacks(h.Callbacks()),
		engine.WithSeekPolicy(config.SeekWordStart),
	)
	defer e.Close()
	e.SetDocument(cleanDoc())

	e.ClickWord("f1", "w1")
	seeks := h.TimeSeeks()
	if len(seeks) != 1 || math.Abs(seeks[0]-500) > 1e-6 {
		t.Errorf("seek targets = %v, want [500]", seeks)
	}
}

func TestClickWord_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if e.ClickWord("f1", "missing") {
		t.Error("ClickWord on unknown word: ok=true, want false")
	}
	if e.ClickWord("missing", "w0") {
		t.Error("ClickWord on unknown frame: ok=true, want false")
	}
	if n := len(h.TimeSeeks()); n != 0 {
		t.Errorf("seeks recorded = %d, want 0", n)
	}
}

// A controlled host feeds every published snapshot back through SetDocument;
// the engine must behave identically to the uncontrolled style.
func TestControlledHost_RoundTripsSnapshots(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if !e.CensorWord("f1", "w0") {
		t.Fatal("CensorWord: changed=false, want true")
	}
	e.SetDocument(h.LastUpdate()) // the host hands the snapshot back

	if !e.EditWord("f1", "w1", "World") {
		t.Fatal("EditWord after round trip: changed=false, want true")
	}
	doc := e.Document()
	if w := doc.Frames[0].Words[0]; w.EditState != caption.EditStateCensored {
		t.Errorf("w0 state = %q, want censored after round trip", w.EditState)
	}
	if w := doc.Frames[0].Words[1]; w.Word != "World" {
		t.Errorf("w1 = %q, want World", w.Word)
	}
}

func TestMutations_BumpLastModifiedMonotonically(t *testing.T) {
	t.Parallel()

	e := engine.New()
	defer e.Close()
	e.SetDocument(cleanDoc())

	prev := e.Document().LastModified
	steps := []func() bool{
		func() bool { return e.CensorWord("f1", "w0") },
		func() bool { return e.UncensorWord("f1", "w0") },
		func() bool { return e.Split("f1", "w1") },
		func() bool { return e.Merge("f2", edit.DirectionUp) },
	}
	for i, step := range steps {
		if !step() {
			t.Fatalf("step %d: changed=false, want true", i)
		}
		got := e.Document().LastModified
		if got <= prev {
			t.Fatalf("step %d: LastModified = %d, want > %d", i, got, prev)
		}
		prev = got
	}
}

func TestSearchAndReplaceThroughEditor(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	res := e.Search("world", search.Options{})
	if res.Len() != 1 {
		t.Fatalf("matches = %d, want 1", res.Len())
	}
	if n := e.ReplaceAll(res, "globe"); n != 1 {
		t.Fatalf("replaced = %d, want 1", n)
	}
	if w := e.Document().Frames[0].Words[1]; w.Word != "globe" {
		t.Errorf("word = %q, want globe", w.Word)
	}
	if got := h.LastUpdate(); got != e.Document() {
		t.Error("replace must publish the new snapshot")
	}
}

func TestSearchDebounced_DeliversResults(t *testing.T) {
	t.Parallel()

	e := engine.New(engine.WithSearchDebounce(10 * time.Millisecond))
	defer e.Close()
	e.SetDocument(cleanDoc())

	got := make(chan int, 1)
	e.SearchDebounced("o", search.Options{}, func(res *search.Results) {
		got <- res.Len()
	})

	select {
	case n := <-got:
		if n != 2 { // "Hello" and "world"
			t.Errorf("debounced matches = %d, want 2", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never delivered")
	}
}

func TestSuggest_UsesConfiguredLimit(t *testing.T) {
	t.Parallel()

	e := engine.New(engine.WithSuggestionLimit(1))
	defer e.Close()
	e.SetDocument(cleanDoc())

	if got := e.Suggest("worl"); len(got) != 1 || got[0] != "world" {
		t.Errorf("Suggest = %v, want [world]", got)
	}
}

func TestApplyConfig_HotSwapsSeekPolicy(t *testing.T) {
	t.Parallel()

	h := mock.NewHost()
	e := engine.New(engine.WithCallbacks(h.Callbacks()))
	defer e.Close()
	e.SetDocument(cleanDoc())

	cfg := config.Default()
	cfg.Editor.SeekPolicy = config.SeekWordStart
	e.ApplyConfig(cfg)

	e.ClickWord("f1", "w1")
	seeks := h.TimeSeeks()
	if len(seeks) != 1 || math.Abs(seeks[0]-500) > 1e-6 {
		t.Errorf("seek targets after reload = %v, want [500]", seeks)
	}
}
