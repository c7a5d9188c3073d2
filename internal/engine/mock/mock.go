// Package mock provides an in-memory mock host for use in unit tests of the
// [engine.Editor].
//
// The mock records every callback invocation so tests can assert on published
// snapshots, selection moves, and seek targets. It is safe for concurrent use.
//
// Example:
//
//	h := mock.NewHost()
//	e := engine.New(engine.WithCallbacks(h.Callbacks()))
//	e.SetDocument(doc)
//	e.Split(doc.Frames[0].ID, doc.Frames[0].Words[1].ID)
//	updates := h.Updates() // published snapshots, in order
package mock

import (
	"sync"

	"github.com/subcue/subcue/internal/engine"
	"github.com/subcue/subcue/pkg/caption"
)

// Host records every host callback the editor invokes.
type Host struct {
	mu sync.Mutex

	updates      []*caption.Document
	frameSelects []string
	timeSeeks    []float64
}

// NewHost returns an empty recording host.
func NewHost() *Host {
	return &Host{}
}

// Callbacks returns an [engine.Callbacks] wired to this recorder.
func (h *Host) Callbacks() engine.Callbacks {
	return engine.Callbacks{
		OnUpdate: func(doc *caption.Document) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.updates = append(h.updates, doc)
		},
		OnFrameSelect: func(frameID string) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.frameSelects = append(h.frameSelects, frameID)
		},
		OnTimeSeek: func(timeMs float64) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.timeSeeks = append(h.timeSeeks, timeMs)
		},
	}
}

// Updates returns the snapshots published via OnUpdate, in order.
func (h *Host) Updates() []*caption.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*caption.Document, len(h.updates))
	copy(out, h.updates)
	return out
}

// LastUpdate returns the most recently published snapshot, or nil.
func (h *Host) LastUpdate() *caption.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.updates) == 0 {
		return nil
	}
	return h.updates[len(h.updates)-1]
}

// FrameSelects returns the frame ids passed to OnFrameSelect, in order.
func (h *Host) FrameSelects() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.frameSelects))
	copy(out, h.frameSelects)
	return out
}

// TimeSeeks returns the millisecond seek targets passed to OnTimeSeek.
func (h *Host) TimeSeeks() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]float64, len(h.timeSeeks))
	copy(out, h.timeSeeks)
	return out
}
