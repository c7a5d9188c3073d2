// Package mock provides in-memory mock implementations of the export
// collaborator interfaces for use in unit tests.
package mock

import (
	"context"
	"io"
	"sync"

	"github.com/subcue/subcue/pkg/caption"
	"github.com/subcue/subcue/pkg/export"
)

// Compile-time interface assertions.
var (
	_ export.SubtitleExporter = (*SubtitleExporter)(nil)
	_ export.VideoRenderer    = (*VideoRenderer)(nil)
)

// SubtitleExporter records Export calls and returns a configurable error.
type SubtitleExporter struct {
	// ExportErr is returned from Export when non-nil.
	ExportErr error

	mu       sync.Mutex
	exported []*caption.Document
}

// Export records doc and returns ExportErr.
func (m *SubtitleExporter) Export(_ context.Context, doc *caption.Document, _ io.Writer) error {
	m.mu.Lock()
	m.exported = append(m.exported, doc)
	m.mu.Unlock()
	return m.ExportErr
}

// Exported returns the documents passed to Export, in order.
func (m *SubtitleExporter) Exported() []*caption.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*caption.Document, len(m.exported))
	copy(out, m.exported)
	return out
}

// RenderCall records the arguments of a single [VideoRenderer.Render] call.
type RenderCall struct {
	Doc        *caption.Document
	InputPath  string
	OutputPath string
}

// VideoRenderer records Render calls and returns a configurable error.
type VideoRenderer struct {
	// RenderErr is returned from Render when non-nil.
	RenderErr error

	mu    sync.Mutex
	calls []RenderCall
}

// Render records the call and returns RenderErr.
func (m *VideoRenderer) Render(_ context.Context, doc *caption.Document, inputPath, outputPath string) error {
	m.mu.Lock()
	m.calls = append(m.calls, RenderCall{Doc: doc, InputPath: inputPath, OutputPath: outputPath})
	m.mu.Unlock()
	return m.RenderErr
}

// Calls returns the recorded Render calls, in order.
func (m *VideoRenderer) Calls() []RenderCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RenderCall, len(m.calls))
	copy(out, m.calls)
	return out
}
