// Package export declares the interfaces of the downstream consumers of a
// finished [caption.Document]: the SRT serializer and the burned-caption
// video renderer.
//
// Both collaborators live outside the editing engine; this package exists so
// hosts and tests can depend on the contract without pulling in FFmpeg or
// file-format code. Implementations must reproduce the same word-highlight
// timing the engine's highlight resolver computes — the document's per-word
// start/end semantics are a shared contract, not a hint.
package export

import (
	"context"
	"io"

	"github.com/subcue/subcue/pkg/caption"
)

// SubtitleExporter serializes a document into a subtitle file format such as
// SRT. Words in the removed-caption state are omitted from the output text;
// strikethrough words are kept (they are cut from the media, not the captions).
type SubtitleExporter interface {
	// Export writes the serialized subtitles for doc to w.
	// The context bounds the operation; implementations should return
	// ctx.Err() when cancelled.
	Export(ctx context.Context, doc *caption.Document, w io.Writer) error
}

// VideoRenderer burns the document's captions into a video file. The
// rendered word highlighting must match the engine's highlight resolver:
// a word is active exactly while the playhead is within its [start, end].
type VideoRenderer interface {
	// Render produces an output video at outputPath from the video at
	// inputPath with doc's captions burned in. Long-running; honours ctx.
	Render(ctx context.Context, doc *caption.Document, inputPath, outputPath string) error
}
