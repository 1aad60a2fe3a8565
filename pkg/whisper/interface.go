package whisper

import (
	"context"
	"io"
)

// ITranscriber turns an audio upload into text.
// Implementations are safe for concurrent use.
type ITranscriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}
