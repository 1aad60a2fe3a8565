package usecase

import (
	"context"

	"wellness-assistant/internal/responder"
	"wellness-assistant/pkg/llmprovider"
	"wellness-assistant/pkg/log"
	"wellness-assistant/pkg/whisper"
)

// Assistant is the LLM relay the use case forwards free-form questions to.
// *llmprovider.Manager satisfies it.
type Assistant interface {
	Available() bool
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of wellness.UseCase.
type implUseCase struct {
	l           log.Logger
	responder   *responder.Responder
	assistant   Assistant
	transcriber whisper.ITranscriber
}

// New creates a new wellness UseCase implementation.
// assistant and transcriber may be nil; the matching operations then report unavailable.
func New(l log.Logger, r *responder.Responder, assistant Assistant, transcriber whisper.ITranscriber) *implUseCase {
	if r == nil {
		r = responder.New()
	}
	return &implUseCase{
		l:           l,
		responder:   r,
		assistant:   assistant,
		transcriber: transcriber,
	}
}
