package usecase

import (
	"context"

	"wellness-assistant/internal/wellness"
)

func (uc *implUseCase) Capabilities(ctx context.Context) wellness.Capabilities {
	return wellness.Capabilities{
		Assistant:     uc.assistant != nil && uc.assistant.Available(),
		Transcription: uc.transcriber != nil,
	}
}
