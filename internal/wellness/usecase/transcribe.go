package usecase

import (
	"context"
	"fmt"

	"wellness-assistant/internal/wellness"
)

// Transcribe relays an audio upload to the transcription service.
func (uc *implUseCase) Transcribe(ctx context.Context, input wellness.TranscribeInput) (wellness.TranscribeOutput, error) {
	if input.Content == nil {
		return wellness.TranscribeOutput{}, wellness.ErrEmptyAudio
	}
	if uc.transcriber == nil {
		return wellness.TranscribeOutput{}, wellness.ErrTranscriberUnavailable
	}

	text, err := uc.transcriber.Transcribe(ctx, input.Filename, input.Content)
	if err != nil {
		uc.l.Errorf(ctx, "wellness.usecase.Transcribe: %v", err)
		return wellness.TranscribeOutput{}, fmt.Errorf("%w: %v", wellness.ErrUpstreamFailed, err)
	}

	out := wellness.TranscribeOutput{Text: text}
	if input.Reply {
		reply, err := uc.Chat(ctx, wellness.ChatInput{Text: text})
		if err != nil {
			return wellness.TranscribeOutput{}, err
		}
		out.Reply = &reply
	}
	return out, nil
}
