package usecase

import (
	"context"

	"wellness-assistant/internal/responder"
	"wellness-assistant/internal/wellness"
)

// Chat classifies the message with the keyword responder.
func (uc *implUseCase) Chat(ctx context.Context, input wellness.ChatInput) (wellness.ChatOutput, error) {
	out := uc.responder.Respond(responder.Input{
		Text:           input.Text,
		Username:       input.Username,
		Mood:           input.Mood,
		Budget:         input.Budget,
		DaysToPayday:   input.DaysToPayday,
		Habits:         input.Habits,
		PastChallenges: input.PastChallenges,
	})

	uc.l.Debugf(ctx, "wellness.usecase.Chat: category=%s", out.Category)
	return wellness.ChatOutput{Category: out.Category, Message: out.Message}, nil
}
