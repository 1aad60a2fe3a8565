package usecase

import (
	"context"
	"fmt"
	"strings"

	"wellness-assistant/internal/responder"
	"wellness-assistant/internal/wellness"
	"wellness-assistant/pkg/llmprovider"
)

// Ask relays a free-form question to the LLM providers.
// Blocked text is answered locally and never leaves the service.
func (uc *implUseCase) Ask(ctx context.Context, input wellness.AskInput) (wellness.AskOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return wellness.AskOutput{}, wellness.ErrEmptyText
	}

	if uc.responder.IsBlocked(text) {
		uc.l.Infof(ctx, "wellness.usecase.Ask: blocked message not forwarded")
		return wellness.AskOutput{Message: responder.BlockedMessage, Blocked: true}, nil
	}

	if uc.assistant == nil || !uc.assistant.Available() {
		return wellness.AskOutput{}, wellness.ErrAssistantUnavailable
	}

	resp, err := uc.assistant.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: buildSystemInstruction(input.Username, input.Mood, input.Budget, input.DaysToPayday),
		Messages:          []llmprovider.Message{{Role: llmprovider.RoleUser, Text: text}},
		Temperature:       assistantTemperature,
		MaxTokens:         assistantMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "wellness.usecase.Ask: GenerateContent: %v", err)
		return wellness.AskOutput{}, fmt.Errorf("%w: %v", wellness.ErrUpstreamFailed, err)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		uc.l.Warnf(ctx, "wellness.usecase.Ask: empty reply from %s", resp.ProviderName)
		return wellness.AskOutput{}, wellness.ErrEmptyReply
	}

	return wellness.AskOutput{
		Message:  reply,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
		Cached:   resp.Cached,
	}, nil
}
