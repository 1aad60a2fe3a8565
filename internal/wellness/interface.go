package wellness

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Keyword responder
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	CheckIn(ctx context.Context) (MessageOutput, error)
	Challenge(ctx context.Context) (MessageOutput, error)
	HealthSwap(ctx context.Context) (MessageOutput, error)
	FundsAlert(ctx context.Context, input FundsAlertInput) (FundsAlertOutput, error)
	WellnessTip(ctx context.Context, input WellnessTipInput) (MessageOutput, error)

	// Upstream relays
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)

	// Capabilities reports which optional collaborators are wired.
	Capabilities(ctx context.Context) Capabilities
}
