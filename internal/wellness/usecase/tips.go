package usecase

import (
	"context"

	"wellness-assistant/internal/responder"
	"wellness-assistant/internal/wellness"
)

func (uc *implUseCase) CheckIn(ctx context.Context) (wellness.MessageOutput, error) {
	return wellness.MessageOutput{Category: responder.CategoryCheckIn, Message: uc.responder.CheckIn()}, nil
}

func (uc *implUseCase) Challenge(ctx context.Context) (wellness.MessageOutput, error) {
	return wellness.MessageOutput{Category: responder.CategoryChallenge, Message: uc.responder.Challenge()}, nil
}

func (uc *implUseCase) HealthSwap(ctx context.Context) (wellness.MessageOutput, error) {
	return wellness.MessageOutput{Category: responder.CategoryHealthSwap, Message: uc.responder.HealthSwap()}, nil
}

// FundsAlert always renders an alert, whatever the amount; BelowThreshold tells the caller
// whether the chat flow would have raised it on its own.
func (uc *implUseCase) FundsAlert(ctx context.Context, input wellness.FundsAlertInput) (wellness.FundsAlertOutput, error) {
	return wellness.FundsAlertOutput{
		Message:        uc.responder.BudgetAlert(input.Budget, input.Days),
		PerDay:         responder.DailyAllowance(input.Budget, input.Days),
		BelowThreshold: input.Budget < responder.BudgetAlertThreshold,
	}, nil
}

func (uc *implUseCase) WellnessTip(ctx context.Context, input wellness.WellnessTipInput) (wellness.MessageOutput, error) {
	return wellness.MessageOutput{Category: responder.CategoryContextTip, Message: uc.responder.WellnessTip(input.Context)}, nil
}
