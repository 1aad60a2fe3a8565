package usecase

import (
	"fmt"
	"strings"

	"wellness-assistant/internal/responder"
)

const (
	assistantTemperature = 0.7
	assistantMaxTokens   = 400

	coachSystemPrompt = `You are a warm, practical financial wellness coach for young adults in Nigeria.
Keep replies short (under 120 words), encouraging and concrete. Amounts are in Naira (₦).
Suggest one small next step. Never give investment, legal or tax advice; suggest a professional instead.
If the user sounds distressed, acknowledge their feelings before talking about money.`
)

// buildSystemInstruction appends whatever user context was supplied to the coach persona.
func buildSystemInstruction(username, mood string, budget *float64, days *int) string {
	var sb strings.Builder
	sb.WriteString(coachSystemPrompt)

	var facts []string
	if username != "" {
		facts = append(facts, fmt.Sprintf("Name: %s", username))
	}
	if mood != "" {
		facts = append(facts, fmt.Sprintf("Current mood: %s", mood))
	}
	if budget != nil {
		facts = append(facts, fmt.Sprintf("Remaining budget: ₦%s", responder.FormatAmount(*budget)))
	}
	if days != nil {
		facts = append(facts, fmt.Sprintf("Days to payday: %d", *days))
	}
	if budget != nil && days != nil && *days > 0 {
		facts = append(facts, fmt.Sprintf("Daily allowance: ₦%s", responder.FormatAmount(responder.DailyAllowance(*budget, *days))))
	}

	if len(facts) > 0 {
		sb.WriteString("\n\nWhat you know about the user:\n- ")
		sb.WriteString(strings.Join(facts, "\n- "))
	}
	return sb.String()
}
