package responder

import "strings"

// rule is one entry of the ordered rule table. match must be side-effect free.
type rule struct {
	category Category
	match    func(in normalizedInput) bool
	render   func(r *Responder, in normalizedInput) string
}

// normalizedInput is Input with Text lower-cased once up front.
type normalizedInput struct {
	Input
	text string
}

// rules is evaluated top to bottom; the first match decides the category.
var rules = []rule{
	{
		category: CategoryBlocked,
		match:    func(in normalizedInput) bool { return containsAny(in.text, disallowedWords) },
		render:   func(*Responder, normalizedInput) string { return BlockedMessage },
	},
	{
		category: CategoryCheckIn,
		match:    func(in normalizedInput) bool { return containsAny(in.text, checkInPhrases) },
		render:   func(r *Responder, _ normalizedInput) string { return r.CheckIn() },
	},
	{
		category: CategoryPositiveReinforcement,
		match:    func(in normalizedInput) bool { return containsAny(in.text, positiveActions) },
		render: func(r *Responder, _ normalizedInput) string {
			return pick(r.picker, encouragements) + ". " + r.symbol()
		},
	},
	{
		category: CategoryCourseCorrection,
		match:    func(in normalizedInput) bool { return containsAny(in.text, negativeActions) },
		render: func(r *Responder, _ normalizedInput) string {
			return pick(r.picker, setbacks) + " " + r.symbol()
		},
	},
	{
		category: CategoryHealthSwap,
		match:    func(in normalizedInput) bool { return containsAny(in.text, swapPhrases) },
		render:   func(r *Responder, _ normalizedInput) string { return r.HealthSwap() },
	},
	{
		category: CategoryBudgetAlert,
		match: func(in normalizedInput) bool {
			return in.Budget != nil && in.DaysToPayday != nil && *in.Budget < BudgetAlertThreshold
		},
		render: func(r *Responder, in normalizedInput) string {
			return r.BudgetAlert(*in.Budget, *in.DaysToPayday)
		},
	},
	{
		category: CategoryChallenge,
		match:    func(in normalizedInput) bool { return strings.Contains(in.text, "challenge") },
		render:   func(r *Responder, _ normalizedInput) string { return r.Challenge() },
	},
	{
		category: CategoryMentalHealthTip,
		match: func(in normalizedInput) bool {
			return strings.Contains(in.text, ContextMentalHealth) || in.Mood == moodAnxious
		},
		render: func(*Responder, normalizedInput) string { return TipMentalHealth },
	},
	{
		category: CategoryContextTip,
		match:    func(in normalizedInput) bool { return in.Mood != "" },
		render:   func(r *Responder, in normalizedInput) string { return r.WellnessTip(in.Mood) },
	},
	{
		category: CategoryFallbackGreeting,
		match:    func(normalizedInput) bool { return true },
		render:   func(r *Responder, in normalizedInput) string { return r.greeting(in.Username) },
	},
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
