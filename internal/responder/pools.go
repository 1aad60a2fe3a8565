package responder

// BudgetAlertThreshold is the remaining-budget level below which the budget alert fires.
const BudgetAlertThreshold = 4000.0

const (
	DefaultUsername = "friend"

	BlockedMessage = "Let’s keep things positive and respectful. What’s on your mind?"

	TipStress       = "Money stress is real — but you’re not alone. Let’s break it down into easy steps 💡"
	TipBudgetRelief = "For quick relief, try a one-week essentials-only challenge. You might be surprised!"
	TipDetox        = "A few days off impulse shopping can refresh your mind and wallet."
	TipMentalHealth = "Finances and mental health go hand-in-hand. Maybe invest in a self-care day?"
	TipGeneric      = "Small changes = big progress. Want a quick tip?"

	greetingTemplate = "Hey %s, I’m here to help with money stuff — what’s on your mind today? %s"
)

// Recognized wellness-tip contexts.
const (
	ContextStress       = "stress"
	ContextBudgetRelief = "budget relief"
	ContextDetox        = "detox"
	ContextMentalHealth = "mental health"
)

const moodAnxious = "anxious"

// Pools are read-only after package init. Selection never mutates them.
var (
	disallowedWords = []string{"fuck", "shit", "bitch", "damn"}

	checkInPhrases  = []string{"how are you", "check-in"}
	positiveActions = []string{"saved", "skipped", "cancelled subscription"}
	negativeActions = []string{"splurged", "bought", "impulse"}
	swapPhrases     = []string{"swap", "healthy"}

	decorativeSymbols = []string{"😊", "👍", "🎯", "🚀", "💪", "🍀", "😅", "🧘", "🤑", "🏆", "🙌", "💡", "❤️"}

	encouragements = []string{
		"Solid progress",
		"You’re building real momentum",
		"That’s an impressive step forward",
		"Keep it up. You’re doing great",
		"That’s how habits are made",
	}

	setbacks = []string{
		"That's not the move — let's course-correct!",
		"Oops, not ideal. Let's get you on track!",
		"Hmm, we can do better — let's fix it together",
		"Let's rethink that plan for a stronger outcome",
		"Well, that’s a setback — but we can rebound!",
	}

	checkInQuestions = []string{
		"How are you feeling about money today?",
		"What’s your financial vibe right now?",
		"Got any money worries today?",
	}

	// Placeholders: {budget}, {days}.
	budgetAlertTemplates = []string{
		"₦{budget} left and {days} days to payday. Need a survival plan?",
		"You’ve got ₦{budget} for {days} days — let's stretch it together!",
		"Low funds: ₦{budget} for {days} days. Ready to strategize?",
	}

	challengeSuggestions = []string{
		"How about saving ₦1k/day this week for something fun?",
		"Try a 'no-spend weekend' — game on?",
		"Beat your record for cooking at home this week?",
		"Could you review your spending for surprises today?",
	}

	swapExamples = []SwapExample{
		{Spend: "₦6k drinks", Swap: "a month of gym access"},
		{Spend: "₦4k latte", Swap: "a week of healthy meal preps"},
		{Spend: "ordering takeaway", Swap: "a therapy session"},
		{Spend: "impulse online shop", Swap: "two self-care days budget"},
	}

	contextTips = map[string]string{
		ContextStress:       TipStress,
		ContextBudgetRelief: TipBudgetRelief,
		ContextDetox:        TipDetox,
		ContextMentalHealth: TipMentalHealth,
	}
)

// PoolSet is a copy of every response pool, for listing and membership checks.
type PoolSet struct {
	DecorativeSymbols    []string
	Encouragements       []string
	Setbacks             []string
	CheckInQuestions     []string
	BudgetAlertTemplates []string
	ChallengeSuggestions []string
	SwapExamples         []SwapExample
	ContextTips          map[string]string
}

// Pools returns copies of the response pools. Mutating the result does not affect the Responder.
func Pools() PoolSet {
	tips := make(map[string]string, len(contextTips))
	for k, v := range contextTips {
		tips[k] = v
	}
	return PoolSet{
		DecorativeSymbols:    append([]string(nil), decorativeSymbols...),
		Encouragements:       append([]string(nil), encouragements...),
		Setbacks:             append([]string(nil), setbacks...),
		CheckInQuestions:     append([]string(nil), checkInQuestions...),
		BudgetAlertTemplates: append([]string(nil), budgetAlertTemplates...),
		ChallengeSuggestions: append([]string(nil), challengeSuggestions...),
		SwapExamples:         append([]SwapExample(nil), swapExamples...),
		ContextTips:          tips,
	}
}
