package responder

// Category is the label assigned to an input by the ordered rule set.
type Category string

const (
	CategoryBlocked               Category = "blocked"
	CategoryCheckIn               Category = "check_in"
	CategoryPositiveReinforcement Category = "positive_reinforcement"
	CategoryCourseCorrection      Category = "course_correction"
	CategoryHealthSwap            Category = "health_swap"
	CategoryBudgetAlert           Category = "budget_alert"
	CategoryChallenge             Category = "challenge"
	CategoryMentalHealthTip       Category = "mental_health_tip"
	CategoryContextTip            Category = "context_tip"
	CategoryFallbackGreeting      Category = "fallback_greeting"
)

// categoryOrder is every category in rule evaluation order.
var categoryOrder = []Category{
	CategoryBlocked,
	CategoryCheckIn,
	CategoryPositiveReinforcement,
	CategoryCourseCorrection,
	CategoryHealthSwap,
	CategoryBudgetAlert,
	CategoryChallenge,
	CategoryMentalHealthTip,
	CategoryContextTip,
	CategoryFallbackGreeting,
}

// Categories returns every category in rule evaluation order. The result is a copy.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

func (c Category) String() string {
	return string(c)
}

// Input is one classification request.
// Budget and DaysToPayday are pointers so "not supplied" is distinct from zero.
type Input struct {
	Text         string
	Username     string
	Mood         string
	Budget       *float64
	DaysToPayday *int

	// Accepted for compatibility with existing clients; no rule reads them.
	Habits         []string
	PastChallenges []map[string]any
}

// Output is the category together with its rendered message.
type Output struct {
	Category Category
	Message  string
}

// SwapExample pairs a spend with what skipping it buys.
type SwapExample struct {
	Spend string `json:"spend"`
	Swap  string `json:"swap"`
}
