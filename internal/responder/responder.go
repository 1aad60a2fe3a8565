package responder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Responder classifies user text into a Category and renders a reply.
// It holds no mutable state; a Responder built with the default Picker is safe for concurrent use.
type Responder struct {
	picker Picker
}

// Option configures a Responder.
type Option func(*Responder)

// WithPicker replaces the randomness provider. A nil picker is ignored.
func WithPicker(p Picker) Option {
	return func(r *Responder) {
		if p != nil {
			r.picker = p
		}
	}
}

// New creates a Responder.
func New(opts ...Option) *Responder {
	r := &Responder{picker: globalPicker{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond runs the ordered rule table against in and returns the first matching category.
func (r *Responder) Respond(in Input) Output {
	n := normalizedInput{Input: in, text: strings.ToLower(in.Text)}
	for _, rl := range rules {
		if rl.match(n) {
			return Output{Category: rl.category, Message: rl.render(r, n)}
		}
	}
	// Unreachable: the last rule always matches.
	return Output{Category: CategoryFallbackGreeting, Message: r.greeting(in.Username)}
}

// IsBlocked reports whether text contains a disallowed word (case-insensitive).
func (r *Responder) IsBlocked(text string) bool {
	return containsAny(strings.ToLower(text), disallowedWords)
}

// CheckIn returns a random check-in question.
func (r *Responder) CheckIn() string {
	return pick(r.picker, checkInQuestions)
}

// Challenge returns a random challenge suggestion.
func (r *Responder) Challenge() string {
	return pick(r.picker, challengeSuggestions)
}

// HealthSwap renders a random spend-to-swap example.
func (r *Responder) HealthSwap() string {
	ex := pick(r.picker, swapExamples)
	return fmt.Sprintf("Skipping that %s = %s.", ex.Spend, ex.Swap)
}

// BudgetAlert renders a random low-funds template. It does not check the threshold.
func (r *Responder) BudgetAlert(budget float64, days int) string {
	tmpl := pick(r.picker, budgetAlertTemplates)
	return strings.NewReplacer(
		"{budget}", FormatAmount(budget),
		"{days}", strconv.Itoa(days),
	).Replace(tmpl)
}

// WellnessTip maps a recognized context label to its tip; anything else gets the generic tip.
func (r *Responder) WellnessTip(context string) string {
	if tip, ok := contextTips[context]; ok {
		return tip
	}
	return TipGeneric
}

func (r *Responder) symbol() string {
	return pick(r.picker, decorativeSymbols)
}

func (r *Responder) greeting(username string) string {
	if username == "" {
		username = DefaultUsername
	}
	return fmt.Sprintf(greetingTemplate, username, r.symbol())
}

// DailyAllowance spreads budget over days. Non-positive days yield 0.
func DailyAllowance(budget float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return roundCents(budget / float64(days))
}

// FormatAmount rounds to 2 decimal places and drops trailing zeros: 3000 -> "3000", 12.5 -> "12.5".
func FormatAmount(v float64) string {
	v = roundCents(v)
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
