package rules

// TextKind names a length-limited output field.
type TextKind string

const (
	KindThesis TextKind = "thesis"
	KindAdvice TextKind = "advice"
	KindRitual TextKind = "ritual"
)

// Ellipsis marks truncated text and counts toward the budget.
const Ellipsis = "..."

// Limits are per-field budgets in characters. Zero disables a limit.
type Limits struct {
	Thesis int `mapstructure:"thesis"`
	Advice int `mapstructure:"advice"`
	Ritual int `mapstructure:"ritual"`
}

// DefaultLimits fit the English text tables.
var DefaultLimits = Limits{Thesis: 480, Advice: 320, Ritual: 240}

func (l Limits) budget(kind TextKind) int {
	switch kind {
	case KindThesis:
		return l.Thesis
	case KindAdvice:
		return l.Advice
	case KindRitual:
		return l.Ritual
	}
	return 0
}

// Truncate cuts text to the budget of kind, counting runes. Text over the
// budget keeps budget-3 runes followed by the ellipsis; the cut ignores word
// boundaries.
func (l Limits) Truncate(text string, kind TextKind) string {
	return Truncate(text, l.budget(kind))
}

// Truncate cuts text to limit runes including the ellipsis. limit <= 0
// leaves text untouched.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	keep := limit - len(Ellipsis)
	if keep < 0 {
		return Ellipsis[:limit]
	}
	return string(runes[:keep]) + Ellipsis
}
