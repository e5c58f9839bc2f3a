package interpret

import "github.com/komekomeaaa/tarot/internal/domain"

// Ritual is one small action suggestion.
type Ritual struct {
	ID    string
	Text  string
	Suits []domain.Suit // NoSuit stands for the major arcana
	// Categories empty means every category.
	Categories  []domain.Category
	ForReversed bool
}

var allSuits = []domain.Suit{domain.NoSuit, domain.Wands, domain.Cups, domain.Swords, domain.Pentacles}

var rituals = []Ritual{
	{
		ID:    "general_01",
		Text:  "Spend five minutes writing down how you feel right now. Don't look for the right answer; just write the words that come.",
		Suits: allSuits,
	},
	{
		ID:    "general_02",
		Text:  "Before the day ends, put into words the one thing you want to confirm. Narrowing it to one gets things moving.",
		Suits: allSuits,
	},
	{
		ID:    "wands_01",
		Text:  "Today, start the one thing you want to do, for five minutes. It doesn't have to be finished; having started is what builds momentum.",
		Suits: []domain.Suit{domain.Wands},
	},
	{
		ID:         "wands_02",
		Text:       "Write down today's top three priorities and finish only the first. The rest can wait until tomorrow.",
		Suits:      []domain.Suit{domain.Wands},
		Categories: []domain.Category{domain.CategoryWork},
	},
	{
		ID:         "wands_03",
		Text:       "Move lightly for five minutes: a stretch or a short walk. When the body moves, motivation follows.",
		Suits:      []domain.Suit{domain.Wands},
		Categories: []domain.Category{domain.CategoryHealth},
	},
	{
		ID:         "cups_01",
		Text:       "Say \"thank you\" or \"good work\" to one person today. No heavy conversation needed.",
		Suits:      []domain.Suit{domain.Cups},
		Categories: []domain.Category{domain.CategoryLove, domain.CategoryRelationship, domain.CategoryFamily},
	},
	{
		ID:    "cups_02",
		Text:  "Make a drink you like and spend five minutes just tasting it. Emotional recovery starts there.",
		Suits: []domain.Suit{domain.Cups},
	},
	{
		ID:         "cups_03",
		Text:       "Make today's theme \"expect nothing from them\". The less you ask for, the easier it is for them to respond.",
		Suits:      []domain.Suit{domain.Cups},
		Categories: []domain.Category{domain.CategoryLove, domain.CategoryRelationship},
	},
	{
		ID:    "swords_01",
		Text:  "Split today's fog into facts and feelings on paper. Separating them alone makes the decision lighter.",
		Suits: []domain.Suit{domain.Swords},
	},
	{
		ID:         "swords_02",
		Text:       "Decide one thing you will not do today. Subtracting clears the head better than adding.",
		Suits:      []domain.Suit{domain.Swords},
		Categories: []domain.Category{domain.CategoryWork},
	},
	{
		ID:         "swords_03",
		Text:       "Breathe deeply for five minutes without thinking about anything. An overloaded mind recovers with rest.",
		Suits:      []domain.Suit{domain.Swords},
		Categories: []domain.Category{domain.CategoryHealth},
	},
	{
		ID:    "pentacles_01",
		Text:  "Tidy just one spot today: the desk, your wallet, one place is enough.",
		Suits: []domain.Suit{domain.Pentacles},
	},
	{
		ID:         "pentacles_02",
		Text:       "Check one expense from this week. You don't need to look at everything; seeing one changes how you think.",
		Suits:      []domain.Suit{domain.Pentacles},
		Categories: []domain.Category{domain.CategoryMoney},
	},
	{
		ID:         "pentacles_03",
		Text:       "Before the day ends, note the one next thing to do. Once it is written down, you can rest easy.",
		Suits:      []domain.Suit{domain.Pentacles},
		Categories: []domain.Category{domain.CategoryWork},
	},
	{
		ID:    "major_01",
		Text:  "Change today's question from \"why?\" to \"what will I do?\". Designing the action works better than chasing the cause.",
		Suits: []domain.Suit{domain.NoSuit},
	},
	{
		ID:    "major_02",
		Text:  "Today, decide one thing you will not decide. Holding off on purpose is a decision too.",
		Suits: []domain.Suit{domain.NoSuit},
	},
	{
		ID:          "reversed_01",
		Text:        "Today, put settling things ahead of pushing them. Don't add tasks; just decide the order.",
		Suits:       allSuits,
		ForReversed: true,
	},
	{
		ID:          "reversed_02",
		Text:        "Remove one item from this week's schedule today. Recovery starts with a gap.",
		Suits:       allSuits,
		ForReversed: true,
	},
	{
		ID:          "reversed_03",
		Text:        "Close your eyes for five minutes without judging anything. This phase needs time to settle inside.",
		Suits:       allSuits,
		ForReversed: true,
	},
}

// DefaultRitual is used if no ritual can be selected.
const DefaultRitual = "Take a little time today for yourself, just one thing."

func (r Ritual) hasSuit(s domain.Suit) bool {
	for _, own := range r.Suits {
		if own == s {
			return true
		}
	}
	return false
}

func (r Ritual) forCategory(c domain.Category) bool {
	if len(r.Categories) == 0 {
		return true
	}
	for _, own := range r.Categories {
		if own == c {
			return true
		}
	}
	return false
}

// RitualCandidates lists the rituals eligible for a spread. Reversal-heavy
// spreads only get the settling rituals. Otherwise a ritual qualifies when
// it fits the dominant suit (or the major arcana, or any suit when none
// dominates) and the category. With no match, the all-category rituals are
// used.
func RitualCandidates(dominant domain.Suit, category domain.Category, reversedRatio float64) []Ritual {
	var out []Ritual
	if reversedRatio >= ReversedHeavyRatio {
		for _, r := range rituals {
			if r.ForReversed {
				out = append(out, r)
			}
		}
		return out
	}

	for _, r := range rituals {
		if r.ForReversed {
			continue
		}
		suitMatch := dominant == domain.NoSuit || r.hasSuit(dominant) || r.hasSuit(domain.NoSuit)
		if suitMatch && r.forCategory(category) {
			out = append(out, r)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, r := range rituals {
		if !r.ForReversed && len(r.Categories) == 0 {
			out = append(out, r)
		}
	}
	return out
}

// SelectRitual picks one eligible ritual with rng.
func SelectRitual(dominant domain.Suit, category domain.Category, reversedRatio float64, rng domain.RNG) string {
	candidates := RitualCandidates(dominant, category, reversedRatio)
	if len(candidates) == 0 {
		return DefaultRitual
	}
	return candidates[rng.Intn(len(candidates))].Text
}
