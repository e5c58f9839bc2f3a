package synergy

import (
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

// FocusTemplate is category-specific advice for a sigil letter and suit.
type FocusTemplate struct {
	ID       string
	Category domain.Category
	Letter   byte
	Suit     domain.Suit
	Advice   string
	Ritual   string
	Strength float64
}

// FocusThreshold is the strength a template needs before it is shown.
const FocusThreshold = 0.8

// LoveFocusHeader opens the category advice block.
const LoveFocusHeader = "[Love focus]"

var focusTemplates = []FocusTemplate{
	{"love_V_cups", domain.CategoryLove, 'V', domain.Cups,
		"Show your honest feelings through action. Value the emotion, and still take the step forward.",
		"Tell them today, in words, that you are grateful.", 0.9},
	{"love_V_wands", domain.CategoryLove, 'V', domain.Wands,
		"A time to move with passion. Your initiative moves the relationship forward.",
		"Make a date or an invitation happen today.", 0.95},
	{"love_V_swords", domain.CategoryLove, 'V', domain.Swords,
		"Sort your thoughts before acting. Don't overthink, but don't act without thinking either.",
		"Write your feelings in a notebook today, then tell them.", 0.8},
	{"love_V_pentacles", domain.CategoryLove, 'V', domain.Pentacles,
		"A time to show love through concrete actions. Treasure what leaves a lasting form.",
		"Give them something tangible today, a gift or a letter.", 0.85},

	{"love_S_cups", domain.CategoryLove, 'S', domain.Cups,
		"Move forward while checking feelings carefully. No rush; honour what both of you feel.",
		"Make time today to really listen to them.", 0.9},
	{"love_S_wands", domain.CategoryLove, 'S', domain.Wands,
		"Carefully, but with courage. Start with a small step.",
		"Try one small surprise or kind gesture today.", 0.8},
	{"love_S_swords", domain.CategoryLove, 'S', domain.Swords,
		"A time to read the situation calmly. Value analysis and observation.",
		"Take time today to look back on the relationship objectively.", 0.85},
	{"love_S_pentacles", domain.CategoryLove, 'S', domain.Pentacles,
		"A time of steady building. Grow a stable relationship.",
		"Talk concretely about your future together today.", 0.9},

	{"love_I_cups", domain.CategoryLove, 'I', domain.Cups,
		"A time to face your own feelings deeply. Listen to the voice inside.",
		"Make time alone today and check what you really feel.", 0.95},
	{"love_I_wands", domain.CategoryLove, 'I', domain.Wands,
		"Practise letting the passion inside come out. Express it at your own pace.",
		"Write your feelings in a journal today, then share a little of it with them.", 0.75},
	{"love_I_swords", domain.CategoryLove, 'I', domain.Swords,
		"A time to sort out thought and feeling. Your analytical mind helps here.",
		"Write down the pros and cons of the relationship calmly today.", 0.9},
	{"love_I_pentacles", domain.CategoryLove, 'I', domain.Pentacles,
		"Inner fullness becomes the ground of the relationship. Take care of yourself.",
		"Make time today for something that fills you up.", 0.8},

	{"love_E_cups", domain.CategoryLove, 'E', domain.Cups,
		"A time when feelings come across richly. What you feel reaches them easily now.",
		"Show affection today in at least three ways: words, attitude and action.", 0.95},
	{"love_E_wands", domain.CategoryLove, 'E', domain.Wands,
		"Express your passion fully. Your energy makes the relationship shine.",
		"Take the lead today, for example by proposing a date plan.", 0.95},
	{"love_E_swords", domain.CategoryLove, 'E', domain.Swords,
		"A time to say exactly what you think. Balance logic and feeling.",
		"Sort out your real feelings today, then talk constructively.", 0.85},
	{"love_E_pentacles", domain.CategoryLove, 'E', domain.Pentacles,
		"Words alone are not enough; show love in a form they can see.",
		"Do one concrete thing for them today, like cooking, cleaning or a gift.", 0.9},
}

// LookupFocus finds the template for category, the code's core letter and
// suit. An exact match wins; otherwise the first template for the same
// category and letter is used.
func LookupFocus(category domain.Category, code sigil.Code, suit domain.Suit) (FocusTemplate, bool) {
	letter := code.Core()
	var partial *FocusTemplate
	for i, t := range focusTemplates {
		if t.Category != category || t.Letter != letter {
			continue
		}
		if t.Suit == suit {
			return t, true
		}
		if partial == nil {
			partial = &focusTemplates[i]
		}
	}
	if partial != nil {
		return *partial, true
	}
	return FocusTemplate{}, false
}

// FocusAdvice returns the love focus block for a spread, or "" when the
// category is not love, no suit dominates, or the template is too weak.
func FocusAdvice(category domain.Category, code sigil.Code, dominant domain.Suit) string {
	if category != domain.CategoryLove || dominant == domain.NoSuit || code == "" {
		return ""
	}
	t, ok := LookupFocus(category, code, dominant)
	if !ok || t.Advice == "" || t.Strength < FocusThreshold {
		return ""
	}
	return LoveFocusHeader + "\n" + t.Advice
}

// AppendFocus adds the love focus block to an insight, separated by a blank
// line.
func AppendFocus(insight string, category domain.Category, code sigil.Code, dominant domain.Suit) string {
	focus := FocusAdvice(category, code, dominant)
	switch {
	case focus == "":
		return insight
	case insight == "":
		return focus
	}
	return insight + "\n\n" + focus
}
