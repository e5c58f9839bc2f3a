package interpret

import (
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

// ConditionKind tags which field of a Condition is meaningful.
type ConditionKind int

const (
	KindMajor ConditionKind = iota + 1
	KindSuit
	KindOrientation
	KindRank
	KindCard
	KindAnyOf
)

// Condition is a predicate over a drawn card. Only the fields of its Kind
// are read.
type Condition struct {
	Kind        ConditionKind
	Suit        domain.Suit
	Orientation domain.Orientation
	Ranks       []domain.Rank
	CardIDs     []string
	Any         []Condition
}

// IsMajor matches any major arcana card.
func IsMajor() Condition { return Condition{Kind: KindMajor} }

// IsSuit matches minor arcana cards of suit s.
func IsSuit(s domain.Suit) Condition { return Condition{Kind: KindSuit, Suit: s} }

// IsOrientation matches cards drawn with orientation o.
func IsOrientation(o domain.Orientation) Condition {
	return Condition{Kind: KindOrientation, Orientation: o}
}

// IsRank matches minor arcana cards of any of the given ranks.
func IsRank(r ...domain.Rank) Condition { return Condition{Kind: KindRank, Ranks: r} }

// IsCard matches cards by id.
func IsCard(ids ...string) Condition { return Condition{Kind: KindCard, CardIDs: ids} }

// AnyOf matches when at least one sub-condition matches.
func AnyOf(c ...Condition) Condition { return Condition{Kind: KindAnyOf, Any: c} }

// Matches evaluates the condition. Unknown kinds never match.
func (c Condition) Matches(card domain.Card, drawn domain.DrawnCard) bool {
	switch c.Kind {
	case KindMajor:
		return card.Arcana == domain.Major
	case KindSuit:
		return card.Suit == c.Suit
	case KindOrientation:
		return drawn.Orientation == c.Orientation
	case KindRank:
		for _, r := range c.Ranks {
			if card.Rank == r {
				return true
			}
		}
	case KindCard:
		for _, id := range c.CardIDs {
			if card.ID == id {
				return true
			}
		}
	case KindAnyOf:
		for _, sub := range c.Any {
			if sub.Matches(card, drawn) {
				return true
			}
		}
	}
	return false
}

// LensRule pairs a condition with the message shown when it matches.
type LensRule struct {
	When    Condition
	Message string
}

var courtRanks = []domain.Rank{domain.Page, domain.Knight, domain.Queen, domain.King}

var lensRules = map[sigil.Code][]LensRule{
	"VIEQ": {
		{IsMajor(), "This larger current is a chance to open a new road. Trust your intuition and jump in."},
		{IsSuit(domain.Wands), "The fire of passion is lit. Before reasoning it out, just start moving."},
	},
	"VIED": {
		{IsMajor(), "A big force is at work. Treat this as the decisive opening and make up your mind."},
		{IsRank(domain.King, domain.Queen), "Time to lead. Don't wait for others; make the call yourself."},
	},
	"VILQ": {
		{IsSuit(domain.Swords), "A logical breakthrough is in sight. Drop the emotional arguments and plan from facts alone."},
		{IsOrientation(domain.Reversed), "There is a contradiction here, and that contradiction is exactly the weak point to press."},
	},
	"VILD": {
		{IsOrientation(domain.Reversed), "You have found a bug in the system. Rather than patch it, rewrite the mechanism itself."},
		{IsSuit(domain.Pentacles), "The structure needs rebuilding. Favor a long-term system over a short-term gain."},
	},
	"VCEQ": {
		{AnyOf(IsSuit(domain.Cups), IsRank(courtRanks...)), "Working with the key people is the point. Don't push alone; bring others in and build the flow together."},
	},
	"VCED": {
		{IsSuit(domain.Pentacles), "You need visible results more than a beautiful plan. Make one concrete move you can make today."},
	},
	"VCLQ": {
		{IsOrientation(domain.Upright), "The shortest route is visible. Cut the waste and go get the result efficiently."},
	},
	"VCLD": {
		{IsOrientation(domain.Reversed), "The flow is stuck. Find the one bottleneck; clear it and the whole thing runs."},
	},
	"SIEQ": {
		{AnyOf(IsCard("MA_18"), IsSuit(domain.Cups)), "Your sense that something is off is the right answer, more than any fact check. Follow the inner voice."},
	},
	"SIED": {
		{IsOrientation(domain.Reversed), "There is no need to force a move. Waiting for the waves to settle is a wise strategy too."},
	},
	"SILQ": {
		{IsOrientation(domain.Reversed), "Face the contradiction inside you before any outside opponent. Do your words and your real feelings match?"},
	},
	"SILD": {
		{IsCard("MA_05", "MA_04"), "Originality is a risk here. Following precedent and proven guidelines is the safest road."},
	},
	"SCEQ": {
		{AnyOf(IsSuit(domain.Cups), IsCard("MA_03")), "There is no rush. For now, protect and nurture what matters over chasing results."},
	},
	"SCED": {
		{IsCard("MA_16", "MA_15"), "Don't be optimistic. Assume the worst case and shore up your defenses."},
	},
	"SCLQ": {
		{IsCard("MA_11", "MA_14"), "Are you leaning too far one way? Before moving forward, restore the balance."},
	},
	"SCLD": {
		{IsSuit(domain.Pentacles), "No adventures needed. Focus on firming up your footing and building a base that will not shake."},
	},
}

const (
	fallbackChange    = "This calls for your power to change things. Take a step without fear."
	fallbackStability = "Caution is your strength here. Don't rush; check your footing before you go."
)

// Lens returns the first matching rule message for code and drawn card. With
// no matching rule, codes starting with V or S get their generic line.
// Unknown cards and other codes yield "".
func (e *Engine) Lens(code sigil.Code, drawn domain.DrawnCard) string {
	card, ok := e.catalog.Lookup(drawn.CardID)
	if !ok {
		return ""
	}
	for _, rule := range lensRules[code] {
		if rule.When.Matches(card, drawn) {
			return rule.Message
		}
	}
	switch code.Core() {
	case 'V':
		return fallbackChange
	case 'S':
		return fallbackStability
	}
	return ""
}

const aetherAffinity = "Your sigil has a strong affinity with the major arcana, so the symbols give you the whole picture quickly. "

// TypeLens returns the profile lens of code, prefixed with the affinity
// sentence when the code leans aether and major arcana dominate.
func TypeLens(code sigil.Code, a Analysis) string {
	lens := sigil.LensFor(code)
	if sigil.AxisDominance(code).ArcanaFocus == "aether" && a.MajorDominant() {
		lens = aetherAffinity + lens
	}
	return lens
}
