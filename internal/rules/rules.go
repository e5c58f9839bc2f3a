// Package rules holds the interpretation layer ranking, the conflict rules
// between a sigil and a card, and the output length limits.
package rules

import (
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

// Layer is one source of interpretation.
type Layer string

const (
	LayerSafety      Layer = "safety"
	LayerMajorArcana Layer = "major_arcana"
	LayerSigilCore   Layer = "sigil_core"
	LayerPosition    Layer = "position"
	LayerSynergy     Layer = "synergy"
)

// LayerPriority weights a layer; heavier layers win.
type LayerPriority struct {
	Layer  Layer
	Weight float64
}

var priorities = []LayerPriority{
	{LayerSafety, 1.0},
	{LayerMajorArcana, 0.9},
	{LayerSigilCore, 0.8},
	{LayerPosition, 0.7},
	{LayerSynergy, 0.6},
}

// unknownWeight is the weight of a layer missing from the ranking.
const unknownWeight = 0.5

// Ordered returns the layers from strongest to weakest.
func Ordered() []LayerPriority {
	out := make([]LayerPriority, len(priorities))
	copy(out, priorities)
	return out
}

// Weight returns the weight of layer.
func Weight(layer Layer) float64 {
	for _, p := range priorities {
		if p.Layer == layer {
			return p.Weight
		}
	}
	return unknownWeight
}

// Strategy says whose phrasing wins a conflict.
type Strategy string

const (
	SigilPriority     Strategy = "sigil_priority"
	CardPriority      Strategy = "card_priority"
	PositionDependent Strategy = "position_dependent"
	Merge             Strategy = "merge"
)

// CardMatch restricts a rule to certain cards. Major matches only the major
// arcana; otherwise an empty Suit or Orientation matches anything.
type CardMatch struct {
	Major       bool
	Suit        domain.Suit
	Orientation domain.Orientation
}

func (m CardMatch) matches(card domain.Card, o domain.Orientation) bool {
	if m.Major {
		return card.Arcana == domain.Major
	}
	if m.Suit != domain.NoSuit && card.Suit != m.Suit {
		return false
	}
	if m.Orientation != "" && o != m.Orientation {
		return false
	}
	return true
}

// ConflictRule is a known clash between a sigil letter and a card.
type ConflictRule struct {
	Name string
	// Letter is the required core letter, 0 for any.
	Letter     byte
	Card       CardMatch
	Strategy   Strategy
	ByPosition map[string]Strategy
}

var conflicts = []ConflictRule{
	{
		Name:     "catalyst_vs_reversed_swords",
		Letter:   'V',
		Card:     CardMatch{Suit: domain.Swords, Orientation: domain.Reversed},
		Strategy: PositionDependent,
		ByPosition: map[string]Strategy{
			domain.PosAdvice:    SigilPriority,
			"guidance":          SigilPriority,
			domain.PosObstacle:  CardPriority,
			domain.PosChallenge: CardPriority,
		},
	},
	{
		Name:     "ward_vs_upright_wands",
		Letter:   'S',
		Card:     CardMatch{Suit: domain.Wands, Orientation: domain.Upright},
		Strategy: Merge,
	},
	{
		Name:     "major_arcana",
		Card:     CardMatch{Major: true},
		Strategy: CardPriority,
	},
}

// Conflicts returns the conflict rules in evaluation order.
func Conflicts() []ConflictRule {
	out := make([]ConflictRule, len(conflicts))
	copy(out, conflicts)
	return out
}

// Detect returns the first rule matching the code's core letter and the
// drawn card.
func Detect(card domain.Card, o domain.Orientation, code sigil.Code) (ConflictRule, bool) {
	for _, r := range conflicts {
		if r.Letter != 0 && r.Letter != code.Core() {
			continue
		}
		if !r.Card.matches(card, o) {
			continue
		}
		return r, true
	}
	return ConflictRule{}, false
}

// StrategyAt resolves the strategy a rule uses at position. Position
// dependent rules fall back to card priority for unlisted positions.
func (r ConflictRule) StrategyAt(position string) Strategy {
	if r.Strategy != PositionDependent {
		return r.Strategy
	}
	if s, ok := r.ByPosition[position]; ok {
		return s
	}
	return CardPriority
}

// MergeConnective joins sigil and card phrasing when a rule merges them.
const MergeConnective = "; even so, "

// Resolve picks or combines the sigil-driven and card-driven texts.
func Resolve(r ConflictRule, position, sigilText, cardText string) string {
	switch r.StrategyAt(position) {
	case SigilPriority:
		return sigilText
	case Merge:
		return sigilText + MergeConnective + cardText
	default:
		return cardText
	}
}
