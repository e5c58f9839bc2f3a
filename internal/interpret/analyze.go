// Package interpret turns drawn cards into reading text using fixed template
// tables. Every function here is deterministic except SelectRitual, which
// takes an injected RNG.
package interpret

import "github.com/komekomeaaa/tarot/internal/domain"

// ArcanaBalance says which arcana outnumbers the other in a spread.
type ArcanaBalance string

const (
	BalanceMajor ArcanaBalance = "major"
	BalanceMinor ArcanaBalance = "minor"
	BalanceMixed ArcanaBalance = "mixed"
)

// ReversedHeavyRatio is the reversed ratio from which a spread reads as inward.
const ReversedHeavyRatio = 0.6

// Analysis holds the statistics derived from one spread. It is recomputed
// for every reading.
type Analysis struct {
	DominantArcana ArcanaBalance     `json:"dominant_arcana"`
	DominantSuit   domain.Suit       `json:"dominant_suit,omitempty"`
	ReversedRatio  float64           `json:"reversed_ratio"`
	HasCourtCards  bool              `json:"has_court_cards"`
	MajorCount     int               `json:"major_count"`
	MinorCount     int               `json:"minor_count"`
	ReversedCount  int               `json:"reversed_count"`
	SuitCounts     domain.SuitCounts `json:"suit_counts"`
}

// Analyze tallies cards in one pass. Unknown card ids are left out of the
// arcana, suit and reversed tallies but still count toward the ratio
// denominator.
func Analyze(catalog *domain.Catalog, cards []domain.DrawnCard) Analysis {
	a := Analysis{SuitCounts: domain.SuitCounts{}}
	for _, s := range domain.Suits {
		a.SuitCounts[s] = 0
	}

	for _, drawn := range cards {
		card, ok := catalog.Lookup(drawn.CardID)
		if !ok {
			continue
		}
		if card.Arcana == domain.Major {
			a.MajorCount++
		} else {
			a.MinorCount++
			if card.Suit != domain.NoSuit {
				a.SuitCounts[card.Suit]++
			}
			if card.Rank.IsCourt() {
				a.HasCourtCards = true
			}
		}
		if drawn.Orientation == domain.Reversed {
			a.ReversedCount++
		}
	}

	switch {
	case a.MajorCount > a.MinorCount:
		a.DominantArcana = BalanceMajor
	case a.MinorCount > a.MajorCount:
		a.DominantArcana = BalanceMinor
	default:
		a.DominantArcana = BalanceMixed
	}
	a.DominantSuit = a.SuitCounts.Dominant()
	if len(cards) > 0 {
		a.ReversedRatio = float64(a.ReversedCount) / float64(len(cards))
	}
	return a
}

// MajorDominant reports whether the spread should be read as a life theme.
func (a Analysis) MajorDominant() bool { return a.DominantArcana == BalanceMajor }

// ReversedHeavy reports whether reversals reach the inward threshold.
func (a Analysis) ReversedHeavy() bool { return a.ReversedRatio >= ReversedHeavyRatio }
