package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// ReversedPercent is the chance, in percent, that a drawn card lands reversed.
// Draws lean upright on purpose.
const ReversedPercent = 40

// seededRNG is a reproducible RNG backed by a PCG source.
type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns an RNG that yields the same sequence for the same seed.
func NewSeededRNG(seed uint64) RNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRNG) Intn(n int) int { return s.r.IntN(n) }

// globalRNG delegates to the auto-seeded math/rand/v2 source, which is safe
// for concurrent use.
type globalRNG struct{}

// NewGlobalRNG returns an RNG for serving traffic.
func NewGlobalRNG() RNG { return globalRNG{} }

func (globalRNG) Intn(n int) int { return rand.IntN(n) }

// Shuffle returns a permuted copy of cards using Fisher-Yates.
func Shuffle(cards []Card, rng RNG) []Card {
	deck := make([]Card, len(cards))
	copy(deck, cards)
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// Draw shuffles the full catalog and deals the first n cards, each with an
// independent orientation. Slot ids are placeholders ("pos_0", "pos_1", ...)
// until AssignPositions overwrites them.
func Draw(catalog *Catalog, n int, rng RNG) ([]DrawnCard, error) {
	if n < 1 {
		return nil, ErrInvalidN
	}
	if n > catalog.Len() {
		return nil, ErrNExceedsDeck
	}

	deck := Shuffle(catalog.Cards(), rng)

	cards := make([]DrawnCard, n)
	for i := range n {
		orientation := Upright
		if rng.Intn(100) < ReversedPercent {
			orientation = Reversed
		}
		cards[i] = DrawnCard{
			PositionID:  fmt.Sprintf("pos_%d", i),
			CardID:      deck[i].ID,
			Orientation: orientation,
		}
	}
	return cards, nil
}

// AssignPositions overwrites slot ids with the semantic slots of spread, in
// order. Extra cards keep their placeholder id.
func AssignPositions(spread SpreadDefinition, cards []DrawnCard) []DrawnCard {
	out := make([]DrawnCard, len(cards))
	copy(out, cards)
	for i := range out {
		if i < len(spread.Positions) {
			out[i].PositionID = spread.Positions[i].ID
		}
	}
	return out
}

// DrawSpread deals exactly as many cards as spreadID has slots and labels them.
func DrawSpread(catalog *Catalog, spreadID SpreadType, rng RNG, now time.Time) (DrawResult, error) {
	spread, ok := LookupSpread(spreadID)
	if !ok {
		return DrawResult{}, fmt.Errorf("%w: %q", ErrUnknownSpread, spreadID)
	}
	cards, err := Draw(catalog, len(spread.Positions), rng)
	if err != nil {
		return DrawResult{}, err
	}
	return DrawResult{
		SpreadID: spread.ID,
		DrawnAt:  now,
		Cards:    AssignPositions(spread, cards),
	}, nil
}
