package domain

// SuitCounts tallies minor arcana cards per suit.
type SuitCounts map[Suit]int

// Dominant returns the suit with the highest count, provided it appears at
// least twice. Ties at the maximum go to the earliest suit in Suits.
func (c SuitCounts) Dominant() Suit {
	best, top := NoSuit, 0
	for _, s := range Suits {
		if c[s] > top {
			best, top = s, c[s]
		}
	}
	if top < 2 {
		return NoSuit
	}
	return best
}
