package domain

import "fmt"

// CatalogSize is the number of cards in a full tarot deck.
const CatalogSize = 78

// Catalog is the read-only table of card definitions. It is safe for
// concurrent use once built.
type Catalog struct {
	cards []Card
	byID  map[string]int
}

// NewCatalog validates cards and builds a lookup table. Minor arcana cards
// must carry a suit and a rank; major arcana cards must not carry a suit.
func NewCatalog(cards []Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]Card, len(cards)),
		byID:  make(map[string]int, len(cards)),
	}
	for i, card := range cards {
		if card.ID == "" {
			return nil, fmt.Errorf("%w: card %d has no id", ErrCatalogInvalid, i)
		}
		if _, dup := c.byID[card.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrCatalogInvalid, card.ID)
		}
		switch card.Arcana {
		case Major:
			if card.Suit != NoSuit {
				return nil, fmt.Errorf("%w: major card %s has suit %s", ErrCatalogInvalid, card.ID, card.Suit)
			}
		case Minor:
			if card.Suit == NoSuit {
				return nil, fmt.Errorf("%w: minor card %s has no suit", ErrCatalogInvalid, card.ID)
			}
			if !card.Rank.IsNumeric() && !card.Rank.IsCourt() {
				return nil, fmt.Errorf("%w: minor card %s has rank %d", ErrCatalogInvalid, card.ID, card.Rank)
			}
		default:
			return nil, fmt.Errorf("%w: card %s has arcana %q", ErrCatalogInvalid, card.ID, card.Arcana)
		}
		c.cards[i] = card
		c.byID[card.ID] = i
	}
	return c, nil
}

// Lookup returns the card with the given id.
func (c *Catalog) Lookup(id string) (Card, bool) {
	if c == nil {
		return Card{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Cards returns a copy of every card in catalog order.
func (c *Catalog) Cards() []Card {
	if c == nil {
		return nil
	}
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cards)
}
