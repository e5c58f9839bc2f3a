// Package synergy computes the advisory signals that come from pairing a
// sigil code with the statistics of a spread.
package synergy

import (
	"strings"

	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

// Type classifies how a sigil letter interacts with a suit.
type Type string

const (
	Acceleration Type = "acceleration"
	Balance      Type = "balance"
	Warning      Type = "warning"
	Challenge    Type = "challenge"
)

// Entry is one row of the letter-by-suit table.
type Entry struct {
	Letter   byte        `json:"-"`
	Suit     domain.Suit `json:"suit"`
	Type     Type        `json:"type"`
	Message  string      `json:"message"`
	Strength float64     `json:"strength"`
}

var table = []Entry{
	{'V', domain.Wands, Acceleration, "You are riding the flow of action. Use the momentum and push through in one go.", 0.9},
	{'V', domain.Cups, Warning, "Feelings can carry you off right now. Keep a cool head while you move.", 0.7},
	{'V', domain.Swords, Balance, "Thinking and doing are in balance. Move ahead according to plan.", 0.8},
	{'V', domain.Pentacles, Acceleration, "A prime chance to produce real results. Give it a solid shape.", 0.85},

	{'S', domain.Wands, Balance, "A time to act with care. Don't rush; confirm each step as you go.", 0.8},
	{'S', domain.Cups, Acceleration, "Your strength of handling feelings gently is paying off.", 0.85},
	{'S', domain.Swords, Warning, "Overthinking has you stuck. Start with one small step.", 0.75},
	{'S', domain.Pentacles, Acceleration, "A time of steady building. Your care turns into results.", 0.9},

	{'I', domain.Wands, Challenge, "Time to let the energy inside come out. Dare to act.", 0.7},
	{'I', domain.Cups, Acceleration, "A time to face the feelings within. This is your home ground.", 0.9},
	{'I', domain.Swords, Acceleration, "A time for deep reflection. The answer comes through looking inward.", 0.85},
	{'I', domain.Pentacles, Balance, "Inner fullness leads to practical results.", 0.8},

	{'E', domain.Wands, Acceleration, "Your expressiveness and drive are at their peak.", 0.95},
	{'E', domain.Cups, Balance, "A time when feelings come across richly. You are easy to understand now.", 0.85},
	{'E', domain.Swords, Balance, "A time to say exactly what you think. Logic and expression are well balanced.", 0.8},
	{'E', domain.Pentacles, Challenge, "Words are not enough; show it in a form people can see.", 0.7},
}

// Table returns a copy of the letter-by-suit table.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// SuitSynergy looks up the entry for the code's core letter and the dominant
// suit of counts. It returns nil when no suit reaches two cards or no entry
// exists.
func SuitSynergy(code sigil.Code, counts domain.SuitCounts) *Entry {
	if code == "" {
		return nil
	}
	suit := counts.Dominant()
	if suit == domain.NoSuit {
		return nil
	}
	for _, e := range table {
		if e.Letter == code.Core() && e.Suit == suit {
			found := e
			return &found
		}
	}
	return nil
}

const (
	pauseThreshold = 0.5
	deepThreshold  = 0.7
)

// ReversedAdjustment returns a phase message for reversal-heavy spreads:
// nothing below half reversed, a pause message up to 70%, and a deep inward
// message from there. Codes carrying I get the variant that frames the phase
// as familiar ground.
func ReversedAdjustment(code sigil.Code, ratio float64) string {
	if code == "" || ratio < pauseThreshold {
		return ""
	}
	introspective := code.Has('I')
	if ratio >= deepThreshold {
		if introspective {
			return "A season of reflection, and setting things in order inside is what you do best. Take your time with yourself."
		}
		return "A hard time to put things out into the world. Don't rush; make time to face what is inside first."
	}
	if introspective {
		return "A time to look at yourself again. This pace suits you."
	}
	return "A time to pause and sort things out. Get ready for the next step."
}

var markers = map[Type]string{
	Acceleration: "[Momentum]",
	Balance:      "[Balance]",
	Warning:      "[Caution]",
	Challenge:    "[Stretch]",
}

// Format renders an entry as its type marker followed by the message.
func Format(e Entry) string {
	m := markers[e.Type]
	if m == "" {
		return e.Message
	}
	return m + " " + e.Message
}

// Insight joins the suit synergy and the reversal adjustment with a blank
// line. Either part may be missing; both missing yields "".
func Insight(code sigil.Code, counts domain.SuitCounts, ratio float64) string {
	var parts []string
	if e := SuitSynergy(code, counts); e != nil {
		parts = append(parts, Format(*e))
	}
	if adj := ReversedAdjustment(code, ratio); adj != "" {
		parts = append(parts, adj)
	}
	return strings.Join(parts, "\n\n")
}
