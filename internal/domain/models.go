package domain

import (
	"strconv"
	"time"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Orientation represents the orientation of a drawn tarot card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Arcana is a card's broad class.
type Arcana string

const (
	Major Arcana = "major"
	Minor Arcana = "minor"
)

// Suit is one of the four minor arcana suits. Major arcana cards have NoSuit.
type Suit string

const (
	NoSuit    Suit = ""
	Wands     Suit = "wands"
	Cups      Suit = "cups"
	Swords    Suit = "swords"
	Pentacles Suit = "pentacles"
)

// Suits lists the minor arcana suits in tally order.
var Suits = []Suit{Wands, Cups, Swords, Pentacles}

// Rank is the rank of a minor arcana card: 1-10 are numeric (1 is the ace),
// 11-14 are the court cards. Major arcana cards have NoRank.
type Rank int

const (
	NoRank Rank = 0
	Ace    Rank = 1
	Page   Rank = 11
	Knight Rank = 12
	Queen  Rank = 13
	King   Rank = 14
)

// IsCourt reports whether r is a named court rank.
func (r Rank) IsCourt() bool { return r >= Page && r <= King }

// IsNumeric reports whether r is a pip rank (ace through ten).
func (r Rank) IsNumeric() bool { return r >= Ace && r <= 10 }

func (r Rank) String() string {
	switch {
	case r == NoRank:
		return ""
	case r == Ace:
		return "ace"
	case r == Page:
		return "page"
	case r == Knight:
		return "knight"
	case r == Queen:
		return "queen"
	case r == King:
		return "king"
	case r.IsNumeric():
		return strconv.Itoa(int(r))
	}
	return "invalid"
}

// Card is a single immutable card definition.
type Card struct {
	ID               string   `json:"id" yaml:"id"`
	Arcana           Arcana   `json:"arcana" yaml:"arcana"`
	Name             string   `json:"name" yaml:"name"`
	Number           int      `json:"number" yaml:"number"`
	Suit             Suit     `json:"suit,omitempty" yaml:"suit"`
	Rank             Rank     `json:"rank,omitempty" yaml:"-"`
	UprightKeywords  []string `json:"keywords_upright" yaml:"upright"`
	ReversedKeywords []string `json:"keywords_reversed" yaml:"reversed"`
}

// Keywords returns the keyword list for the given orientation.
func (c Card) Keywords(o Orientation) []string {
	if o == Reversed {
		return c.ReversedKeywords
	}
	return c.UprightKeywords
}

// DrawnCard is a card placed in a spread slot.
type DrawnCard struct {
	PositionID  string      `json:"position_id"`
	CardID      string      `json:"card_id"`
	Orientation Orientation `json:"orientation"`
}

// SpreadType identifies one of the supported layouts.
type SpreadType string

const (
	SpreadOneCard     SpreadType = "one_card"
	SpreadThreeCard   SpreadType = "three_card"
	SpreadCelticCross SpreadType = "celtic_cross"
)

// Position is a named slot in a spread.
type Position struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SpreadDefinition is an ordered list of slots for one layout.
type SpreadDefinition struct {
	ID        SpreadType `json:"id"`
	Name      string     `json:"name"`
	Positions []Position `json:"positions"`
}

// DrawResult is the outcome of drawing a spread.
type DrawResult struct {
	SpreadID SpreadType  `json:"spread_id"`
	DrawnAt  time.Time   `json:"drawn_at"`
	Cards    []DrawnCard `json:"cards"`
}

// Category is one of the six life domains a reading can be about.
type Category string

const (
	CategoryLove         Category = "love"
	CategoryWork         Category = "work"
	CategoryMoney        Category = "money"
	CategoryHealth       Category = "health"
	CategoryRelationship Category = "relationship"
	CategoryFamily       Category = "family"
)

// Categories lists every supported category.
var Categories = []Category{
	CategoryLove, CategoryWork, CategoryMoney,
	CategoryHealth, CategoryRelationship, CategoryFamily,
}

// Valid reports whether c is a supported category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Deadline is the time bucket the user wants an answer within.
type Deadline string

const (
	DeadlineToday  Deadline = "today"
	DeadlineWeek   Deadline = "week"
	DeadlineMonth  Deadline = "month"
	DeadlineLonger Deadline = "longer"
)

// UserContext fully determines which templates and rules apply to a reading.
// Optional fields may be zero.
type UserContext struct {
	Category  Category `json:"category"`
	Situation string   `json:"situation"`
	Goal      string   `json:"goal"`
	Deadline  Deadline `json:"deadline"`
	SigilCode string   `json:"sigil_code,omitempty"`

	Question string `json:"question,omitempty"`
	Urgency  int    `json:"urgency,omitempty"` // 1-5, 0 when unknown
}

// RawInput is the free text typed by the user, scanned by the safety filters.
func (u UserContext) RawInput() string {
	return u.Question + " " + u.Situation + " " + u.Goal
}

// PositionReading is the text produced for one spread slot.
type PositionReading struct {
	PositionID string    `json:"position_id"`
	Text       string    `json:"text"`
	Lens       string    `json:"lens,omitempty"`
	Conflict   *Guidance `json:"conflict,omitempty"`
}

// Guidance records how a personality-versus-card conflict was settled.
type Guidance struct {
	Rule     string `json:"rule"`
	Strategy string `json:"strategy"`
	Text     string `json:"text"`
}

// ThreeCardDetails are the category-specific lines of a three card spread.
type ThreeCardDetails struct {
	Situation string `json:"situation"`
	Obstacle  string `json:"obstacle"`
	Advice    string `json:"advice"`
}

// CelticLines are the extra narrative fields of a celtic cross reading.
type CelticLines struct {
	Flow     string `json:"flow"`
	Conflict string `json:"conflict"`
	Lever    string `json:"lever"`
}

// SafetyWarning is a single finding raised by a safety filter.
type SafetyWarning struct {
	Severity string `json:"severity"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// Reading is the immutable, structured output of one generation.
type Reading struct {
	ID               string            `json:"id"`
	SpreadID         SpreadType        `json:"spread_id"`
	Summary          string            `json:"summary"`
	PositionReadings []PositionReading `json:"position_readings"`
	OverallAdvice    string            `json:"overall_advice"`
	ActionRitual     string            `json:"action_ritual"`
	SignLine         string            `json:"sign_line"`
	SafetyLine       string            `json:"safety_line,omitempty"`
	TypeLens         string            `json:"type_lens"`
	SynergyInsight   string            `json:"synergy_insight,omitempty"`
	MessageExample   string            `json:"message_example,omitempty"`
	Details          *ThreeCardDetails `json:"details,omitempty"`
	Celtic           *CelticLines      `json:"celtic,omitempty"`
	Blocked          bool              `json:"blocked"`
	Warnings         []SafetyWarning   `json:"warnings,omitempty"`
}
