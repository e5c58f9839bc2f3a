package interpret

import (
	"strings"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// LifeThemePrefix frames a thesis when major arcana dominate the spread.
const LifeThemePrefix = "[Read as a life theme]\n"

const inwardClause = "\n\nMany cards are reversed, so adjust inward before pushing outward. " +
	"The key is not to add more, but to decide the order in which you put things right."

const (
	flowTemplate Template = "From the past ({PAST_KW}) you have moved into the present ({PRESENT_KW}), " +
		"and the near future ({NEAR_FUTURE_KW}) is what comes next."
	conflictTemplate Template = "The present wants to move toward {PRESENT_KW}, " +
		"while the challenge of {CHALLENGE_KW} acts as the brake."
	conflictReversedTemplate Template = "The brake is less an outside force than too much or too little " +
		"{CHALLENGE_KW} (an assumption, or an adjustment not yet made)."
	leverTemplate Template = "The lever is to fine-tune yourself ({SELF_KW}) to your surroundings ({ENVIRONMENT_KW}). " +
		"Lower the load by one step and set the next checkpoint."

	celticThesisTemplate Template = "The heart of it is \"{PRESENT_KW}\", with the pressure of \"{CHALLENGE_KW}\" on top.\n" +
		"The root is \"{FOUNDATION_KW}\", and the layout leans toward {NEAR_FUTURE_KW}.\n" +
		"If you carry on as you are, the outcome tends toward \"{OUTCOME_KW}\"."
	celticThesisNoNearTemplate Template = "The heart of it is \"{PRESENT_KW}\", with the pressure of \"{CHALLENGE_KW}\" on top.\n" +
		"The root is \"{FOUNDATION_KW}\".\n" +
		"If you carry on as you are, the outcome tends toward \"{OUTCOME_KW}\"."
)

// Engine renders text for drawn cards against a catalog. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	catalog *domain.Catalog
}

// NewEngine returns an Engine reading card data from catalog.
func NewEngine(catalog *domain.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the catalog the engine reads from.
func (e *Engine) Catalog() *domain.Catalog { return e.catalog }

// Keywords joins the first two keywords of a card for the given orientation
// with "/". Unknown cards yield "".
func (e *Engine) Keywords(cardID string, o domain.Orientation) string {
	card, ok := e.catalog.Lookup(cardID)
	if !ok {
		return ""
	}
	kws := card.Keywords(o)
	if len(kws) > 2 {
		kws = kws[:2]
	}
	return strings.Join(kws, "/")
}

func (e *Engine) cardName(cardID string) string {
	card, _ := e.catalog.Lookup(cardID)
	return card.Name
}

// PositionLine renders the text for one slot followed by at most two
// modifier clauses. Unknown slots or cards yield "".
func (e *Engine) PositionLine(positionID, cardID string, o domain.Orientation) string {
	card, ok := e.catalog.Lookup(cardID)
	if !ok {
		return ""
	}
	tpl, ok := positionTemplates[positionID]
	if !ok {
		return ""
	}

	line := tpl.pick(o).Render(Values{
		"CARD": card.Name,
		"KW":   e.Keywords(cardID, o),
	})
	if mods := cardModifiers(card, o); len(mods) > 0 {
		line += " " + strings.Join(mods, " ")
	}
	return line
}

// Thesis renders the category thesis. ADVICE_KW comes from the card at the
// advice, outcome or theme slot, in that order.
func (e *Engine) Thesis(category domain.Category, a Analysis, cards []domain.DrawnCard, goal string) string {
	tpl, ok := categoryTemplates[category]
	if !ok {
		return ""
	}

	v := Values{
		"DOMINANT_SUIT": SuitName(a.DominantSuit),
		"USER_GOAL":     goal,
	}
	if adv, ok := domain.FindCard(cards, domain.PosAdvice, domain.PosOutcome, domain.PosTheme); ok {
		v["ADVICE_KW"] = e.Keywords(adv.CardID, adv.Orientation)
	}

	thesis := tpl.Thesis.Render(v)
	if a.ReversedHeavy() {
		thesis += inwardClause
	}
	return thesis
}

func orientationText(o domain.Orientation) string {
	if o == domain.Reversed {
		return "reversed"
	}
	return "upright"
}

// ThreeCardDetails renders the category lines for the situation, obstacle
// and advice slots. Missing slots leave their line empty.
func (e *Engine) ThreeCardDetails(category domain.Category, cards []domain.DrawnCard) domain.ThreeCardDetails {
	var out domain.ThreeCardDetails
	tpl, ok := categoryTemplates[category]
	if !ok {
		return out
	}

	if c, ok := domain.FindCard(cards, domain.PosSituation); ok {
		out.Situation = tpl.Situation.Render(Values{
			"SITUATION_CARD": e.cardName(c.CardID),
			"SITUATION_KW":   e.Keywords(c.CardID, c.Orientation),
		})
	}
	if c, ok := domain.FindCard(cards, domain.PosObstacle); ok {
		out.Obstacle = tpl.Obstacle.Render(Values{
			"OBSTACLE_CARD": e.cardName(c.CardID),
			"OBSTACLE_KW":   e.Keywords(c.CardID, c.Orientation),
			"OBSTACLE_ORI":  orientationText(c.Orientation),
		})
	}
	if c, ok := domain.FindCard(cards, domain.PosAdvice); ok {
		out.Advice = tpl.Advice.Render(Values{
			"ADVICE_CARD": e.cardName(c.CardID),
			"ADVICE_KW":   e.Keywords(c.CardID, c.Orientation),
		})
	}
	return out
}

// CelticLines renders the flow, conflict and lever lines of a celtic cross.
// Each line needs its own slots and is left empty when one is missing.
func (e *Engine) CelticLines(cards []domain.DrawnCard) domain.CelticLines {
	var out domain.CelticLines
	kw := func(c domain.DrawnCard) string { return e.Keywords(c.CardID, c.Orientation) }

	past, hasPast := domain.FindCard(cards, domain.PosPast)
	present, hasPresent := domain.FindCard(cards, domain.PosPresent)
	near, hasNear := domain.FindCard(cards, domain.PosNearFuture)
	if hasPast && hasPresent && hasNear {
		out.Flow = flowTemplate.Render(Values{
			"PAST_KW":        kw(past),
			"PRESENT_KW":     kw(present),
			"NEAR_FUTURE_KW": kw(near),
		})
	}

	if challenge, ok := domain.FindCard(cards, domain.PosChallenge); ok && hasPresent {
		v := Values{"PRESENT_KW": kw(present), "CHALLENGE_KW": kw(challenge)}
		if challenge.Orientation == domain.Reversed {
			out.Conflict = conflictReversedTemplate.Render(v)
		} else {
			out.Conflict = conflictTemplate.Render(v)
		}
	}

	self, hasSelf := domain.FindCard(cards, domain.PosSelf)
	env, hasEnv := domain.FindCard(cards, domain.PosEnvironment)
	if hasSelf && hasEnv {
		out.Lever = leverTemplate.Render(Values{
			"SELF_KW":        kw(self),
			"ENVIRONMENT_KW": kw(env),
		})
	}
	return out
}

// CelticThesis renders the extended thesis of a celtic cross followed by the
// category key line. It needs the present, challenge, foundation and outcome
// slots; the near future is optional. ok is false when a required slot is
// missing and the base thesis should stand.
func (e *Engine) CelticThesis(category domain.Category, cards []domain.DrawnCard) (string, bool) {
	kw := func(c domain.DrawnCard) string { return e.Keywords(c.CardID, c.Orientation) }

	present, ok1 := domain.FindCard(cards, domain.PosPresent)
	challenge, ok2 := domain.FindCard(cards, domain.PosChallenge)
	foundation, ok3 := domain.FindCard(cards, domain.PosFoundation)
	outcome, ok4 := domain.FindCard(cards, domain.PosOutcome)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return "", false
	}

	v := Values{
		"PRESENT_KW":    kw(present),
		"CHALLENGE_KW":  kw(challenge),
		"FOUNDATION_KW": kw(foundation),
		"OUTCOME_KW":    kw(outcome),
	}
	tpl := celticThesisNoNearTemplate
	if near, ok := domain.FindCard(cards, domain.PosNearFuture); ok {
		v["NEAR_FUTURE_KW"] = kw(near)
		tpl = celticThesisTemplate
	}

	thesis := tpl.Render(v)
	if key := KeyLine(category); key != "" {
		thesis += "\n" + key
	}
	return thesis, true
}

// MessageExample renders the optional sample message of a category, or ""
// when the category has none.
func (e *Engine) MessageExample(category domain.Category, goal string) string {
	tpl, ok := categoryTemplates[category]
	if !ok || tpl.Message == "" {
		return ""
	}
	return tpl.Message.Render(Values{"USER_GOAL": goal})
}
