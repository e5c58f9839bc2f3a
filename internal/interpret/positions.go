package interpret

import "github.com/komekomeaaa/tarot/internal/domain"

type positionTemplate struct {
	upright  Template
	reversed Template
}

func (p positionTemplate) pick(o domain.Orientation) Template {
	if o == domain.Reversed {
		return p.reversed
	}
	return p.upright
}

var positionTemplates = map[string]positionTemplate{
	domain.PosTheme: {
		upright:  "Today's theme is {CARD}. The word to carry is \"{KW}\"; lean into it with one small move.",
		reversed: "Today's theme is {CARD}, reversed. \"{KW}\" is showing; ease off and tidy before you push.",
	},
	domain.PosSituation: {
		upright:  "Right now {CARD} describes the ground you stand on: \"{KW}\".",
		reversed: "Right now {CARD} reversed shows the situation tilting toward \"{KW}\".",
	},
	domain.PosObstacle: {
		upright:  "What blocks the way is {CARD}. Too much \"{KW}\" is where things snag.",
		reversed: "What blocks the way is {CARD}, reversed. \"{KW}\" is running without a check.",
	},
	domain.PosAdvice: {
		upright:  "The advice is {CARD}. Put \"{KW}\" at the front of your next step.",
		reversed: "The advice is {CARD}, reversed. Before adding more, adjust how you handle \"{KW}\".",
	},
	domain.PosPresent: {
		upright:  "At the center sits {CARD}: \"{KW}\" is what this is really about.",
		reversed: "At the center sits {CARD}, reversed: \"{KW}\" is off balance.",
	},
	domain.PosChallenge: {
		upright:  "Crossing it is {CARD}. \"{KW}\" pulls against the current.",
		reversed: "Crossing it is {CARD}, reversed. The brake is \"{KW}\" out of proportion.",
	},
	domain.PosFoundation: {
		upright:  "Underneath lies {CARD}. The root of the matter is \"{KW}\".",
		reversed: "Underneath lies {CARD}, reversed. An old \"{KW}\" still shapes the ground.",
	},
	domain.PosPast: {
		upright:  "Behind you is {CARD}. \"{KW}\" brought you here.",
		reversed: "Behind you is {CARD}, reversed. Leftover \"{KW}\" is still settling.",
	},
	domain.PosConscious: {
		upright:  "What you have in mind is {CARD}: you are aiming for \"{KW}\".",
		reversed: "What you have in mind is {CARD}, reversed: \"{KW}\" worries you more than you say.",
	},
	domain.PosNearFuture: {
		upright:  "Next comes {CARD}. Expect \"{KW}\" to show up soon.",
		reversed: "Next comes {CARD}, reversed. \"{KW}\" may arrive slowly or sideways.",
	},
	domain.PosSelf: {
		upright:  "Your stance is {CARD}: you meet this with \"{KW}\".",
		reversed: "Your stance is {CARD}, reversed: \"{KW}\" is costing you energy.",
	},
	domain.PosEnvironment: {
		upright:  "Around you stands {CARD}. Others bring \"{KW}\" into the picture.",
		reversed: "Around you stands {CARD}, reversed. The people nearby lean toward \"{KW}\".",
	},
	domain.PosHopesFears: {
		upright:  "Your hope and fear share a face in {CARD}: \"{KW}\".",
		reversed: "Your hope and fear share a face in {CARD}, reversed: \"{KW}\" is what you dread.",
	},
	domain.PosOutcome: {
		upright:  "If nothing changes, {CARD} is where this leads: \"{KW}\".",
		reversed: "If nothing changes, {CARD} reversed is where this leads: \"{KW}\" unresolved.",
	},
}

var majorModifiers = map[domain.Orientation]string{
	domain.Upright:  "A major card: treat this as a turning point, not a passing mood.",
	domain.Reversed: "A major card reversed: the larger lesson is asking for a second look.",
}

var suitModifiers = map[domain.Suit]string{
	domain.Wands:     "Wands bring drive, so momentum matters more than polish.",
	domain.Cups:      "Cups bring feeling, so how it lands matters more than being right.",
	domain.Swords:    "Swords bring thought, so name the facts before you act.",
	domain.Pentacles: "Pentacles bring the practical, so make it concrete and small.",
}

var courtModifiers = map[domain.Rank]string{
	domain.Page:   "A page points to a learner's first attempt.",
	domain.Knight: "A knight points to movement that can overshoot.",
	domain.Queen:  "A queen points to steady care from the inside.",
	domain.King:   "A king points to responsibility and the final call.",
}

const (
	tierAce    = "An ace: a fresh seed, still unformed."
	tierSmall  = "An early number: things are just getting going."
	tierMiddle = "A middle number: this is the working stretch."
	tierLate   = "A late number: adjustments decide the result."
	tierEnd    = "A closing number: one cycle is wrapping up."
)

func numberTier(r domain.Rank) string {
	switch {
	case r == domain.Ace:
		return tierAce
	case r <= 3:
		return tierSmall
	case r <= 6:
		return tierMiddle
	case r <= 8:
		return tierLate
	default:
		return tierEnd
	}
}

// maxModifiers caps the clauses appended to a position line.
const maxModifiers = 2

func cardModifiers(card domain.Card, o domain.Orientation) []string {
	mods := make([]string, 0, maxModifiers)
	if card.Arcana == domain.Major {
		if m := majorModifiers[o]; m != "" {
			mods = append(mods, m)
		}
	} else if m := suitModifiers[card.Suit]; m != "" {
		mods = append(mods, m)
	}

	if len(mods) >= maxModifiers {
		return mods
	}
	switch {
	case card.Rank.IsCourt():
		mods = append(mods, courtModifiers[card.Rank])
	case card.Rank.IsNumeric():
		mods = append(mods, numberTier(card.Rank))
	}
	return mods
}
