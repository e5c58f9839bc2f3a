package domain

// Position ids used across spreads.
const (
	PosTheme       = "theme"
	PosSituation   = "situation"
	PosObstacle    = "obstacle"
	PosAdvice      = "advice"
	PosPresent     = "present"
	PosChallenge   = "challenge"
	PosFoundation  = "foundation"
	PosPast        = "past"
	PosConscious   = "conscious"
	PosNearFuture  = "near_future"
	PosSelf        = "self"
	PosEnvironment = "environment"
	PosHopesFears  = "hopes_fears"
	PosOutcome     = "outcome"
)

var spreads = []SpreadDefinition{
	{
		ID:   SpreadOneCard,
		Name: "One Card",
		Positions: []Position{
			{ID: PosTheme, Name: "Theme", Description: "today's message, a simple answer"},
		},
	},
	{
		ID:   SpreadThreeCard,
		Name: "Three Cards",
		Positions: []Position{
			{ID: PosSituation, Name: "Situation", Description: "where things stand"},
			{ID: PosObstacle, Name: "Obstacle", Description: "what is in the way"},
			{ID: PosAdvice, Name: "Advice", Description: "the next move"},
		},
	},
	{
		ID:   SpreadCelticCross,
		Name: "Celtic Cross",
		Positions: []Position{
			{ID: PosPresent, Name: "Present", Description: "the heart of the matter"},
			{ID: PosChallenge, Name: "Challenge", Description: "what crosses it"},
			{ID: PosFoundation, Name: "Foundation", Description: "the root underneath"},
			{ID: PosPast, Name: "Past", Description: "what is passing"},
			{ID: PosConscious, Name: "Conscious", Description: "what you are aware of"},
			{ID: PosNearFuture, Name: "Near Future", Description: "what comes next"},
			{ID: PosSelf, Name: "Self", Description: "your stance"},
			{ID: PosEnvironment, Name: "Environment", Description: "the people around you"},
			{ID: PosHopesFears, Name: "Hopes & Fears", Description: "what you hope and dread"},
			{ID: PosOutcome, Name: "Outcome", Description: "where this is heading"},
		},
	},
}

// Spreads returns every supported spread definition.
func Spreads() []SpreadDefinition {
	out := make([]SpreadDefinition, len(spreads))
	copy(out, spreads)
	return out
}

// LookupSpread returns the definition for id.
func LookupSpread(id SpreadType) (SpreadDefinition, bool) {
	for _, s := range spreads {
		if s.ID == id {
			return s, true
		}
	}
	return SpreadDefinition{}, false
}

// FindCard returns the first drawn card placed in any of the given slots,
// trying the slots in order.
func FindCard(cards []DrawnCard, positionIDs ...string) (DrawnCard, bool) {
	for _, id := range positionIDs {
		for _, c := range cards {
			if c.PositionID == id {
				return c, true
			}
		}
	}
	return DrawnCard{}, false
}
