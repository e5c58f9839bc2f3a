package reading_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komekomeaaa/tarot/internal/adapters/decks"
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/interpret"
	"github.com/komekomeaaa/tarot/internal/ports"
	"github.com/komekomeaaa/tarot/internal/reading"
	"github.com/komekomeaaa/tarot/internal/rules"
	"github.com/komekomeaaa/tarot/internal/safety"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func newComposer(t *testing.T, opts ...reading.Option) *reading.Composer {
	t.Helper()
	opts = append([]reading.Option{reading.WithIDFunc(func() string { return "reading-1" })}, opts...)
	return reading.NewComposer(decks.MustLoad(), fixedRNG{}, opts...)
}

func threeCards() []domain.DrawnCard {
	return []domain.DrawnCard{
		{PositionID: domain.PosSituation, CardID: "CU_02", Orientation: domain.Upright},
		{PositionID: domain.PosObstacle, CardID: "SW_05", Orientation: domain.Reversed},
		{PositionID: domain.PosAdvice, CardID: "WA_01", Orientation: domain.Upright},
	}
}

func TestCompose_LoveThreeCard(t *testing.T) {
	c := newComposer(t)
	uc := domain.UserContext{
		Category:  domain.CategoryLove,
		Situation: "we drifted apart after the move",
		Goal:      "reconnect with Sam",
		Deadline:  domain.DeadlineWeek,
		SigilCode: "VIEQ",
	}

	r, err := c.Interpret(context.Background(), ports.InterpretInput{
		Spread: domain.SpreadThreeCard,
		Cards:  threeCards(),
		User:   uc,
	})
	require.NoError(t, err)

	assert.Equal(t, "reading-1", r.ID)
	assert.False(t, r.Blocked)
	assert.Contains(t, r.Summary, "reconnect with Sam")
	require.Len(t, r.PositionReadings, 3)
	for _, pr := range r.PositionReadings {
		assert.NotEmpty(t, pr.Text, pr.PositionID)
	}
	require.NotNil(t, r.Details)
	assert.Contains(t, r.Details.Situation, "Two of Cups")
	assert.Contains(t, r.Details.Obstacle, "reversed")
	assert.Nil(t, r.Celtic)

	assert.Equal(t, interpret.KeyLine(domain.CategoryLove), r.OverallAdvice)
	assert.Equal(t, interpret.SignLine(domain.DeadlineWeek), r.SignLine)
	assert.NotEmpty(t, r.ActionRitual)
	assert.NotEmpty(t, r.MessageExample)
	assert.Equal(t, sigil.LensFor("VIEQ"), r.TypeLens)
	assert.Empty(t, r.SafetyLine)
}

func TestCompose_ConflictAnnotation(t *testing.T) {
	c := newComposer(t)
	cards := []domain.DrawnCard{
		{PositionID: domain.PosSituation, CardID: "CU_02", Orientation: domain.Upright},
		{PositionID: domain.PosObstacle, CardID: "SW_05", Orientation: domain.Reversed},
		{PositionID: domain.PosAdvice, CardID: "SW_03", Orientation: domain.Reversed},
	}
	r := c.Compose(domain.SpreadThreeCard, cards, domain.UserContext{Category: domain.CategoryWork, SigilCode: "VCLD"})

	obstacle, advice := r.PositionReadings[1], r.PositionReadings[2]
	require.NotNil(t, obstacle.Conflict)
	require.NotNil(t, advice.Conflict)

	// Same rule, different slot.
	assert.Equal(t, "catalyst_vs_reversed_swords", advice.Conflict.Rule)
	assert.Equal(t, string(rules.SigilPriority), advice.Conflict.Strategy)
	assert.Equal(t, advice.Lens, advice.Conflict.Text)
	assert.Equal(t, string(rules.CardPriority), obstacle.Conflict.Strategy)
	assert.Equal(t, obstacle.Text, obstacle.Conflict.Text)

	assert.Nil(t, r.PositionReadings[0].Conflict)
}

func TestCompose_MissingSigilFallsBack(t *testing.T) {
	c := newComposer(t)
	r := c.Compose(domain.SpreadThreeCard, threeCards(), domain.UserContext{Category: domain.CategoryWork})
	assert.Equal(t, sigil.LensFor(sigil.DefaultCode), r.TypeLens)

	bad := c.Compose(domain.SpreadThreeCard, threeCards(), domain.UserContext{Category: domain.CategoryWork, SigilCode: "XXXX"})
	assert.Equal(t, r.TypeLens, bad.TypeLens)
}

func TestCompose_LifeTheme(t *testing.T) {
	c := newComposer(t)
	cards := []domain.DrawnCard{
		{PositionID: domain.PosSituation, CardID: "MA_00", Orientation: domain.Upright},
		{PositionID: domain.PosObstacle, CardID: "MA_13", Orientation: domain.Upright},
		{PositionID: domain.PosAdvice, CardID: "CU_03", Orientation: domain.Upright},
	}
	r := c.Compose(domain.SpreadThreeCard, cards, domain.UserContext{Category: domain.CategoryFamily, Goal: "calmer evenings"})
	assert.True(t, strings.HasPrefix(r.Summary, interpret.LifeThemePrefix))
}

func TestCompose_CelticCross(t *testing.T) {
	c := newComposer(t)
	cat := decks.MustLoad()
	draw, err := domain.DrawSpread(cat, domain.SpreadCelticCross, domain.NewSeededRNG(7), time.Unix(0, 0))
	require.NoError(t, err)

	r := c.Compose(domain.SpreadCelticCross, draw.Cards, domain.UserContext{Category: domain.CategoryWork, Goal: "ship the launch"})
	require.Len(t, r.PositionReadings, 10)
	require.NotNil(t, r.Celtic)
	assert.NotEmpty(t, r.Celtic.Flow)
	assert.NotEmpty(t, r.Celtic.Conflict)
	assert.NotEmpty(t, r.Celtic.Lever)
	assert.Contains(t, r.Summary, "The heart of it is")
	assert.Nil(t, r.Details)
}

func TestCompose_CelticCrossMissingSlotsKeepsBaseThesis(t *testing.T) {
	c := newComposer(t)
	cards := []domain.DrawnCard{
		{PositionID: domain.PosPresent, CardID: "WA_05", Orientation: domain.Upright},
		{PositionID: domain.PosChallenge, CardID: "PE_04", Orientation: domain.Upright},
	}
	r := c.Compose(domain.SpreadCelticCross, cards, domain.UserContext{Category: domain.CategoryWork, Goal: "ship the launch"})
	assert.Contains(t, r.Summary, "ship the launch")
	assert.NotContains(t, r.Summary, "The heart of it is")
}

func TestCompose_CrisisBlocksHealthReading(t *testing.T) {
	c := newComposer(t)
	uc := domain.UserContext{
		Category:  domain.CategoryHealth,
		Situation: "no diagnosis yet and I want to die",
		Goal:      "sleep again",
		Urgency:   5,
	}
	r := c.Compose(domain.SpreadThreeCard, threeCards(), uc)

	assert.True(t, r.Blocked)
	assert.Equal(t, safety.SafeHarbor(safety.TypeSelfHarm), r.Summary)
	assert.Equal(t, safety.AdvisoryCrisis, r.SafetyLine)
	assert.Empty(t, r.PositionReadings)
	assert.Empty(t, r.OverallAdvice)
	assert.Nil(t, r.Details)

	var critical bool
	for _, w := range r.Warnings {
		if w.Severity == safety.SeverityCritical && w.Type == safety.TypeSelfHarm {
			critical = true
		}
	}
	assert.True(t, critical)
}

func TestCompose_LegalBlocksLoveReading(t *testing.T) {
	c := newComposer(t)
	uc := domain.UserContext{
		Category: domain.CategoryLove,
		Question: "How do I keep the affair going?",
		Goal:     "more time together",
	}
	r := c.Compose(domain.SpreadOneCard, []domain.DrawnCard{{PositionID: domain.PosTheme, CardID: "MA_06", Orientation: domain.Upright}}, uc)
	assert.True(t, r.Blocked)
	assert.Equal(t, safety.SafeHarbor(safety.TypeLegalEncouragement), r.Summary)
}

func TestCompose_SafetyLines(t *testing.T) {
	c := newComposer(t)

	money := c.Compose(domain.SpreadThreeCard, threeCards(), domain.UserContext{
		Category:  domain.CategoryMoney,
		Situation: "my loans keep growing",
	})
	assert.Equal(t, safety.AdvisoryDebt, money.SafetyLine)

	health := c.Compose(domain.SpreadThreeCard, threeCards(), domain.UserContext{
		Category: domain.CategoryHealth,
		Urgency:  4,
	})
	assert.False(t, health.Blocked)
	assert.Contains(t, health.SafetyLine, safety.HealthReferral)
}

func TestCompose_LengthLimits(t *testing.T) {
	c := newComposer(t, reading.WithLimits(rules.Limits{Thesis: 40, Advice: 20, Ritual: 20}))
	r := c.Compose(domain.SpreadThreeCard, threeCards(), domain.UserContext{Category: domain.CategoryWork, Goal: "a long goal that goes on"})
	assert.Equal(t, 40, len([]rune(r.Summary)))
	assert.True(t, strings.HasSuffix(r.Summary, rules.Ellipsis))
	assert.Equal(t, 20, len([]rune(r.OverallAdvice)))
	assert.LessOrEqual(t, len([]rune(r.ActionRitual)), 20)
}

func TestCompose_Deterministic(t *testing.T) {
	uc := domain.UserContext{Category: domain.CategoryRelationship, Goal: "fewer arguments", SigilCode: "SCLD"}
	a := newComposer(t).Compose(domain.SpreadThreeCard, threeCards(), uc)
	b := newComposer(t).Compose(domain.SpreadThreeCard, threeCards(), uc)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("readings differ (-a +b):\n%s", diff)
	}
}

func TestCompose_UnknownCardsDegrade(t *testing.T) {
	c := newComposer(t)
	r := c.Compose(domain.SpreadThreeCard, []domain.DrawnCard{
		{PositionID: domain.PosSituation, CardID: "NOPE", Orientation: domain.Upright},
	}, domain.UserContext{Category: domain.CategoryLove, Goal: "clarity"})
	require.Len(t, r.PositionReadings, 1)
	assert.Empty(t, r.PositionReadings[0].Text)
	assert.Empty(t, r.PositionReadings[0].Lens)
	assert.Contains(t, r.Summary, "clarity")
}

func TestInterpret_Errors(t *testing.T) {
	c := newComposer(t)

	_, err := c.Interpret(context.Background(), ports.InterpretInput{Spread: "five_card"})
	assert.ErrorIs(t, err, domain.ErrUnknownSpread)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Interpret(ctx, ports.InterpretInput{Spread: domain.SpreadOneCard})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveCode(t *testing.T) {
	assert.Equal(t, sigil.Code("SCLD"), reading.ResolveCode("SCLD"))
	assert.Equal(t, sigil.DefaultCode, reading.ResolveCode(""))
	assert.Equal(t, sigil.DefaultCode, reading.ResolveCode("vieqx"))
}
