// Package reading assembles a complete reading from a draw and a user
// context. It is the only place where the interpretation, synergy, rules and
// safety packages meet.
package reading

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/interpret"
	"github.com/komekomeaaa/tarot/internal/ports"
	"github.com/komekomeaaa/tarot/internal/rules"
	"github.com/komekomeaaa/tarot/internal/safety"
	"github.com/komekomeaaa/tarot/internal/sigil"
	"github.com/komekomeaaa/tarot/internal/synergy"
)

// Composer implements ports.Interpreter with the rule-based engine.
type Composer struct {
	engine *interpret.Engine
	safety *safety.Pipeline
	limits rules.Limits
	rng    domain.RNG
	newID  func() string
}

// Option customizes a Composer.
type Option func(*Composer)

// WithLimits overrides the text length budgets.
func WithLimits(l rules.Limits) Option {
	return func(c *Composer) { c.limits = l }
}

// WithPipeline replaces the default safety pipeline.
func WithPipeline(p *safety.Pipeline) Option {
	return func(c *Composer) { c.safety = p }
}

// WithIDFunc sets the reading id generator.
func WithIDFunc(f func() string) Option {
	return func(c *Composer) { c.newID = f }
}

// NewComposer builds a Composer over catalog. rng only drives ritual
// selection.
func NewComposer(catalog *domain.Catalog, rng domain.RNG, opts ...Option) *Composer {
	c := &Composer{
		engine: interpret.NewEngine(catalog),
		safety: safety.NewPipeline(),
		limits: rules.DefaultLimits,
		rng:    rng,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interpret validates the spread and composes the reading.
func (c *Composer) Interpret(ctx context.Context, in ports.InterpretInput) (domain.Reading, error) {
	if err := ctx.Err(); err != nil {
		return domain.Reading{}, err
	}
	if _, ok := domain.LookupSpread(in.Spread); !ok {
		return domain.Reading{}, fmt.Errorf("%w: %q", domain.ErrUnknownSpread, in.Spread)
	}
	return c.Compose(in.Spread, in.Cards, in.User), nil
}

// ResolveCode parses a stored sigil code, falling back to the default code
// when it is missing or malformed.
func ResolveCode(raw string) sigil.Code {
	code, err := sigil.ParseCode(raw)
	if err != nil {
		return sigil.DefaultCode
	}
	return code
}

// Compose runs the whole pipeline. It never fails: lookup misses degrade to
// empty or generic text.
func (c *Composer) Compose(spread domain.SpreadType, cards []domain.DrawnCard, uc domain.UserContext) domain.Reading {
	code := ResolveCode(uc.SigilCode)
	a := interpret.Analyze(c.engine.Catalog(), cards)

	r := domain.Reading{
		ID:               c.newID(),
		SpreadID:         spread,
		PositionReadings: c.positions(code, cards),
	}

	r.Summary = c.summary(spread, uc, a, cards)
	switch spread {
	case domain.SpreadThreeCard:
		d := c.engine.ThreeCardDetails(uc.Category, cards)
		r.Details = &d
	case domain.SpreadCelticCross:
		l := c.engine.CelticLines(cards)
		r.Celtic = &l
	}

	r.OverallAdvice = interpret.KeyLine(uc.Category)
	r.ActionRitual = interpret.SelectRitual(a.DominantSuit, uc.Category, a.ReversedRatio, c.rng)
	r.SignLine = interpret.SignLine(uc.Deadline)
	r.SafetyLine = safety.Advisory(uc.Category, uc.RawInput())
	r.TypeLens = interpret.TypeLens(code, a)
	r.SynergyInsight = synergy.AppendFocus(
		synergy.Insight(code, a.SuitCounts, a.ReversedRatio),
		uc.Category, code, a.DominantSuit,
	)
	r.MessageExample = c.engine.MessageExample(uc.Category, uc.Goal)

	r.Summary = c.limits.Truncate(r.Summary, rules.KindThesis)
	r.OverallAdvice = c.limits.Truncate(r.OverallAdvice, rules.KindAdvice)
	r.ActionRitual = c.limits.Truncate(r.ActionRitual, rules.KindRitual)

	return c.gate(r, uc)
}

func (c *Composer) positions(code sigil.Code, cards []domain.DrawnCard) []domain.PositionReading {
	out := make([]domain.PositionReading, 0, len(cards))
	for _, drawn := range cards {
		pr := domain.PositionReading{
			PositionID: drawn.PositionID,
			Text:       c.engine.PositionLine(drawn.PositionID, drawn.CardID, drawn.Orientation),
			Lens:       c.engine.Lens(code, drawn),
		}
		if card, ok := c.engine.Catalog().Lookup(drawn.CardID); ok && pr.Lens != "" {
			if rule, ok := rules.Detect(card, drawn.Orientation, code); ok {
				pr.Conflict = &domain.Guidance{
					Rule:     rule.Name,
					Strategy: string(rule.StrategyAt(drawn.PositionID)),
					Text:     rules.Resolve(rule, drawn.PositionID, pr.Lens, pr.Text),
				}
			}
		}
		out = append(out, pr)
	}
	return out
}

func (c *Composer) summary(spread domain.SpreadType, uc domain.UserContext, a interpret.Analysis, cards []domain.DrawnCard) string {
	thesis := c.engine.Thesis(uc.Category, a, cards, uc.Goal)
	if spread == domain.SpreadCelticCross {
		if ext, ok := c.engine.CelticThesis(uc.Category, cards); ok {
			thesis = ext
		}
	}
	if a.MajorDominant() {
		thesis = interpret.LifeThemePrefix + thesis
	}
	return thesis
}

// gate scans every text field. Rewrites are kept; advisories join the safety
// line. A critical finding anywhere replaces the whole reading with the
// safe-harbor text of the first critical warning.
func (c *Composer) gate(r domain.Reading, uc domain.UserContext) domain.Reading {
	var (
		warnings   []domain.SafetyWarning
		advisories []string
		critical   *domain.SafetyWarning
	)
	scan := func(text *string) {
		if *text == "" || critical != nil {
			return
		}
		out := c.safety.Scan(uc.Category, *text, uc)
		warnings = appendUnique(warnings, out.Warnings...)
		if w, ok := out.Critical(); ok {
			critical = &w
			return
		}
		*text = out.Text
		advisories = append(advisories, out.Advisories...)
	}

	// The user's own words are checked even when every field came out empty.
	if pre := c.safety.Scan(uc.Category, "", uc); len(pre.Warnings) > 0 {
		warnings = appendUnique(warnings, pre.Warnings...)
		if w, ok := pre.Critical(); ok {
			critical = &w
		}
	}

	scan(&r.Summary)
	for i := range r.PositionReadings {
		scan(&r.PositionReadings[i].Text)
		scan(&r.PositionReadings[i].Lens)
		if g := r.PositionReadings[i].Conflict; g != nil {
			scan(&g.Text)
		}
	}
	if r.Details != nil {
		scan(&r.Details.Situation)
		scan(&r.Details.Obstacle)
		scan(&r.Details.Advice)
	}
	if r.Celtic != nil {
		scan(&r.Celtic.Flow)
		scan(&r.Celtic.Conflict)
		scan(&r.Celtic.Lever)
	}
	scan(&r.OverallAdvice)
	scan(&r.ActionRitual)
	scan(&r.TypeLens)
	scan(&r.SynergyInsight)
	scan(&r.MessageExample)

	if critical != nil {
		return domain.Reading{
			ID:         r.ID,
			SpreadID:   r.SpreadID,
			Summary:    safety.SafeHarbor(critical.Type),
			SafetyLine: r.SafetyLine,
			Blocked:    true,
			Warnings:   warnings,
		}
	}

	r.SafetyLine = joinUnique(r.SafetyLine, advisories)
	r.Warnings = warnings
	return r
}

func appendUnique(ws []domain.SafetyWarning, add ...domain.SafetyWarning) []domain.SafetyWarning {
	for _, w := range add {
		seen := false
		for _, have := range ws {
			if have == w {
				seen = true
				break
			}
		}
		if !seen {
			ws = append(ws, w)
		}
	}
	return ws
}

func joinUnique(first string, rest []string) string {
	var lines []string
	seen := map[string]bool{}
	for _, s := range append([]string{first}, rest...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}
