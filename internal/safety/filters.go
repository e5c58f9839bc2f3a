// Package safety scans generated reading text and the user's own words for
// content that must be softened or must never be shown.
package safety

import (
	"regexp"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// Severity of a finding. Only critical findings block a reading.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning types double as safe-harbor keys.
const (
	TypeHealthDiagnosis    = "health_diagnosis"
	TypeFinancialCertainty = "financial_certainty"
	TypeLegalEncouragement = "legal_encouragement"
	TypeSelfHarm           = "self_harm"
)

// Result is what one filter did to the running text.
type Result struct {
	Text     string
	Warnings []domain.SafetyWarning
	// Advisory is a line the filter wants shown next to the text.
	Advisory string
}

// Filter inspects text for one risk. Categories lists where it applies.
type Filter interface {
	Name() string
	Categories() []domain.Category
	Check(text string, uc domain.UserContext) Result
}

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

func applyRewrites(text string, rewrites []rewrite, warn domain.SafetyWarning) Result {
	res := Result{Text: text}
	for _, rw := range rewrites {
		if rw.pattern.MatchString(res.Text) {
			res.Warnings = append(res.Warnings, warn)
			res.Text = rw.pattern.ReplaceAllString(res.Text, rw.replacement)
		}
	}
	return res
}

// HealthReferral is appended when health wording was softened or the user
// rated their urgency high.
const HealthReferral = "If you are worried about your health, please consult a medical professional."

// UrgencyReferral is the urgency from which the health referral is always shown.
const UrgencyReferral = 4

// HealthFilter softens diagnostic and medical wording.
type HealthFilter struct{}

var healthRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\bdiagnos(is|es)\b`), "assessment"},
	{regexp.MustCompile(`(?i)\b(disease|illness)(es)?\b`), "condition"},
	{regexp.MustCompile(`(?i)\btreatments?\b`), "care"},
	{regexp.MustCompile(`(?i)\b(medications?|medicines?)\b`), "support"},
	{regexp.MustCompile(`(?i)\byou (don't|do not) need (to see )?a doctor\b`), "a doctor can help"},
}

func (HealthFilter) Name() string { return "health" }

func (HealthFilter) Categories() []domain.Category {
	return []domain.Category{domain.CategoryHealth}
}

func (HealthFilter) Check(text string, uc domain.UserContext) Result {
	res := applyRewrites(text, healthRewrites, domain.SafetyWarning{
		Severity: SeverityWarning,
		Type:     TypeHealthDiagnosis,
		Message:  "diagnostic wording softened",
	})
	if len(res.Warnings) > 0 || uc.Urgency >= UrgencyReferral {
		res.Advisory = HealthReferral
	}
	return res
}

// FinancialFilter hedges absolute claims about money.
type FinancialFilter struct{}

var financialRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\bguaranteed to (profit|succeed|work out|pay off)\b`), "may $1"},
	{regexp.MustCompile(`(?i)\bguaranteed (profits?|returns?|gains?)\b`), "possible $1"},
	{regexp.MustCompile(`(?i)\b(absolutely|definitely)\b`), "quite possibly"},
	{regexp.MustCompile(`(?i)\bcertain(ly)? to (grow|increase|profit)\b`), "expected to $2"},
	{regexp.MustCompile(`(?i)\byou should invest\b`), "investing is one option to consider"},
}

func (FinancialFilter) Name() string { return "financial" }

func (FinancialFilter) Categories() []domain.Category {
	return []domain.Category{domain.CategoryMoney}
}

func (FinancialFilter) Check(text string, _ domain.UserContext) Result {
	return applyRewrites(text, financialRewrites, domain.SafetyWarning{
		Severity: SeverityWarning,
		Type:     TypeFinancialCertainty,
		Message:  "certainty wording hedged",
	})
}

// LegalFilter discards text that encourages deception or concealment in a
// relationship.
type LegalFilter struct{}

var legalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(keep|continue|carry on)( with)? (the|your|an|this) affair\b`),
	regexp.MustCompile(`(?i)\bkeep (hiding|it hidden|it secret|this secret|it a secret)\b`),
	regexp.MustCompile(`(?i)\bso (that )?(they|nobody|no one|your partner) (won't|will not|never) find out\b`),
	regexp.MustCompile(`(?i)\bwithout (them|your partner|your spouse) (knowing|finding out)\b`),
}

func (LegalFilter) Name() string { return "legal" }

func (LegalFilter) Categories() []domain.Category {
	return []domain.Category{domain.CategoryLove, domain.CategoryRelationship}
}

func (LegalFilter) Check(text string, uc domain.UserContext) Result {
	raw := uc.RawInput()
	for _, p := range legalPatterns {
		if p.MatchString(text) || p.MatchString(raw) {
			return Result{Warnings: []domain.SafetyWarning{{
				Severity: SeverityCritical,
				Type:     TypeLegalEncouragement,
				Message:  "encouragement of deception detected",
			}}}
		}
	}
	return Result{Text: text}
}

// HarmFilter discards everything when the text or the user's own words
// carry crisis language.
type HarmFilter struct{}

var harmPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwant(ed)? to die\b`),
	regexp.MustCompile(`(?i)\bsuicid(e|al)\b`),
	regexp.MustCompile(`(?i)\bkill(ing)? (myself|him|her|them)\b`),
	regexp.MustCompile(`(?i)\bend (it all|my life)\b`),
	regexp.MustCompile(`(?i)\bself[- ]harm\b`),
	regexp.MustCompile(`(?i)\brevenge\b`),
	regexp.MustCompile(`(?i)\bwant to disappear\b`),
}

func (HarmFilter) Name() string { return "harm" }

func (HarmFilter) Categories() []domain.Category {
	out := make([]domain.Category, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}

func (HarmFilter) Check(text string, uc domain.UserContext) Result {
	combined := text + " " + uc.RawInput()
	for _, p := range harmPatterns {
		if p.MatchString(combined) {
			return Result{Warnings: []domain.SafetyWarning{{
				Severity: SeverityCritical,
				Type:     TypeSelfHarm,
				Message:  "self-harm or harm-to-others risk detected",
			}}}
		}
	}
	return Result{Text: text}
}

// DefaultFilters returns the filters in pipeline order.
func DefaultFilters() []Filter {
	return []Filter{HealthFilter{}, FinancialFilter{}, LegalFilter{}, HarmFilter{}}
}
