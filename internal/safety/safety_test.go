package safety_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/safety"
)

func TestHealthFilter(t *testing.T) {
	res := safety.HealthFilter{}.Check("This is not a diagnosis of any disease.", domain.UserContext{})
	assert.Equal(t, "This is not a assessment of any condition.", res.Text)
	require.Len(t, res.Warnings, 2)
	assert.Equal(t, safety.SeverityWarning, res.Warnings[0].Severity)
	assert.Equal(t, safety.TypeHealthDiagnosis, res.Warnings[0].Type)
	assert.Equal(t, safety.HealthReferral, res.Advisory)

	clean := safety.HealthFilter{}.Check("Rest well tonight.", domain.UserContext{})
	assert.Equal(t, "Rest well tonight.", clean.Text)
	assert.Empty(t, clean.Warnings)
	assert.Empty(t, clean.Advisory)

	urgent := safety.HealthFilter{}.Check("Rest well tonight.", domain.UserContext{Urgency: 5})
	assert.Empty(t, urgent.Warnings)
	assert.Equal(t, safety.HealthReferral, urgent.Advisory)
}

func TestFinancialFilter(t *testing.T) {
	res := safety.FinancialFilter{}.Check("This is guaranteed to profit and will definitely pay.", domain.UserContext{})
	assert.Equal(t, "This is may profit and will quite possibly pay.", res.Text)
	assert.Len(t, res.Warnings, 2)

	res = safety.FinancialFilter{}.Check("Savings are certain to grow.", domain.UserContext{})
	assert.Equal(t, "Savings are expected to grow.", res.Text)
}

func TestLegalFilter(t *testing.T) {
	res := safety.LegalFilter{}.Check("Keep the affair going quietly.", domain.UserContext{})
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, safety.SeverityCritical, res.Warnings[0].Severity)
	assert.Empty(t, res.Text)

	// The user's own words are scanned too.
	res = safety.LegalFilter{}.Check("A gentle reading.", domain.UserContext{
		Question: "How do I see them without my partner finding out?",
	})
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, safety.TypeLegalEncouragement, res.Warnings[0].Type)

	res = safety.LegalFilter{}.Check("Some secrets come to light.", domain.UserContext{})
	assert.Empty(t, res.Warnings)
}

func TestHarmFilter(t *testing.T) {
	res := safety.HarmFilter{}.Check("An ordinary reading.", domain.UserContext{Situation: "Lately I want to die."})
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, safety.TypeSelfHarm, res.Warnings[0].Type)
	assert.Equal(t, safety.SeverityCritical, res.Warnings[0].Severity)

	res = safety.HarmFilter{}.Check("End the day with a walk.", domain.UserContext{})
	assert.Empty(t, res.Warnings)
	assert.Len(t, safety.HarmFilter{}.Categories(), len(domain.Categories))
}

func TestPipeline_CrisisInHealthReading(t *testing.T) {
	p := safety.NewPipeline()
	uc := domain.UserContext{
		Category:  domain.CategoryHealth,
		Situation: "I can't sleep and I want to die",
		Goal:      "feel better",
	}
	out := p.Apply(domain.CategoryHealth, "A health reading reads tendencies and does not diagnose.", uc)

	assert.True(t, out.Blocked)
	assert.Equal(t, safety.SafeHarbor(safety.TypeSelfHarm), out.Text)
	w, ok := out.Critical()
	require.True(t, ok)
	assert.Equal(t, safety.TypeSelfHarm, w.Type)
}

func TestPipeline_CategoryScoping(t *testing.T) {
	p := safety.NewPipeline()
	text := "This plan is guaranteed to profit."

	money := p.Apply(domain.CategoryMoney, text, domain.UserContext{})
	assert.Equal(t, "This plan is may profit.", money.Text)
	assert.False(t, money.Blocked)

	love := p.Apply(domain.CategoryLove, text, domain.UserContext{})
	assert.Equal(t, text, love.Text)
	assert.Empty(t, love.Warnings)
}

func TestPipeline_ApplyAppendsAdvisory(t *testing.T) {
	p := safety.NewPipeline()
	out := p.Apply(domain.CategoryHealth, "Look after your sleep.", domain.UserContext{Urgency: 4})
	assert.Equal(t, "Look after your sleep.\n\n"+safety.HealthReferral, out.Text)

	scanned := p.Scan(domain.CategoryHealth, "Look after your sleep.", domain.UserContext{Urgency: 4})
	assert.Equal(t, "Look after your sleep.", scanned.Text)
	assert.Equal(t, []string{safety.HealthReferral}, scanned.Advisories)
}

func TestPipeline_CustomFilters(t *testing.T) {
	p := safety.NewPipeline(safety.HarmFilter{})
	out := p.Apply(domain.CategoryHealth, "No diagnosis here.", domain.UserContext{})
	assert.Equal(t, "No diagnosis here.", out.Text)
}

func TestSafeHarbor(t *testing.T) {
	assert.Contains(t, safety.SafeHarbor(safety.TypeSelfHarm), "988")
	assert.Contains(t, safety.SafeHarbor(safety.TypeHealthDiagnosis), "medical professional")
	assert.Equal(t, safety.SafeHarbor("default"), safety.SafeHarbor("something_else"))
	for _, typ := range []string{safety.TypeSelfHarm, safety.TypeHealthDiagnosis, safety.TypeLegalEncouragement} {
		assert.True(t, strings.Contains(safety.SafeHarbor(typ), "Where to turn:"), typ)
	}
}

func TestAdvisory(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		input    string
		want     string
	}{
		{"crisis in any category", domain.CategoryWork, "I feel suicidal at work", safety.AdvisoryCrisis},
		{"health symptoms", domain.CategoryHealth, "my back pain keeps coming back", safety.AdvisoryHealth},
		{"health words elsewhere", domain.CategoryWork, "my back pain", ""},
		{"debt", domain.CategoryMoney, "how do I handle my loans", safety.AdvisoryDebt},
		{"investment", domain.CategoryMoney, "should I buy stocks", safety.AdvisoryInvestment},
		{"pet", domain.CategoryFamily, "our dog seems listless", safety.AdvisoryPet},
		{"nothing", domain.CategoryLove, "will they text me back", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safety.Advisory(tt.category, tt.input))
		})
	}
}
