package synergy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
	"github.com/komekomeaaa/tarot/internal/synergy"
)

func counts(w, c, s, p int) domain.SuitCounts {
	return domain.SuitCounts{domain.Wands: w, domain.Cups: c, domain.Swords: s, domain.Pentacles: p}
}

func TestSuitSynergy(t *testing.T) {
	e := synergy.SuitSynergy("VIEQ", counts(3, 0, 0, 0))
	require.NotNil(t, e)
	assert.Equal(t, byte('V'), e.Letter)
	assert.Equal(t, domain.Wands, e.Suit)
	assert.Equal(t, synergy.Acceleration, e.Type)
	assert.InDelta(t, 0.9, e.Strength, 1e-9)

	assert.Nil(t, synergy.SuitSynergy("VIEQ", counts(1, 1, 1, 1)))
	assert.Nil(t, synergy.SuitSynergy("", counts(3, 0, 0, 0)))

	e = synergy.SuitSynergy("SCLD", counts(0, 0, 2, 1))
	require.NotNil(t, e)
	assert.Equal(t, synergy.Warning, e.Type)
}

func TestSuitSynergy_ReturnsCopy(t *testing.T) {
	e := synergy.SuitSynergy("VIEQ", counts(2, 0, 0, 0))
	require.NotNil(t, e)
	e.Message = "changed"
	again := synergy.SuitSynergy("VIEQ", counts(2, 0, 0, 0))
	assert.NotEqual(t, "changed", again.Message)
}

func TestTableCoversCoreLetters(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range synergy.Table() {
		seen[string(e.Letter)+string(e.Suit)] = true
		assert.Greater(t, e.Strength, 0.0)
		assert.LessOrEqual(t, e.Strength, 1.0)
	}
	assert.Len(t, seen, 16)
}

func TestReversedAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		ratio float64
		want  string
	}{
		{"below half", "VIEQ", 0.49, ""},
		{"pause introspective", "VIEQ", 0.5, "look at yourself again"},
		{"pause other", "VCEQ", 0.6, "pause and sort things out"},
		{"deep introspective", "SIED", 0.7, "season of reflection"},
		{"deep other", "SCLD", 1.0, "hard time to put things out"},
		{"empty code", "", 0.9, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := synergy.ReversedAdjustment(sigil.Code(tt.code), tt.ratio)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestInsight(t *testing.T) {
	both := synergy.Insight("VIEQ", counts(3, 0, 0, 0), 0.8)
	parts := strings.Split(both, "\n\n")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "[Momentum] "))
	assert.Contains(t, parts[1], "season of reflection")

	assert.Equal(t, synergy.ReversedAdjustment("SCLD", 0.5), synergy.Insight("SCLD", counts(1, 1, 0, 0), 0.5))
	assert.Empty(t, synergy.Insight("SCLD", counts(1, 1, 0, 0), 0.1))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[Caution] x", synergy.Format(synergy.Entry{Type: synergy.Warning, Message: "x"}))
	assert.Equal(t, "x", synergy.Format(synergy.Entry{Type: "other", Message: "x"}))
}

func TestFocusAdvice(t *testing.T) {
	got := synergy.FocusAdvice(domain.CategoryLove, "VIEQ", domain.Wands)
	assert.True(t, strings.HasPrefix(got, synergy.LoveFocusHeader+"\n"))

	// love_I_wands is below the threshold.
	assert.Empty(t, synergy.FocusAdvice(domain.CategoryLove, "ICEQ", domain.Wands))
	assert.Empty(t, synergy.FocusAdvice(domain.CategoryWork, "VIEQ", domain.Wands))
	assert.Empty(t, synergy.FocusAdvice(domain.CategoryLove, "VIEQ", domain.NoSuit))
	// C has no templates.
	assert.Empty(t, synergy.FocusAdvice(domain.CategoryLove, "CIEQ", domain.Cups))
}

func TestLookupFocus_PartialMatch(t *testing.T) {
	tpl, ok := synergy.LookupFocus(domain.CategoryLove, "SCLD", "coins")
	require.True(t, ok)
	assert.Equal(t, "love_S_cups", tpl.ID)
}

func TestAppendFocus(t *testing.T) {
	assert.Equal(t, "base", synergy.AppendFocus("base", domain.CategoryWork, "VIEQ", domain.Wands))
	got := synergy.AppendFocus("base", domain.CategoryLove, "VIEQ", domain.Wands)
	assert.True(t, strings.HasPrefix(got, "base\n\n"+synergy.LoveFocusHeader))
	assert.True(t, strings.HasPrefix(synergy.AppendFocus("", domain.CategoryLove, "VIEQ", domain.Wands), synergy.LoveFocusHeader))
}
