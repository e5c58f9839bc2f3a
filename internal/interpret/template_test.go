package interpret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/interpret"
)

func TestTemplateRender(t *testing.T) {
	tests := []struct {
		name string
		tpl  interpret.Template
		v    interpret.Values
		want string
	}{
		{"plain", "no slots", nil, "no slots"},
		{"single", "hello {NAME}", interpret.Values{"NAME": "you"}, "hello you"},
		{"repeat", "{A}-{A}", interpret.Values{"A": "x"}, "x-x"},
		{"missing slot renders empty", "[{MISSING}]", interpret.Values{}, "[]"},
		{"values are not rescanned", "{A}", interpret.Values{"A": "{B}", "B": "no"}, "{B}"},
		{"lower case braces kept", "{not a slot} {A}", interpret.Values{"A": "y"}, "{not a slot} y"},
		{"unclosed brace", "tail {A", interpret.Values{"A": "z"}, "tail {A"},
		{"nested brace", "{{A}}", interpret.Values{"A": "q"}, "{q}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tpl.Render(tt.v))
		})
	}
}

func TestTemplateSlots(t *testing.T) {
	tpl := interpret.Template("{CARD} and {KW}, again {CARD}; {skip}")
	assert.Equal(t, []string{"CARD", "KW"}, tpl.Slots())
	assert.Empty(t, interpret.Template("none").Slots())
}

func TestCategoryTemplatesUseKnownSlots(t *testing.T) {
	known := map[string]bool{
		"DOMINANT_SUIT": true, "USER_GOAL": true, "ADVICE_KW": true, "ADVICE_CARD": true,
		"SITUATION_CARD": true, "SITUATION_KW": true,
		"OBSTACLE_CARD": true, "OBSTACLE_KW": true, "OBSTACLE_ORI": true,
	}
	for _, c := range domain.Categories {
		tpl, ok := interpret.LookupCategory(c)
		if !assert.True(t, ok, c) {
			continue
		}
		assert.Contains(t, tpl.Thesis.Slots(), "USER_GOAL", c)
		for _, part := range []interpret.Template{tpl.Thesis, tpl.Situation, tpl.Obstacle, tpl.Advice, tpl.Message} {
			for _, s := range part.Slots() {
				assert.True(t, known[s], "%s uses unknown slot %s", c, s)
			}
		}
		assert.NotEmpty(t, tpl.KeyLine, c)
	}
}
