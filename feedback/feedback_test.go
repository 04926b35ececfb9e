package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"style-atelier/models"
)

func TestClassifyKeywordTable(t *testing.T) {
	cases := []struct {
		text string
		want Action
	}{
		{"this is too expensive for me", ActionReduceBudget},
		{"can we go cheaper", ActionReduceBudget},
		{"the fabric is too heavy, something breathable", ActionLightenFabric},
		{"colours are too bright, want it toned down", ActionMutePalette},
		{"too dull, give me something vibrant", ActionBrightenPalette},
		{"I want a more traditional look", ActionTraditionalBias},
		{"make it modern, maybe indo-western", ActionModernBias},
		{"I just don't like it", ActionFullRebuild},
		{"", ActionFullRebuild},
	}
	for _, tc := range cases {
		got, _ := Classify(tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}

func TestClassifySetColour(t *testing.T) {
	action, name := Classify("show me something in emerald")
	assert.Equal(t, ActionSetColour, action)
	assert.Equal(t, "Emerald Green", name)

	action, name = Classify("I'd love navy instead")
	assert.Equal(t, ActionSetColour, action)
	assert.Equal(t, "Navy Blue", name)
}

func TestClassifyUnknownColourFallsBackToRebuild(t *testing.T) {
	action, name := Classify("make it chartreuse please")
	assert.Equal(t, ActionFullRebuild, action)
	assert.Empty(t, name)
}

func TestClassifyKeywordWinsOverColour(t *testing.T) {
	// "too expensive" outranks the colour mention: budget intent first.
	action, _ := Classify("the gold set is too expensive")
	assert.Equal(t, ActionReduceBudget, action)
}

func TestApplyReduceBudget(t *testing.T) {
	state := models.NewCurationState("wedding", "female", 10000)
	Apply(state, ActionReduceBudget, "")
	assert.InDelta(t, 7000, state.Budget, 0.01)
}

func TestApplySetColourReseedsAndFrontLoads(t *testing.T) {
	state := models.NewCurationState("wedding", "female", 10000)
	state.TrendBrief = &models.TrendBrief{TrendingColours: []string{"Maroon", "Gold", "Teal"}}

	Apply(state, ActionSetColour, "Teal")
	assert.Equal(t, "#008080", state.SeedHex)
	assert.Equal(t, []string{"Teal", "Maroon", "Gold"}, state.TrendBrief.TrendingColours)
}

func TestApplyBiasActions(t *testing.T) {
	state := models.NewCurationState("wedding", "female", 10000)
	state.Profile = models.DefaultProfile("u1")

	Apply(state, ActionTraditionalBias, "")
	assert.Equal(t, "Ethnic", state.PreferredVibe)
	assert.Contains(t, state.Profile.Fabrics, "Banarasi Silk")

	Apply(state, ActionModernBias, "")
	assert.Equal(t, "Modern", state.PreferredVibe)
	assert.Contains(t, state.Profile.Silhouettes, "Structured")
}

func TestApplyMuteAndBrighten(t *testing.T) {
	state := models.NewCurationState("wedding", "female", 10000)
	state.TrendBrief = &models.TrendBrief{TrendingColours: []string{"Maroon", "Gold"}}

	Apply(state, ActionMutePalette, "")
	assert.Equal(t, "Neutral", state.ColourMood)
	assert.Contains(t, state.TrendBrief.TrendingColours, "Charcoal")

	Apply(state, ActionBrightenPalette, "")
	assert.Equal(t, "Vibrant", state.ColourMood)
	assert.Equal(t, "Cobalt Blue", state.TrendBrief.TrendingColours[0])
}

func TestApplyFullRebuildRotatesTrendColours(t *testing.T) {
	state := models.NewCurationState("wedding", "female", 10000)
	state.TrendBrief = &models.TrendBrief{TrendingColours: []string{"A", "B", "C", "D"}}

	Apply(state, ActionFullRebuild, "")
	assert.Equal(t, []string{"C", "D", "A", "B"}, state.TrendBrief.TrendingColours)
}
