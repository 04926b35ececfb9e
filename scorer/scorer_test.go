package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"style-atelier/models"
)

func filledSlot(colourFamily, fabric string, vibeMatched bool) models.SelectionSlot {
	return models.SelectionSlot{
		Status:      models.SlotFilled,
		VibeMatched: vibeMatched,
		Item: &models.CatalogItem{
			SKU: "X", Name: "x", Category: "Full", Price: 100,
			ColourFamily: colourFamily, Fabric: fabric,
		},
	}
}

func brief() *models.TrendBrief {
	return &models.TrendBrief{
		TrendingColours: []string{"Maroon", "Emerald Green", "Gold"},
		KeyFabrics:      []string{"Silk", "Velvet"},
	}
}

func TestConfidenceFractionOfVibeMatches(t *testing.T) {
	slots := []models.SelectionSlot{
		filledSlot("Maroon", "Silk", true),
		filledSlot("Gold", "Velvet", true),
		filledSlot("Teal", "Cotton", false),
		filledSlot("Black", "Linen", false),
	}
	score := Score(slots, brief())
	assert.InDelta(t, 50.0, score.Confidence, 0.01)
}

func TestConfidenceZeroWhenNothingFilled(t *testing.T) {
	slots := []models.SelectionSlot{
		{Status: models.SlotUnfilled},
		{Status: models.SlotUnavailable},
	}
	score := Score(slots, brief())
	assert.Zero(t, score.Confidence)
	assert.InDelta(t, 5.0, score.TrendAlignment, 0.01, "baseline with no overlap")
}

func TestTrendAlignmentCapsAndClamps(t *testing.T) {
	// Three colour overlaps would be 4.5 points uncapped; the cap holds
	// the colour contribution at +3.0 and fabric at +2.0, so the maximum
	// is exactly 10.
	slots := []models.SelectionSlot{
		filledSlot("Maroon", "Silk", true),
		filledSlot("Emerald Green", "Velvet", true),
		filledSlot("Gold", "Silk", true),
	}
	score := Score(slots, brief())
	assert.InDelta(t, 10.0, score.TrendAlignment, 0.01)
	assert.LessOrEqual(t, score.TrendAlignment, 10.0)
}

func TestTrendAlignmentPartialOverlap(t *testing.T) {
	// One colour hit (+1.5), one fabric hit (+1.0) on the 5.0 baseline.
	slots := []models.SelectionSlot{
		filledSlot("Maroon", "Cotton", true),
		filledSlot("Teal", "Velvet", false),
	}
	score := Score(slots, brief())
	assert.InDelta(t, 7.5, score.TrendAlignment, 0.01)
}

func TestFabricSubstringMatch(t *testing.T) {
	// A Banarasi Silk item counts toward the "Silk" trend fabric.
	slots := []models.SelectionSlot{
		filledSlot("Teal", "Banarasi Silk", false),
	}
	score := Score(slots, brief())
	assert.InDelta(t, 6.0, score.TrendAlignment, 0.01)
}

func TestRuleOfThreeViolationReportedNotRepaired(t *testing.T) {
	slots := []models.SelectionSlot{
		filledSlot("Maroon", "Silk", true),
		filledSlot("Teal", "Silk", true),
		filledSlot("Coral", "Silk", true),
		filledSlot("Magenta", "Silk", true),
	}
	score := Score(slots, brief())

	assert.False(t, score.RuleOfThree.Valid)
	assert.Contains(t, score.RuleOfThree.Dropped, "Magenta")
	// The slots themselves are untouched.
	for _, s := range slots {
		assert.NotNil(t, s.Item)
	}
}

func TestRuleOfThreeNeutralsDoNotCount(t *testing.T) {
	slots := []models.SelectionSlot{
		filledSlot("Maroon", "Silk", true),
		filledSlot("Teal", "Silk", true),
		filledSlot("Coral", "Silk", true),
		filledSlot("Black", "Silk", true),
		filledSlot("Ivory", "Silk", true),
	}
	score := Score(slots, brief())
	assert.True(t, score.RuleOfThree.Valid)
}
