package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-atelier/models"
)

func trendBrief(colours ...string) *models.TrendBrief {
	return &models.TrendBrief{TrendingColours: colours, Season: "winter", Year: 2026}
}

func profileWith(colours ...string) *models.StyleProfile {
	p := models.DefaultProfile("u1")
	p.DominantColours = colours
	return p
}

func TestBuildOverlapAndAccents(t *testing.T) {
	p, _, err := Build(Input{
		Trend:    trendBrief("Maroon", "Emerald Green", "Gold", "Royal Purple"),
		Profile:  profileWith("Maroon", "Navy Blue", "Black"),
		Strategy: models.StrategyComplementary,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Maroon"}, p.Overlap)
	assert.Equal(t, []string{"Emerald Green", "Gold", "Royal Purple"}, p.Accents)
	// Seed is the first overlap colour.
	assert.Equal(t, "Maroon", p.Primary.Name)
	assert.Len(t, p.Secondary, 1, "complementary strategy yields one accent")
}

func TestBuildSeedFallsBackToHistoryThenNeutral(t *testing.T) {
	// No overlap: seed comes from the user's top colour.
	p, _, err := Build(Input{
		Trend:    trendBrief("Mint", "Peach"),
		Profile:  profileWith("Cobalt Blue", "Black"),
		Strategy: models.StrategyAnalogous,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cobalt Blue", p.Primary.Name)

	// No overlap and no history: neutral default.
	empty := &models.StyleProfile{UserID: "u2"}
	p, _, err = Build(Input{
		Trend:    trendBrief(),
		Profile:  empty,
		Strategy: models.StrategyMonochromatic,
	})
	require.NoError(t, err)
	assert.Equal(t, "Charcoal", p.Primary.Name)
}

func TestBuildOccasionColoursStandInForMissingTrend(t *testing.T) {
	// No trend data at all: the occasion rule colours drive the palette,
	// capped at three, and overlap/seed resolution works against them.
	p, _, err := Build(Input{
		Trend:           &models.TrendBrief{},
		Profile:         profileWith("Maroon", "Black"),
		OccasionColours: []string{"Maroon", "Gold", "Emerald Green", "Ivory"},
		Strategy:        models.StrategyComplementary,
	})
	require.NoError(t, err)

	assert.Equal(t, "Maroon", p.Primary.Name, "occasion colour shared with history seeds the palette")
	assert.Equal(t, []string{"Maroon"}, p.Overlap)
	assert.Equal(t, []string{"Gold", "Emerald Green"}, p.Accents, "capped at three occasion colours")
}

func TestBuildExplicitSeedWins(t *testing.T) {
	p, _, err := Build(Input{
		Trend:    trendBrief("Maroon"),
		Profile:  profileWith("Maroon"),
		Strategy: models.StrategyComplementary,
		SeedHex:  "#C67C5A",
	})
	require.NoError(t, err)
	assert.Equal(t, "Terracotta", p.Primary.Name)
}

func TestBuildMalformedSeedIsConfigurationError(t *testing.T) {
	_, _, err := Build(Input{
		Trend:    trendBrief("Maroon"),
		Profile:  profileWith("Maroon"),
		Strategy: models.StrategyComplementary,
		SeedHex:  "#ZZZZZZ",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConfiguration))
	assert.Contains(t, err.Error(), "seedHex")
}

func TestBuildMoodFilterFallsBackWhenEmpty(t *testing.T) {
	// A vibrant-mood request against a palette whose computed accents are
	// unlikely to all classify vibrant must never return an empty set.
	p, _, err := Build(Input{
		Trend:    trendBrief("Pastel Pink"),
		Profile:  profileWith("Pastel Pink"),
		Strategy: models.StrategyAnalogous,
		Mood:     "Vibrant",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.Secondary)
}

func TestBuildRespectsRuleOfThree(t *testing.T) {
	p, _, err := Build(Input{
		Trend:    trendBrief("Emerald Green"),
		Profile:  profileWith("Emerald Green"),
		Strategy: models.StrategyAnalogous,
	})
	require.NoError(t, err)

	nonNeutral := 0
	for _, name := range p.Families() {
		if name != "Black" && name != "White" && name != "Navy Blue" {
			nonNeutral++
		}
	}
	assert.LessOrEqual(t, nonNeutral, 3)
}

func TestBridgeSuggestionOnUserNeutral(t *testing.T) {
	p, bridge, err := Build(Input{
		Trend:    trendBrief("Maroon", "Electric Indigo"),
		Profile:  profileWith("Maroon", "Navy Blue"),
		Strategy: models.StrategyComplementary,
	})
	require.NoError(t, err)
	require.NotNil(t, bridge)

	assert.Equal(t, "Electric Indigo", bridge.AccentColour)
	assert.Equal(t, "Navy Blue", bridge.BaseColour)
	assert.NotEmpty(t, bridge.Suggestion)
	assert.Contains(t, p.Accents, "Electric Indigo")
}

func TestNoBridgeWithoutNeutralInProfile(t *testing.T) {
	_, bridge, err := Build(Input{
		Trend:    trendBrief("Maroon", "Electric Indigo"),
		Profile:  profileWith("Maroon", "Coral"),
		Strategy: models.StrategyComplementary,
	})
	require.NoError(t, err)
	assert.Nil(t, bridge)
}

func TestBuildDropsOccasionAvoidColours(t *testing.T) {
	p, _, err := Build(Input{
		Trend:        trendBrief("Maroon"),
		Profile:      profileWith("Maroon"),
		Strategy:     models.StrategyMonochromatic,
		AvoidColours: []string{"Black", "White"},
	})
	require.NoError(t, err)
	for _, s := range p.Secondary {
		assert.NotEqual(t, "Black", s.Name)
		assert.NotEqual(t, "White", s.Name)
	}
}
