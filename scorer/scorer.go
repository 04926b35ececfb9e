// Package scorer grades an assembled bundle against the trend brief and
// validates its final colour set.
package scorer

import (
	"math"
	"strings"

	"style-atelier/colour"
	"style-atelier/models"
)

// Trend alignment weights, on a 1-10 scale.
const (
	baseline        = 5.0
	colourPoints    = 1.5
	colourPointsCap = 3.0
	fabricPoints    = 1.0
	fabricPointsCap = 2.0
)

// Score grades the filled slots: confidence is the fraction of filled
// slots whose item matched the preferred vibe, trend alignment rewards
// colour and fabric overlap with the brief. Also re-checks the bundle's
// assembled colours against the rule of three; violations are reported,
// not repaired, since slots fill independently.
func Score(slots []models.SelectionSlot, trend *models.TrendBrief) models.BundleScore {
	filled, vibeHits := 0, 0
	var colours, fabrics []string
	for i := range slots {
		if slots[i].Item == nil {
			continue
		}
		filled++
		if slots[i].VibeMatched {
			vibeHits++
		}
		colours = append(colours, slots[i].Item.ColourFamily)
		fabrics = append(fabrics, slots[i].Item.Fabric)
	}

	var confidence float64
	if filled > 0 {
		confidence = float64(vibeHits) / float64(filled) * 100
	}
	confidence = math.Max(0, math.Min(100, confidence))

	alignment := baseline
	if !trend.IsEmpty() {
		colourHits := distinctOverlap(colours, trend.TrendingColours)
		fabricHits := distinctOverlap(fabrics, trend.KeyFabrics)
		alignment += math.Min(float64(colourHits)*colourPoints, colourPointsCap)
		alignment += math.Min(float64(fabricHits)*fabricPoints, fabricPointsCap)
	}
	alignment = math.Max(1, math.Min(10, alignment))
	alignment = math.Round(alignment*10) / 10

	return models.BundleScore{
		Confidence:     confidence,
		TrendAlignment: alignment,
		RuleOfThree:    colour.EnforceColourBudget(colours, colour.MaxNonNeutral),
	}
}

// distinctOverlap counts distinct values present in both lists,
// case-insensitive. Fabric names match on substring so "Banarasi Silk"
// items still count toward a "Silk" trend entry.
func distinctOverlap(selected, trending []string) int {
	counted := map[string]bool{}
	hits := 0
	for _, tr := range trending {
		trLower := strings.ToLower(tr)
		if counted[trLower] {
			continue
		}
		for _, s := range selected {
			sLower := strings.ToLower(s)
			if sLower == trLower || strings.Contains(sLower, trLower) {
				counted[trLower] = true
				hits++
				break
			}
		}
	}
	return hits
}
