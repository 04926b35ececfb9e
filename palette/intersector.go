// Package palette intersects the three inbound signals (seasonal trends,
// the user's historical profile and the occasion rules) into one bounded
// colour palette, then derives harmony accents from the seed colour.
package palette

import (
	"fmt"
	"log"
	"strings"

	"style-atelier/colour"
	"style-atelier/models"
)

// defaultSeed anchors the palette when neither the trend overlap nor the
// user history yields a usable colour.
const defaultSeed = "Charcoal"

// Input carries everything the intersector needs for one build.
type Input struct {
	Trend           *models.TrendBrief
	Profile         *models.StyleProfile
	OccasionColours []string
	AvoidColours    []string
	Strategy        string // complementary / analogous / monochromatic
	Mood            string // Vibrant / Pastel / Earthy / Neutral / Any
	SeedHex         string // optional explicit seed, e.g. from a swatch
}

// Build assembles the palette: trend ∩ history overlap, trend − history
// accents, a seed colour, harmony secondaries per the strategy (mood
// filtered with an unfiltered fallback), avoid-colour removal and the
// rule-of-three budget. Returns the palette plus an optional bridge
// suggestion for an unused accent.
func Build(in Input) (*models.Palette, *models.BridgeSuggestion, error) {
	trendColours := trendColoursOf(in.Trend)
	if len(trendColours) == 0 && len(in.OccasionColours) > 0 {
		// No trend brief: the occasion rule colours stand in as the
		// trending set, so the palette still reflects the event.
		trendColours = in.OccasionColours
		if len(trendColours) > 3 {
			trendColours = trendColours[:3]
		}
	}
	historyColours := historyColoursOf(in.Profile)

	overlap := intersect(trendColours, historyColours)
	accents := subtract(trendColours, historyColours)

	seed, err := seedSpec(in, overlap, historyColours)
	if err != nil {
		return nil, nil, err
	}

	secondary, err := harmonySecondaries(seed, in.Strategy)
	if err != nil {
		return nil, nil, fmt.Errorf("deriving %s harmony for %s: %w", in.Strategy, seed.Hex, err)
	}
	secondary = filterByMood(secondary, in.Mood)
	secondary = dropAvoided(secondary, in.AvoidColours)

	names := make([]string, 0, 1+len(secondary))
	names = append(names, seed.Name)
	for _, s := range secondary {
		names = append(names, s.Name)
	}
	budget := colour.EnforceColourBudget(names, colour.MaxNonNeutral)
	if !budget.Valid {
		log.Printf("🎨 palette trimmed to rule of three: %s", budget.Reason)
		secondary = keepOnly(secondary, budget.Kept)
	}

	p := &models.Palette{
		Strategy:   in.Strategy,
		Primary:    seed,
		Secondary:  secondary,
		Overlap:    overlap,
		Accents:    accents,
		Dropped:    budget.Dropped,
		DropReason: budget.Reason,
	}
	return p, bridgeFor(p, in.Profile), nil
}

func trendColoursOf(t *models.TrendBrief) []string {
	if t.IsEmpty() {
		return nil
	}
	return t.TrendingColours
}

func historyColoursOf(p *models.StyleProfile) []string {
	if p.IsEmpty() {
		return nil
	}
	return p.DominantColours
}

// seedSpec resolves the palette seed: an explicit swatch hex wins, then
// the first trend/history overlap, then the user's top colour, then the
// neutral default.
func seedSpec(in Input, overlap, history []string) (colour.Spec, error) {
	if in.SeedHex != "" {
		spec, err := colour.SpecFromHex(in.SeedHex)
		if err != nil {
			return colour.Spec{}, models.ConfigurationErrorf("seedHex", "%v", err)
		}
		return spec, nil
	}
	for _, candidates := range [][]string{overlap, history} {
		for _, name := range candidates {
			if spec, ok := colour.ByName(name); ok {
				return spec, nil
			}
		}
	}
	spec, _ := colour.ByName(defaultSeed)
	return spec, nil
}

// harmonySecondaries derives at most two accents from the seed per the
// palette strategy. Monochromatic uses the two gentle (±0.12) shades so
// the palette reads as one colour story.
func harmonySecondaries(seed colour.Spec, strategy string) ([]colour.Spec, error) {
	var hexes []string
	switch strategy {
	case models.StrategyAnalogous:
		left, right, err := colour.Analogous(seed.Hex)
		if err != nil {
			return nil, err
		}
		hexes = []string{left, right}
	case models.StrategyMonochromatic:
		shades, err := colour.Monochromatic(seed.Hex)
		if err != nil {
			return nil, err
		}
		hexes = []string{shades[1], shades[2]}
	default: // complementary
		comp, err := colour.Complementary(seed.Hex)
		if err != nil {
			return nil, err
		}
		hexes = []string{comp}
	}

	out := make([]colour.Spec, 0, len(hexes))
	for _, hex := range hexes {
		if hex == seed.Hex {
			continue // achromatic seeds can collapse onto themselves
		}
		spec, err := colour.SpecFromHex(hex)
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, nil
}

// filterByMood keeps only secondaries matching the requested colour mood.
// When filtering would empty the set, the unfiltered set is returned
// rather than an empty palette.
func filterByMood(specs []colour.Spec, mood string) []colour.Spec {
	if mood == "" || mood == colour.MoodAny {
		return specs
	}
	var kept []colour.Spec
	for _, s := range specs {
		if moodOfFamily(s.Family) == mood {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return specs
	}
	return kept
}

func moodOfFamily(family string) string {
	switch family {
	case "pastel":
		return colour.MoodPastel
	case "earth", "warm":
		return colour.MoodEarthy
	case "jewel", "bold":
		return colour.MoodVibrant
	default:
		return colour.MoodNeutral
	}
}

func dropAvoided(specs []colour.Spec, avoid []string) []colour.Spec {
	if len(avoid) == 0 {
		return specs
	}
	avoided := make(map[string]bool, len(avoid))
	for _, a := range avoid {
		avoided[strings.ToLower(a)] = true
	}
	var kept []colour.Spec
	for _, s := range specs {
		if !avoided[strings.ToLower(s.Name)] {
			kept = append(kept, s)
		}
	}
	return kept
}

func keepOnly(specs []colour.Spec, kept []string) []colour.Spec {
	allowed := make(map[string]bool, len(kept))
	for _, k := range kept {
		allowed[k] = true
	}
	var out []colour.Spec
	for _, s := range specs {
		if allowed[s.Name] {
			out = append(out, s)
		}
	}
	return out
}

// bridgeFor recommends introducing the first unused trend accent via a
// small item anchored on a neutral the user already wears. Advisory only.
func bridgeFor(p *models.Palette, profile *models.StyleProfile) *models.BridgeSuggestion {
	if profile.IsEmpty() {
		return nil
	}
	inPalette := make(map[string]bool, len(p.Secondary)+1)
	inPalette[p.Primary.Name] = true
	for _, s := range p.Secondary {
		inPalette[s.Name] = true
	}

	var accent string
	for _, a := range p.Accents {
		if !inPalette[a] {
			accent = a
			break
		}
	}
	if accent == "" {
		return nil
	}

	var base string
	for _, c := range profile.DominantColours {
		if colour.IsNeutral(c) {
			base = c
			break
		}
	}
	if base == "" {
		return nil
	}

	return &models.BridgeSuggestion{
		BaseColour:   base,
		BaseHex:      colour.HexFor(base),
		AccentColour: accent,
		AccentHex:    colour.HexFor(accent),
		Suggestion: fmt.Sprintf("Try %s as a small accent piece, like a clutch or dupatta border, against your usual %s. A low-commitment way to wear this season's colour.",
			accent, strings.ToLower(base)),
	}
}

// intersect returns trend colours also present in history, preserving
// trend order. Case-insensitive.
func intersect(trend, history []string) []string {
	h := lowerSet(history)
	var out []string
	for _, c := range trend {
		if h[strings.ToLower(c)] {
			out = append(out, c)
		}
	}
	return out
}

// subtract returns trend colours absent from history, preserving order.
func subtract(trend, history []string) []string {
	h := lowerSet(history)
	var out []string
	for _, c := range trend {
		if !h[strings.ToLower(c)] {
			out = append(out, c)
		}
	}
	return out
}

func lowerSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[strings.ToLower(v)] = true
	}
	return m
}
