// Package feedback turns free-text refinement requests into one action
// from a closed set, then applies that action to the curation state.
// Unmatched input never errors; it degrades to a full rebuild.
package feedback

import (
	"log"
	"strings"

	"style-atelier/colour"
	"style-atelier/models"
)

// Action is one member of the closed refinement action set.
type Action string

const (
	ActionLightenFabric   Action = "lighten-fabric"
	ActionMutePalette     Action = "mute-palette"
	ActionReduceBudget    Action = "reduce-budget"
	ActionBrightenPalette Action = "brighten-palette"
	ActionSetColour       Action = "set-colour"
	ActionTraditionalBias Action = "traditional-bias"
	ActionModernBias      Action = "modern-bias"
	ActionFullRebuild     Action = "full-rebuild"
)

// BudgetReductionFactor scales the total budget on a reduce-budget action.
const BudgetReductionFactor = 0.7

// intent is one row of the classifier table, checked in order: the
// first row with a keyword hit wins.
type intent struct {
	action   Action
	keywords []string
}

var intents = []intent{
	{ActionReduceBudget, []string{"cheaper", "too expensive", "budget", "afford", "less costly", "cost less"}},
	{ActionLightenFabric, []string{"lighter fabric", "too heavy", "breathable", "lighter", "too hot", "sweaty"}},
	{ActionMutePalette, []string{"muted", "too bright", "too loud", "subtle", "toned down", "softer colour", "softer color", "less flashy"}},
	{ActionBrightenPalette, []string{"brighter", "more colour", "more color", "vibrant", "too dull", "more pop", "colourful", "colorful"}},
	{ActionTraditionalBias, []string{"traditional", "more ethnic", "desi", "heritage", "classic look"}},
	{ActionModernBias, []string{"modern", "western", "contemporary", "fusion", "indo-western"}},
}

// Classify maps free text to an action. A recognised colour word in the
// text yields set-colour with that colour; anything unmatched falls back
// to full-rebuild, including phrases naming colours outside the
// vocabulary.
func Classify(text string) (Action, string) {
	lower := strings.ToLower(text)

	for _, in := range intents {
		for _, kw := range in.keywords {
			if strings.Contains(lower, kw) {
				return in.action, ""
			}
		}
	}

	if name := extractColour(lower); name != "" {
		return ActionSetColour, name
	}
	return ActionFullRebuild, ""
}

// extractColour scans the words of a phrase through the fixed colour
// vocabulary. First recognised word wins; unrecognised colour words are
// not guessed at.
func extractColour(lower string) string {
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if name := colour.Lookup(word); name != "" {
			return name
		}
	}
	return ""
}

// Fabric substitution tables for the bias actions.
var (
	lightFabrics       = []string{"Cotton", "Linen", "Chiffon", "Georgette"}
	traditionalFabrics = []string{"Banarasi Silk", "Kanjeevaram Silk", "Raw Silk", "Velvet"}
	modernFabrics      = []string{"Wool Blend", "Satin", "Linen", "Crepe"}

	traditionalSilhouettes = []string{"Draped", "Anarkali", "Flared"}
	modernSilhouettes      = []string{"Structured", "Slim Fit", "Straight"}

	mutedColours   = []string{"Charcoal", "Beige", "Ivory", "Navy Blue", "Nude"}
	vibrantColours = []string{"Cobalt Blue", "Magenta", "Coral", "Emerald Green"}
)

// Apply mutates the curation state per the classified action. The
// caller blacklists the current items and resets the slots; Apply only
// shifts the signals the next matching pass will read.
func Apply(state *models.CurationState, action Action, colourName string) {
	switch action {
	case ActionReduceBudget:
		state.Budget *= BudgetReductionFactor
		log.Printf("💰 Budget reduced to ₹%.0f", state.Budget)

	case ActionLightenFabric:
		if state.Profile != nil {
			state.Profile.Fabrics = lightFabrics
		}
		if state.TrendBrief != nil {
			state.TrendBrief.KeyFabrics = lightFabrics
		}

	case ActionMutePalette:
		state.ColourMood = colour.MoodNeutral
		state.SeedHex = ""
		if state.TrendBrief != nil {
			state.TrendBrief.TrendingColours = mutedColours
		}

	case ActionBrightenPalette:
		state.ColourMood = colour.MoodVibrant
		state.SeedHex = ""
		if state.TrendBrief != nil {
			state.TrendBrief.TrendingColours = frontLoad(state.TrendBrief.TrendingColours, vibrantColours...)
		}

	case ActionSetColour:
		state.SeedHex = colour.HexFor(colourName)
		if state.TrendBrief != nil {
			state.TrendBrief.TrendingColours = frontLoad(state.TrendBrief.TrendingColours, colourName)
		}
		log.Printf("🎨 Palette re-seeded on %s", colourName)

	case ActionTraditionalBias:
		state.PreferredVibe = "Ethnic"
		if state.Profile != nil {
			state.Profile.Fabrics = traditionalFabrics
			state.Profile.Silhouettes = traditionalSilhouettes
		}

	case ActionModernBias:
		state.PreferredVibe = "Modern"
		if state.Profile != nil {
			state.Profile.Fabrics = modernFabrics
			state.Profile.Silhouettes = modernSilhouettes
		}

	default: // full rebuild: rotate the trend colours for a fresh angle
		if state.TrendBrief != nil && len(state.TrendBrief.TrendingColours) > 2 {
			c := state.TrendBrief.TrendingColours
			state.TrendBrief.TrendingColours = append(append([]string{}, c[2:]...), c[:2]...)
		}
	}
}

// frontLoad moves (or inserts) the given colours to the head of the
// list, preserving the rest of the order.
func frontLoad(list []string, lead ...string) []string {
	out := make([]string, 0, len(list)+len(lead))
	seen := make(map[string]bool, len(lead))
	for _, l := range lead {
		if !seen[strings.ToLower(l)] {
			seen[strings.ToLower(l)] = true
			out = append(out, l)
		}
	}
	for _, c := range list {
		if !seen[strings.ToLower(c)] {
			seen[strings.ToLower(c)] = true
			out = append(out, c)
		}
	}
	return out
}
