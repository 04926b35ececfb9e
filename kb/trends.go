package kb

import (
	"strings"

	"style-atelier/models"
)

// seasonalTrend is one curated seasonal entry of the trend tables.
type seasonalTrend struct {
	Colours     []string
	Fabrics     []string
	Silhouettes []string
	Summary     string
}

var seasonalTrends = map[string]seasonalTrend{
	"spring": {
		Colours:     []string{"Peach", "Electric Indigo", "Mint", "Lavender", "Coral"},
		Fabrics:     []string{"Organza", "Chanderi Silk", "Linen", "Chiffon"},
		Silhouettes: []string{"A-Line", "Pre-Draped", "Crop & Flare"},
		Summary:     "Spring leans soft and luminous: sheer organzas, sorbet pastels and one electric accent",
	},
	"summer": {
		Colours:     []string{"Electric Indigo", "Coral", "Mint", "White", "Peach"},
		Fabrics:     []string{"Linen", "Cotton", "Georgette", "Organza"},
		Silhouettes: []string{"Relaxed", "Straight", "A-Line"},
		Summary:     "Summer is breathable and bright: linens and cottons carrying saturated cool accents",
	},
	"autumn": {
		Colours:     []string{"Cobalt Blue", "Emerald Green", "Mustard Yellow", "Deep Wine", "Teal"},
		Fabrics:     []string{"Silk", "Velvet", "Jacquard", "Raw Silk"},
		Silhouettes: []string{"Structured", "Draped", "Anarkali"},
		Summary:     "Autumn goes rich and textural: jewel tones on silk, velvet and jacquard",
	},
	"winter": {
		Colours:     []string{"Maroon", "Emerald Green", "Gold", "Royal Purple", "Navy Blue"},
		Fabrics:     []string{"Velvet", "Pashmina", "Banarasi Silk", "Kanjeevaram Silk"},
		Silhouettes: []string{"Structured", "Draped", "Flared"},
		Summary:     "Winter is the wedding season: heritage silks, velvet and deep regal colour",
	},
}

// occasionOverlay adds occasion-specific items on top of the seasonal base.
type occasionOverlay struct {
	Colours     []string
	Fabrics     []string
	Silhouettes []string
}

var occasionOverlays = map[string]occasionOverlay{
	"wedding": {
		Colours:     []string{"Maroon", "Gold", "Emerald Green"},
		Fabrics:     []string{"Kanjeevaram Silk", "Banarasi Silk"},
		Silhouettes: []string{"Draped"},
	},
	"sangeet": {
		Colours:     []string{"Cobalt Blue", "Gold"},
		Fabrics:     []string{"Sequin Georgette", "Velvet"},
		Silhouettes: []string{"Pre-Draped", "Flared"},
	},
	"diwali": {
		Colours:     []string{"Gold", "Maroon", "Royal Blue"},
		Fabrics:     []string{"Silk", "Velvet"},
		Silhouettes: []string{"Straight", "A-Line"},
	},
	"haldi": {
		Colours:     []string{"Mustard Yellow", "Coral"},
		Fabrics:     []string{"Cotton", "Georgette"},
		Silhouettes: []string{"Short", "A-Line"},
	},
	"corporate": {
		Colours:     []string{"Navy Blue", "Charcoal"},
		Fabrics:     []string{"Wool Blend", "Cotton Blend"},
		Silhouettes: []string{"Structured", "Slim Fit"},
	},
	"date_night": {
		Colours:     []string{"Deep Wine", "Black"},
		Fabrics:     []string{"Satin", "Velvet"},
		Silhouettes: []string{"Pre-Draped", "Slim Fit"},
	},
}

// Brief caps per the trend brief contract.
const (
	maxTrendColours     = 5
	maxTrendFabrics     = 4
	maxTrendSilhouettes = 3
)

func dedupeCapped(primary, secondary []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]bool, limit)
	for _, list := range [][]string{primary, secondary} {
		for _, v := range list {
			key := strings.ToLower(v)
			if seen[key] || len(out) >= limit {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// BriefFor assembles the curated trend brief for an occasion and season:
// occasion overlay items lead, the seasonal base fills the remainder,
// duplicates collapse and hard caps apply.
func BriefFor(occasion, season string) models.TrendBrief {
	base, ok := seasonalTrends[normaliseKey(season)]
	if !ok {
		base = seasonalTrends["autumn"]
	}
	overlay := occasionOverlays[normaliseKey(occasion)]

	return models.TrendBrief{
		TrendingColours: dedupeCapped(overlay.Colours, base.Colours, maxTrendColours),
		KeyFabrics:      dedupeCapped(overlay.Fabrics, base.Fabrics, maxTrendFabrics),
		Silhouettes:     dedupeCapped(overlay.Silhouettes, base.Silhouettes, maxTrendSilhouettes),
		Season:          normaliseKey(season),
		Year:            2026,
		SourceSummary:   base.Summary,
	}
}
