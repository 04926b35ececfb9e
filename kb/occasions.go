// Package kb holds the styling knowledge base: occasion rules, regional
// climate notes, skin-tone guidance, style archetypes and the curated
// seasonal trend tables. All of it is process-wide immutable static data
// keyed by tags: new occasions or archetypes are additive rows, not new
// control flow.
package kb

import "strings"

// SubOccasion carries fabric/vibe overrides for a named sub-event
// (e.g. "day_phera" under "wedding").
type SubOccasion struct {
	Note          string
	FabricsWomen  []string
	FabricsMen    []string
	VibeOverride  string
}

// OccasionRule is one row of the occasion rule table.
type OccasionRule struct {
	Key             string
	DisplayName     string
	Description     string
	Colours         []string
	AvoidColours    []string
	FabricsWomen    []string
	FabricsMen      []string
	SilhouettesW    []string
	SilhouettesM    []string
	JewelleryWomen  string
	JewelleryMen    string
	FootwearWomen   string
	FootwearMen     string
	Weight          string // light / medium / heavy
	Formality       string
	Vibe            string
	SubOccasions    map[string]SubOccasion
}

var occasionRules = map[string]OccasionRule{
	"haldi": {
		Key: "haldi", DisplayName: "Haldi Ceremony",
		Description:    "Light, vibrant, easy to move in: expect turmeric stains.",
		Colours:        []string{"Mustard Yellow", "Coral", "Mint", "White", "Peach"},
		AvoidColours:   []string{"Black", "Maroon", "Navy Blue"},
		FabricsWomen:   []string{"Chiffon", "Georgette", "Cotton", "Linen"},
		FabricsMen:     []string{"Cotton", "Linen", "Rayon"},
		SilhouettesW:   []string{"A-Line", "Anarkali", "Short"},
		SilhouettesM:   []string{"Straight", "Short", "Relaxed"},
		JewelleryWomen: "Floral jewellery, minimal gold, bangles",
		JewelleryMen:   "None or simple thread bracelet",
		FootwearWomen:  "Kolhapuris, flat sandals",
		FootwearMen:    "Kolhapuris, leather sandals",
		Weight:         "light", Formality: "casual", Vibe: "playful",
	},
	"mehendi": {
		Key: "mehendi", DisplayName: "Mehendi Ceremony",
		Description:    "Vibrant and festive: floral prints welcomed.",
		Colours:        []string{"Emerald Green", "Coral", "Peach", "Mustard Yellow", "Lavender"},
		AvoidColours:   []string{"Black"},
		FabricsWomen:   []string{"Georgette", "Chiffon", "Cotton Silk"},
		FabricsMen:     []string{"Cotton", "Linen", "Cotton Silk"},
		SilhouettesW:   []string{"A-Line", "Anarkali", "Flared", "Crop"},
		SilhouettesM:   []string{"Straight", "Short", "Relaxed"},
		JewelleryWomen: "Floral jewellery, statement jhumkas, bangle stacks",
		JewelleryMen:   "Simple bracelet or thread",
		FootwearWomen:  "Embroidered juttis, kolhapuris",
		FootwearMen:    "Juttis, kolhapuris",
		Weight:         "light", Formality: "festive_casual", Vibe: "vibrant",
	},
	"sangeet": {
		Key: "sangeet", DisplayName: "Sangeet / Cocktail Night",
		Description:    "Glamorous, high-shine: sequins and mirror work encouraged.",
		Colours:        []string{"Cobalt Blue", "Electric Indigo", "Gold", "Emerald Green", "Deep Wine", "Black"},
		FabricsWomen:   []string{"Sequin Georgette", "Velvet", "Raw Silk", "Organza"},
		FabricsMen:     []string{"Silk", "Velvet", "Raw Silk"},
		SilhouettesW:   []string{"Pre-Draped", "Flared", "A-Line", "Crop"},
		SilhouettesM:   []string{"Structured", "Slim Fit"},
		JewelleryWomen: "Statement pieces: chandelier earrings, cocktail rings",
		JewelleryMen:   "Brooch, cufflinks, premium watch",
		FootwearWomen:  "Stiletto sandals, embroidered wedge heels",
		FootwearMen:    "Mojris with mirror work, suede loafers",
		Weight:         "medium", Formality: "glamorous", Vibe: "party",
	},
	"wedding": {
		Key: "wedding", DisplayName: "Wedding Ceremony (Phera/Nikah)",
		Description:    "Traditional, heavy: rich jewel tones and artisanal craftsmanship.",
		Colours:        []string{"Maroon", "Emerald Green", "Royal Blue", "Gold", "Deep Wine", "Royal Purple", "Red"},
		AvoidColours:   []string{"White", "Black"},
		FabricsWomen:   []string{"Kanjeevaram Silk", "Banarasi Silk", "Paithani Silk", "Velvet"},
		FabricsMen:     []string{"Raw Silk", "Velvet", "Silk"},
		SilhouettesW:   []string{"Draped", "Flared", "A-Line"},
		SilhouettesM:   []string{"Structured"},
		JewelleryWomen: "Full bridal set: Kundan/Polki/Temple, maang tikka, bangles",
		JewelleryMen:   "Brooch, safa, sarpech, jewelled buttons",
		FootwearWomen:  "Embroidered wedge heels, embellished sandals",
		FootwearMen:    "Embroidered mojris, gold juttis",
		Weight:         "heavy", Formality: "traditional_formal", Vibe: "regal",
		SubOccasions: map[string]SubOccasion{
			"day_phera": {
				Note:         "Morning ceremony: slightly lighter fabrics acceptable",
				FabricsWomen: []string{"Kanjeevaram Silk", "Chanderi Silk", "Tussar Silk"},
				FabricsMen:   []string{"Silk", "Cotton Silk"},
			},
			"evening_reception": {
				Note:         "Evening grandeur: heavy silks and velvet shine here",
				FabricsWomen: []string{"Kanjeevaram Silk", "Banarasi Silk", "Velvet", "Raw Silk"},
				FabricsMen:   []string{"Velvet", "Raw Silk", "Silk"},
			},
		},
	},
	"reception": {
		Key: "reception", DisplayName: "Wedding Reception",
		Description:    "Glamorous yet elegant: indo-western fusion works beautifully.",
		Colours:        []string{"Navy Blue", "Cobalt Blue", "Gold", "Black", "Emerald Green", "Deep Wine", "Pastel Pink"},
		FabricsWomen:   []string{"Silk", "Velvet", "Organza", "Sequin Georgette"},
		FabricsMen:     []string{"Wool Blend", "Silk", "Velvet"},
		SilhouettesW:   []string{"Pre-Draped", "Draped", "Flared", "Structured"},
		SilhouettesM:   []string{"Structured", "Slim Fit"},
		JewelleryWomen: "Statement necklace with matching earrings, cocktail ring",
		JewelleryMen:   "Premium watch, cufflinks, pocket square",
		FootwearWomen:  "Stiletto sandals, embroidered heels",
		FootwearMen:    "Leather loafers, suede shoes",
		Weight:         "medium", Formality: "semi_formal", Vibe: "elegant",
	},
	"diwali": {
		Key: "diwali", DisplayName: "Diwali",
		Description:    "Festival of Lights: rich traditional with a modern touch.",
		Colours:        []string{"Gold", "Maroon", "Emerald Green", "Royal Blue", "Deep Wine", "Cobalt Blue"},
		FabricsWomen:   []string{"Silk", "Velvet", "Georgette", "Chikankari Cotton"},
		FabricsMen:     []string{"Silk", "Jacquard", "Cotton", "Velvet"},
		SilhouettesW:   []string{"Straight", "A-Line", "Draped"},
		SilhouettesM:   []string{"Straight", "Structured"},
		JewelleryWomen: "Kundan set for evening, jhumkas for morning",
		JewelleryMen:   "Brooch on nehru jacket, or premium watch",
		FootwearWomen:  "Kolhapuris for morning, juttis or heels for evening",
		FootwearMen:    "Mojris for ethnic, loafers for smart casual",
		Weight:         "medium", Formality: "festive", Vibe: "celebratory",
		SubOccasions: map[string]SubOccasion{
			"morning_puja": {
				Note:         "Ethnic minimalism: light fabrics, understated elegance",
				FabricsWomen: []string{"Chikankari Cotton", "Linen", "Chanderi Silk"},
				FabricsMen:   []string{"Cotton", "Linen", "Khadi"},
				VibeOverride: "serene",
			},
			"evening_celebration": {
				Note:         "Regal traditional: silk and velvet for the main celebration",
				FabricsWomen: []string{"Silk", "Velvet", "Banarasi Silk"},
				FabricsMen:   []string{"Silk", "Velvet", "Jacquard"},
				VibeOverride: "festive_grand",
			},
		},
	},
	"eid": {
		Key: "eid", DisplayName: "Eid",
		Description:    "Elegant and refined: pastels for day, rich tones for evening.",
		Colours:        []string{"White", "Ivory", "Mint", "Pastel Pink", "Lavender", "Emerald Green", "Gold"},
		FabricsWomen:   []string{"Georgette", "Silk", "Chiffon", "Cotton"},
		FabricsMen:     []string{"Cotton", "Silk", "Linen"},
		SilhouettesW:   []string{"Anarkali", "Straight", "A-Line"},
		SilhouettesM:   []string{"Straight"},
		JewelleryWomen: "Pearl sets, rose gold minimal, crescent motifs",
		JewelleryMen:   "Simple ring or bracelet",
		FootwearWomen:  "Embroidered juttis, block heels",
		FootwearMen:    "Leather sandals, juttis",
		Weight:         "light", Formality: "festive", Vibe: "serene_elegant",
	},
	"navratri": {
		Key: "navratri", DisplayName: "Navratri / Garba",
		Description:    "Colour-coded by day: vibrant, high-energy, mirror work.",
		Colours:        []string{"Red", "Royal Blue", "Mustard Yellow", "Emerald Green", "Coral"},
		FabricsWomen:   []string{"Cotton", "Georgette", "Chiffon"},
		FabricsMen:     []string{"Cotton", "Silk"},
		SilhouettesW:   []string{"Flared", "A-Line", "Anarkali"},
		SilhouettesM:   []string{"Straight", "Short"},
		JewelleryWomen: "Oxidized silver, mirror work jewellery, heavy jhumkas",
		JewelleryMen:   "Bracelet",
		FootwearWomen:  "Kolhapuris, flat juttis: comfort for garba",
		FootwearMen:    "Mojris, sport shoes for garba",
		Weight:         "light", Formality: "festive_casual", Vibe: "energetic",
	},
	"ganesh_chaturthi": {
		Key: "ganesh_chaturthi", DisplayName: "Ganesh Chaturthi",
		Description:    "Traditional Maharashtrian influence: nauvari, cotton elegance.",
		Colours:        []string{"Red", "Gold", "Mustard Yellow", "Coral", "Emerald Green"},
		FabricsWomen:   []string{"Cotton", "Silk", "Paithani Silk"},
		FabricsMen:     []string{"Cotton", "Silk"},
		SilhouettesW:   []string{"Draped", "Straight", "A-Line"},
		SilhouettesM:   []string{"Straight"},
		JewelleryWomen: "Green glass bangles, nath, mogra gajra",
		JewelleryMen:   "Simple kurta: no heavy jewellery",
		FootwearWomen:  "Kolhapuris",
		FootwearMen:    "Kolhapuris",
		Weight:         "medium", Formality: "traditional", Vibe: "devotional_festive",
	},
	"corporate": {
		Key: "corporate", DisplayName: "Corporate / Formal Lunch",
		Description:    "Smart ethnic or global Indian: structured silhouettes, minimal accessories.",
		Colours:        []string{"Navy Blue", "Black", "Neutral Grey", "Ivory", "Beige", "Charcoal"},
		AvoidColours:   []string{"Red", "Gold", "Magenta"},
		FabricsWomen:   []string{"Silk", "Wool Blend", "Cotton Blend", "Linen"},
		FabricsMen:     []string{"Wool Blend", "Cotton", "Linen"},
		SilhouettesW:   []string{"Straight", "Structured", "Slim Fit"},
		SilhouettesM:   []string{"Structured", "Slim Fit", "Classic"},
		JewelleryWomen: "Minimal: rose gold studs, thin bracelet, structured watch",
		JewelleryMen:   "Premium watch, cufflinks, tie pin",
		FootwearWomen:  "Block heels, structured pumps",
		FootwearMen:    "Leather loafers, oxfords",
		Weight:         "light", Formality: "formal", Vibe: "polished",
	},
	"date_night": {
		Key: "date_night", DisplayName: "Date Night / Fine Dining",
		Description:    "Chic and sophisticated: pre-draped sarees, tailored blazers.",
		Colours:        []string{"Black", "Deep Wine", "Cobalt Blue", "Navy Blue", "Charcoal", "Emerald Green"},
		FabricsWomen:   []string{"Sequin Georgette", "Silk", "Velvet", "Satin"},
		FabricsMen:     []string{"Wool Blend", "Silk", "Cotton"},
		SilhouettesW:   []string{"Pre-Draped", "Structured", "Slim Fit", "Straight"},
		SilhouettesM:   []string{"Slim Fit", "Mandarin", "Classic"},
		JewelleryWomen: "Sculptural silver, baroque pearls, thin gold chains",
		JewelleryMen:   "Premium watch, silk pocket square",
		FootwearWomen:  "Stiletto sandals, nude pumps",
		FootwearMen:    "Suede loafers, leather derbies",
		Weight:         "medium", Formality: "semi_formal", Vibe: "intimate",
	},
	"vacation": {
		Key: "vacation", DisplayName: "Vacation / Resort",
		Description:    "Breezy and effortless: linens, block prints, resort silhouettes.",
		Colours:        []string{"White", "Teal", "Peach", "Mint", "Indigo", "Coral"},
		AvoidColours:   []string{"Black", "Maroon"},
		FabricsWomen:   []string{"Linen", "Cotton", "Rayon"},
		FabricsMen:     []string{"Linen", "Rayon", "Cotton"},
		SilhouettesW:   []string{"Relaxed", "A-Line", "Draped"},
		SilhouettesM:   []string{"Relaxed"},
		JewelleryWomen: "Shell jewellery, beaded bracelets, silver anklets",
		JewelleryMen:   "Leather bracelet, casual watch",
		FootwearWomen:  "Flat sandals, espadrilles",
		FootwearMen:    "Espadrilles, leather sandals",
		Weight:         "light", Formality: "casual", Vibe: "relaxed",
		SubOccasions: map[string]SubOccasion{
			"beach": {
				Note:         "Light, airy, tropical prints",
				FabricsWomen: []string{"Linen", "Cotton", "Rayon"},
				FabricsMen:   []string{"Linen", "Rayon", "Cotton"},
			},
			"mountain": {
				Note:         "Layerable, warm-toned",
				FabricsWomen: []string{"Pashmina", "Wool Blend", "Khadi"},
				FabricsMen:   []string{"Pashmina", "Wool Blend", "Khadi"},
			},
		},
	},
	"brunch": {
		Key: "brunch", DisplayName: "Brunch / Casual Meet",
		Description:    "Easy, modern Indian: kaftan dresses, linen sets.",
		Colours:        []string{"White", "Peach", "Lavender", "Mint", "Teal", "Coral"},
		FabricsWomen:   []string{"Cotton", "Linen", "Rayon"},
		FabricsMen:     []string{"Cotton", "Linen"},
		SilhouettesW:   []string{"Relaxed", "A-Line", "Straight"},
		SilhouettesM:   []string{"Relaxed", "Straight"},
		JewelleryWomen: "Minimal: stud earrings, thin bracelet",
		JewelleryMen:   "Casual watch",
		FootwearWomen:  "Flat sandals, slip-ons",
		FootwearMen:    "Loafers, white sneakers",
		Weight:         "light", Formality: "casual", Vibe: "laid_back",
	},
}

// occasionStrategies is the occasion → default palette strategy table.
var occasionStrategies = map[string]string{
	"wedding":    "analogous",
	"reception":  "complementary",
	"sangeet":    "complementary",
	"haldi":      "monochromatic",
	"mehendi":    "analogous",
	"diwali":     "complementary",
	"eid":        "analogous",
	"navratri":   "complementary",
	"corporate":  "monochromatic",
	"date_night": "complementary",
	"vacation":   "analogous",
	"brunch":     "monochromatic",
}

func normaliseKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// RuleFor returns the occasion rule for a key, falling back to a partial
// match and finally to date_night as the safe default.
func RuleFor(occasion string) OccasionRule {
	key := normaliseKey(occasion)
	if rule, ok := occasionRules[key]; ok {
		return rule
	}
	for k, rule := range occasionRules {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return rule
		}
	}
	return occasionRules["date_night"]
}

// Guidance is a merged view of an occasion rule after sub-occasion,
// region and gender resolution.
type Guidance struct {
	OccasionRule
	Fabrics      []string // gender-resolved
	Silhouettes  []string
	RegionalNote string
	LocalCraft   string
	WeightNote   string
}

// GuidanceFor merges the occasion rule with sub-occasion overrides,
// regional climate notes and gender-specific fabric/silhouette lists.
func GuidanceFor(occasion, subOccasion, region, gender string) Guidance {
	rule := RuleFor(occasion)
	g := Guidance{OccasionRule: rule}

	if subOccasion != "" && rule.SubOccasions != nil {
		if sub, ok := rule.SubOccasions[normaliseKey(subOccasion)]; ok {
			if len(sub.FabricsWomen) > 0 {
				g.FabricsWomen = sub.FabricsWomen
			}
			if len(sub.FabricsMen) > 0 {
				g.FabricsMen = sub.FabricsMen
			}
			if sub.VibeOverride != "" {
				g.Vibe = sub.VibeOverride
			}
		}
	}
	if g.FabricsWomen == nil {
		g.FabricsWomen = rule.FabricsWomen
	}
	if g.FabricsMen == nil {
		g.FabricsMen = rule.FabricsMen
	}

	if region != "" {
		if climate, ok := ClimateFor(region); ok {
			g.RegionalNote = climate.Note
			g.LocalCraft = climate.LocalCraft
			if climate.PreferLight && rule.Weight == "heavy" {
				g.WeightNote = "Consider lighter variants for " + region + " climate"
			}
		}
	}

	switch strings.ToLower(gender) {
	case "male":
		g.Fabrics = g.FabricsMen
		g.Silhouettes = rule.SilhouettesM
	case "female":
		g.Fabrics = g.FabricsWomen
		g.Silhouettes = rule.SilhouettesW
	default:
		g.Fabrics = g.FabricsWomen
		g.Silhouettes = rule.SilhouettesW
	}
	return g
}

// PaletteStrategyFor picks the palette strategy for an occasion, with
// mood overrides: an energetic/party vibe forces complementary, a
// serene/polished one forces monochromatic.
func PaletteStrategyFor(occasion, vibe string) string {
	strategy, ok := occasionStrategies[normaliseKey(occasion)]
	if !ok {
		strategy = "complementary"
	}
	switch strings.ToLower(vibe) {
	case "party", "glamorous", "energetic":
		strategy = "complementary"
	case "serene", "polished", "laid_back":
		strategy = "monochromatic"
	}
	return strategy
}

// Occasions lists the known occasion keys.
func Occasions() []string {
	out := make([]string, 0, len(occasionRules))
	for k := range occasionRules {
		out = append(out, k)
	}
	return out
}
