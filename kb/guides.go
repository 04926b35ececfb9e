package kb

import "strings"

// ClimateNote captures how a city's climate bends fabric choices.
type ClimateNote struct {
	Note        string
	LocalCraft  string
	PreferLight bool
}

var regionalClimate = map[string]ClimateNote{
	"mumbai":     {Note: "Humid year-round, breathable fabrics essential", LocalCraft: "Paithani borders", PreferLight: true},
	"delhi":      {Note: "Hot summers, cold winters: layer-friendly", LocalCraft: "Chikankari, zardozi"},
	"bangalore":  {Note: "Mild year-round, light layers work always", LocalCraft: "Mysore silk", PreferLight: true},
	"chennai":    {Note: "Hot and humid, cotton and light silk preferred", LocalCraft: "Kanjeevaram silk", PreferLight: true},
	"kolkata":    {Note: "Humid summers, pleasant winters", LocalCraft: "Tant, Baluchari", PreferLight: true},
	"hyderabad":  {Note: "Hot, dry summers: light fabrics by day", LocalCraft: "Pochampally ikat", PreferLight: true},
	"jaipur":     {Note: "Desert climate, hot days and cool nights", LocalCraft: "Bandhani, leheriya, gota patti"},
	"ahmedabad":  {Note: "Hot and dry, light cotton preferred", LocalCraft: "Bandhani, patola", PreferLight: true},
	"pune":       {Note: "Moderate climate, most fabrics work", LocalCraft: "Paithani silk"},
	"lucknow":    {Note: "Hot summers, chilly winters", LocalCraft: "Chikankari embroidery"},
	"kochi":      {Note: "Tropical humid, only breathable fabrics", LocalCraft: "Kasavu borders", PreferLight: true},
	"chandigarh": {Note: "Continental: hot summers, cold winters", LocalCraft: "Phulkari embroidery"},
	"goa":        {Note: "Coastal tropical, resort-light everything", LocalCraft: "Kunbi weaves", PreferLight: true},
}

// ClimateFor returns the climate note for a city, if known.
func ClimateFor(region string) (ClimateNote, bool) {
	note, ok := regionalClimate[normaliseKey(region)]
	return note, ok
}

// SkinToneNote maps an undertone to colour temperature guidance.
type SkinToneNote struct {
	BestColours []string
	Metal       string
	Note        string
}

var skinToneGuide = map[string]SkinToneNote{
	"warm": {
		BestColours: []string{"Mustard Yellow", "Terracotta", "Coral", "Emerald Green", "Gold"},
		Metal:       "Gold",
		Note:        "Earthy and golden tones glow against warm undertones",
	},
	"cool": {
		BestColours: []string{"Cobalt Blue", "Emerald Green", "Royal Purple", "Magenta", "Silver"},
		Metal:       "Silver",
		Note:        "Jewel tones and icy shades flatter cool undertones",
	},
	"neutral": {
		BestColours: []string{"Teal", "Deep Wine", "Dusty Rose", "Navy Blue", "Ivory"},
		Metal:       "Rose Gold",
		Note:        "Most palettes work: muted jewel tones are the safest bet",
	},
}

// SkinToneFor returns undertone guidance, defaulting to neutral.
func SkinToneFor(undertone string) SkinToneNote {
	if note, ok := skinToneGuide[strings.ToLower(strings.TrimSpace(undertone))]; ok {
		return note
	}
	return skinToneGuide["neutral"]
}

// Archetype is one of the style personas persona aggregation can land on.
type Archetype struct {
	Name             string
	Keywords         []string
	Description      string
	AccentSuggestion string
}

var archetypes = []Archetype{
	{
		Name:             "Regal Traditionalist",
		Keywords:         []string{"silk", "kanjeevaram", "banarasi", "zari", "temple", "kundan"},
		Description:      "Gravitates to heritage weaves, rich jewel tones and classic drapes",
		AccentSuggestion: "A temple jewellery piece or zari-border dupatta",
	},
	{
		Name:             "Modern Minimalist",
		Keywords:         []string{"structured", "slim", "monochrome", "linen", "neutral", "clean"},
		Description:      "Prefers clean lines, muted palettes and architectural silhouettes",
		AccentSuggestion: "A single sculptural metal cuff",
	},
	{
		Name:             "Boho Free Spirit",
		Keywords:         []string{"flowy", "print", "oxidized", "mirror", "kaftan", "layered"},
		Description:      "Layers prints, textures and artisanal silver with ease",
		AccentSuggestion: "Stacked oxidized bangles or a mirror-work potli",
	},
	{
		Name:             "Glam Maximalist",
		Keywords:         []string{"sequin", "velvet", "statement", "bold", "metallic", "shimmer"},
		Description:      "Dresses for the spotlight: shine, saturation and statement pieces",
		AccentSuggestion: "Chandelier earrings or a metallic clutch",
	},
	{
		Name:             "Minimalist Professional",
		Keywords:         []string{"formal", "blazer", "cotton", "classic", "tailored", "office"},
		Description:      "Polished workwear staples with quiet, dependable colour",
		AccentSuggestion: "A structured watch and slim leather belt",
	},
}

// ArchetypeFor scores the archetype keyword tables against a user's
// observed fabric and silhouette vocabulary and returns the best match.
// Ties and empty input fall back to Minimalist Professional.
func ArchetypeFor(terms []string) Archetype {
	joined := strings.ToLower(strings.Join(terms, " "))
	best := archetypes[len(archetypes)-1]
	bestScore := 0
	for _, a := range archetypes {
		score := 0
		for _, kw := range a.Keywords {
			if strings.Contains(joined, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = a, score
		}
	}
	return best
}

// ArchetypeByName looks up an archetype by display name.
func ArchetypeByName(name string) (Archetype, bool) {
	for _, a := range archetypes {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Archetype{}, false
}
