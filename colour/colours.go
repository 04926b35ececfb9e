package colour

import "strings"

// Spec is a named fashion colour: canonical hex representation plus the
// family / warmth / season tags the matcher and scorer filter on.
type Spec struct {
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Family string `json:"family"` // jewel / pastel / bold / warm / neutral / metallic / earth
	Warmth string `json:"warmth"` // warm / cool / neutral
	Season string `json:"season"` // winter / summer / all
}

// Moods exposed to the UI layer. Every colour family maps onto one.
const (
	MoodVibrant = "Vibrant"
	MoodPastel  = "Pastel"
	MoodEarthy  = "Earthy"
	MoodNeutral = "Neutral"
	MoodAny     = "Any"
)

// vocabulary is the fixed colour database. Process-wide immutable
// static data: initialised once, never mutated at runtime.
var vocabulary = map[string]Spec{
	// Jewel tones
	"Emerald Green": {Name: "Emerald Green", Hex: "#046307", Family: "jewel", Warmth: "cool", Season: "winter"},
	"Maroon":        {Name: "Maroon", Hex: "#800000", Family: "jewel", Warmth: "warm", Season: "winter"},
	"Royal Blue":    {Name: "Royal Blue", Hex: "#002366", Family: "jewel", Warmth: "cool", Season: "winter"},
	"Deep Wine":     {Name: "Deep Wine", Hex: "#722F37", Family: "jewel", Warmth: "warm", Season: "winter"},
	"Royal Purple":  {Name: "Royal Purple", Hex: "#6A0DAD", Family: "jewel", Warmth: "cool", Season: "winter"},
	"Bottle Green":  {Name: "Bottle Green", Hex: "#006A4E", Family: "jewel", Warmth: "cool", Season: "winter"},
	"Ruby Red":      {Name: "Ruby Red", Hex: "#9B111E", Family: "jewel", Warmth: "warm", Season: "winter"},

	// Pastels
	"Pastel Pink": {Name: "Pastel Pink", Hex: "#FFD1DC", Family: "pastel", Warmth: "warm", Season: "summer"},
	"Lavender":    {Name: "Lavender", Hex: "#B57EDC", Family: "pastel", Warmth: "cool", Season: "summer"},
	"Mint":        {Name: "Mint", Hex: "#98FF98", Family: "pastel", Warmth: "cool", Season: "summer"},
	"Peach":       {Name: "Peach", Hex: "#FFDAB9", Family: "pastel", Warmth: "warm", Season: "summer"},
	"Coral":       {Name: "Coral", Hex: "#FF7F50", Family: "pastel", Warmth: "warm", Season: "summer"},

	// Bold / trending
	"Cobalt Blue":     {Name: "Cobalt Blue", Hex: "#0047AB", Family: "bold", Warmth: "cool", Season: "all"},
	"Electric Indigo": {Name: "Electric Indigo", Hex: "#6F00FF", Family: "bold", Warmth: "cool", Season: "all"},
	"Teal":            {Name: "Teal", Hex: "#008080", Family: "bold", Warmth: "cool", Season: "all"},
	"Mustard Yellow":  {Name: "Mustard Yellow", Hex: "#E1A95F", Family: "warm", Warmth: "warm", Season: "all"},
	"Red":             {Name: "Red", Hex: "#D2042D", Family: "bold", Warmth: "warm", Season: "all"},
	"Magenta":         {Name: "Magenta", Hex: "#FF00FF", Family: "bold", Warmth: "warm", Season: "all"},
	"Indigo":          {Name: "Indigo", Hex: "#3F00FF", Family: "bold", Warmth: "cool", Season: "all"},

	// Neutrals
	"Black":        {Name: "Black", Hex: "#000000", Family: "neutral", Warmth: "neutral", Season: "all"},
	"White":        {Name: "White", Hex: "#FFFFFF", Family: "neutral", Warmth: "neutral", Season: "all"},
	"Ivory":        {Name: "Ivory", Hex: "#FFFFF0", Family: "neutral", Warmth: "warm", Season: "all"},
	"Beige":        {Name: "Beige", Hex: "#F5F5DC", Family: "neutral", Warmth: "warm", Season: "all"},
	"Neutral Grey": {Name: "Neutral Grey", Hex: "#808080", Family: "neutral", Warmth: "neutral", Season: "all"},
	"Charcoal":     {Name: "Charcoal", Hex: "#36454F", Family: "neutral", Warmth: "cool", Season: "all"},
	"Navy Blue":    {Name: "Navy Blue", Hex: "#000080", Family: "neutral", Warmth: "cool", Season: "all"},
	"Nude":         {Name: "Nude", Hex: "#E8CCBF", Family: "neutral", Warmth: "warm", Season: "all"},

	// Metallics
	"Gold":      {Name: "Gold", Hex: "#D4AF37", Family: "metallic", Warmth: "warm", Season: "all"},
	"Rose Gold": {Name: "Rose Gold", Hex: "#B76E79", Family: "metallic", Warmth: "warm", Season: "all"},
	"Silver":    {Name: "Silver", Hex: "#C0C0C0", Family: "metallic", Warmth: "cool", Season: "all"},

	// Earth
	"Olive Green": {Name: "Olive Green", Hex: "#556B2F", Family: "earth", Warmth: "warm", Season: "all"},
	"Tan":         {Name: "Tan", Hex: "#D2B48C", Family: "earth", Warmth: "warm", Season: "all"},
	"Brown":       {Name: "Brown", Hex: "#8B4513", Family: "earth", Warmth: "warm", Season: "all"},
	"Terracotta":  {Name: "Terracotta", Hex: "#C67C5A", Family: "earth", Warmth: "warm", Season: "all"},
}

// hexToName is the reverse lookup, built once from the vocabulary plus a
// few fashion names for computed shades that fall outside it.
var hexToName = func() map[string]string {
	m := make(map[string]string, len(vocabulary)+8)
	for name, spec := range vocabulary {
		m[spec.Hex] = name
	}
	for hex, name := range map[string]string{
		"#B2AC88": "Sage Green",
		"#800020": "Burgundy",
		"#FF6B6B": "Watermelon",
		"#FFCBA4": "Soft Peach",
		"#B7410E": "Rust",
		"#FFB6C1": "Blush Pink",
		"#C19A6B": "Camel",
	} {
		m[hex] = name
	}
	return m
}()

// ByName looks up a colour spec by its fashion name.
func ByName(name string) (Spec, bool) {
	spec, ok := vocabulary[name]
	return spec, ok
}

// HexFor returns the hex code for a colour name, falling back to
// Neutral Grey for names outside the vocabulary.
func HexFor(name string) string {
	if spec, ok := vocabulary[name]; ok {
		return spec.Hex
	}
	return "#808080"
}

// NameFor guesses a fashion name for a hex code. Computed harmony shades
// rarely land exactly on a named colour, so unknown codes are returned
// verbatim rather than forced onto the nearest name.
func NameFor(hex string) string {
	canonical, err := NormalizeHex(hex)
	if err != nil {
		return hex
	}
	if name, ok := hexToName[canonical]; ok {
		return name
	}
	return canonical
}

// FamilyOf returns the family tag of a named colour ("" when unknown).
func FamilyOf(name string) string {
	if spec, ok := vocabulary[name]; ok {
		return spec.Family
	}
	return ""
}

// IsNeutral reports whether a named colour carries the neutral family tag.
func IsNeutral(name string) bool {
	return FamilyOf(name) == "neutral"
}

// MoodOf classifies a named colour into one of the four UI moods.
func MoodOf(name string) string {
	switch FamilyOf(name) {
	case "pastel":
		return MoodPastel
	case "earth", "warm":
		return MoodEarthy
	case "jewel", "bold":
		return MoodVibrant
	default:
		return MoodNeutral
	}
}

// SpecFromHex builds a Spec for an arbitrary hex code, resolving the name
// and family from the vocabulary when the code is a known colour.
func SpecFromHex(hex string) (Spec, error) {
	canonical, err := NormalizeHex(hex)
	if err != nil {
		return Spec{}, err
	}
	name := NameFor(canonical)
	if spec, ok := vocabulary[name]; ok {
		return spec, nil
	}
	return Spec{Name: name, Hex: canonical, Family: familyFromHSL(canonical), Warmth: warmthFromHSL(canonical), Season: "all"}, nil
}

// familyFromHSL derives a family tag for a computed shade that has no
// vocabulary entry.
func familyFromHSL(hex string) string {
	_, s, l, err := HexToHSL(hex)
	if err != nil {
		return "neutral"
	}
	switch {
	case s < 0.12:
		return "neutral"
	case l > 0.78:
		return "pastel"
	case l < 0.30:
		return "jewel"
	default:
		return "bold"
	}
}

func warmthFromHSL(hex string) string {
	h, s, _, err := HexToHSL(hex)
	if err != nil || s < 0.12 {
		return "neutral"
	}
	// Reds through yellows (and magenta wrap) read warm; the rest cool.
	if h < 90 || h >= 330 {
		return "warm"
	}
	return "cool"
}

// Lookup resolves a loose colour word ("emerald", "navy") to a canonical
// vocabulary name, or "" when no mapping exists.
func Lookup(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if name, ok := looseNames[w]; ok {
		return name
	}
	return ""
}

// looseNames maps everyday colour words onto the vocabulary. Fixed data;
// feedback phrases naming anything else fall back to a full rebuild.
var looseNames = map[string]string{
	"red":      "Red",
	"blue":     "Cobalt Blue",
	"green":    "Emerald Green",
	"yellow":   "Mustard Yellow",
	"black":    "Black",
	"white":    "White",
	"gold":     "Gold",
	"silver":   "Silver",
	"maroon":   "Maroon",
	"navy":     "Navy Blue",
	"teal":     "Teal",
	"coral":    "Coral",
	"peach":    "Peach",
	"lavender": "Lavender",
	"mint":     "Mint",
	"pink":     "Pastel Pink",
	"purple":   "Royal Purple",
	"orange":   "Coral",
	"ivory":    "Ivory",
	"beige":    "Beige",
	"cobalt":   "Cobalt Blue",
	"emerald":  "Emerald Green",
	"wine":     "Deep Wine",
	"grey":     "Neutral Grey",
	"brown":    "Brown",
	"olive":    "Olive Green",
}
