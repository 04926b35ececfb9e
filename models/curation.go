package models

import (
	"time"

	"style-atelier/colour"
)

// Palette strategies.
const (
	StrategyComplementary = "complementary"
	StrategyAnalogous     = "analogous"
	StrategyMonochromatic = "monochromatic"
)

// Palette is the bounded colour set governing a curated bundle: one
// primary plus at most two secondary/accent colours, never more than
// three non-neutrals in total.
type Palette struct {
	Strategy   string        `json:"strategy"`
	Primary    colour.Spec   `json:"primary"`
	Secondary  []colour.Spec `json:"secondary"`
	Overlap    []string      `json:"overlap"` // trend ∩ user history
	Accents    []string      `json:"accents"` // trend − user history (bridge candidates)
	Dropped    []string      `json:"dropped,omitempty"`
	DropReason string        `json:"dropReason,omitempty"`
}

// Families returns the vocabulary names of every palette colour, primary
// first. Computed shades with no vocabulary name appear as their hex code.
func (p *Palette) Families() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, 1+len(p.Secondary))
	out = append(out, p.Primary.Name)
	for _, s := range p.Secondary {
		out = append(out, s.Name)
	}
	return out
}

// BridgeSuggestion recommends introducing a trending colour the user has
// not historically worn via a small, low-commitment accent. Advisory
// metadata, never a matching constraint.
type BridgeSuggestion struct {
	BaseColour   string `json:"baseColour"`
	BaseHex      string `json:"baseHex"`
	AccentColour string `json:"accentColour"`
	AccentHex    string `json:"accentHex"`
	Suggestion   string `json:"suggestion"`
}

// Slot roles in fill-priority order.
const (
	RoleMainGarment   = "The Base - Main Piece"
	RoleComplementary = "The Base - Complementary Piece"
	RoleLayer         = "The Layer"
	RoleJewellery     = "The Accents - Jewellery"
	RoleFootwear      = "The Finishing Touches - Footwear"
	RoleAccessory     = "The Accents - Accessory"
)

// Slot fill statuses.
const (
	SlotPending     = "pending"
	SlotFilled      = "filled"
	SlotUnfilled    = "unfilled"
	SlotUnavailable = "unavailable" // mandatory slot with nothing in stock
)

// SelectionSlot is one required position in the bundle. Item stays nil
// until matching completes (or the slot resolves unfilled).
type SelectionSlot struct {
	Role        string       `json:"role"`
	Categories  []string     `json:"categories"`
	Mandatory   bool         `json:"mandatory"`
	Item        *CatalogItem `json:"item,omitempty"`
	MatchTier   int          `json:"matchTier,omitempty"` // 1-4, 0 when unfilled
	VibeMatched bool         `json:"vibeMatched"`
	Status      string       `json:"status"`
}

// DefaultSlots returns the standard bundle layout in fill-priority order:
// the most important pieces fill first so they win when budget is scarce.
// Only the main garment is mandatory.
func DefaultSlots() []SelectionSlot {
	return []SelectionSlot{
		{Role: RoleMainGarment, Categories: []string{"Top", "Full", "Bottom"}, Mandatory: true, Status: SlotPending},
		{Role: RoleComplementary, Categories: nil, Status: SlotPending}, // resolved against the main piece
		{Role: RoleLayer, Categories: []string{"Layer"}, Status: SlotPending},
		{Role: RoleJewellery, Categories: []string{"Jewelry"}, Status: SlotPending},
		{Role: RoleFootwear, Categories: []string{"Footwear"}, Status: SlotPending},
		{Role: RoleAccessory, Categories: []string{"Accessory"}, Status: SlotPending},
	}
}

// BundleScore holds the scorer's output.
type BundleScore struct {
	Confidence     float64             `json:"confidence"`     // 0-100, vibe match fraction
	TrendAlignment float64             `json:"trendAlignment"` // 1-10
	RuleOfThree    colour.BudgetResult `json:"ruleOfThree"`
}

// Bundle statuses.
const (
	StatusAvailable = "available"
	StatusPartial   = "partial" // a mandatory slot could not be filled
	StatusEmpty     = "out_of_stock"
)

// CurationState is the unit of work for one curation session. Created at
// the start of a request, mutated in place by each pipeline component,
// owned by a single invocation (never shared across concurrent runs).
type CurationState struct {
	Occasion    string  `json:"occasion"`
	SubOccasion string  `json:"subOccasion,omitempty"`
	Gender      string  `json:"gender"`
	Budget      float64 `json:"budget"`
	Region      string  `json:"region,omitempty"`

	ColourMood     string `json:"colourMood,omitempty"` // Vibrant / Pastel / Earthy / Neutral / Any
	PreferredVibe  string `json:"preferredVibe,omitempty"`
	ClothingType   string `json:"clothingType,omitempty"`
	JewelleryType  string `json:"jewelleryType,omitempty"`
	AccessoryType  string `json:"accessoryType,omitempty"`
	SeedHex        string `json:"seedHex,omitempty"` // explicit palette seed (e.g. from a swatch)
	JewelleryMetal string `json:"jewelleryMetal,omitempty"`

	TrendBrief *TrendBrief   `json:"trendBrief,omitempty"`
	Profile    *StyleProfile `json:"profile,omitempty"`

	Palette         *Palette          `json:"palette,omitempty"`
	Bridge          *BridgeSuggestion `json:"bridge,omitempty"`
	Slots           []SelectionSlot   `json:"slots"`
	RemainingBudget float64           `json:"remainingBudget"`
	Score           *BundleScore      `json:"score,omitempty"`
	StylistTip      string            `json:"stylistTip,omitempty"`
	Status          string            `json:"status"`

	RejectedSKUs    []string `json:"rejectedSkus"`
	FeedbackHistory []string `json:"feedbackHistory"`
	Iteration       int      `json:"iteration"`
	Timestamp       string   `json:"timestamp"`
}

// NewCurationState creates a fresh session state.
func NewCurationState(occasion, gender string, budget float64) *CurationState {
	return &CurationState{
		Occasion:  occasion,
		Gender:    gender,
		Budget:    budget,
		Slots:     DefaultSlots(),
		Status:    StatusEmpty,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// RejectSKU adds a sku to the blacklist. The list only ever grows within
// a session.
func (s *CurationState) RejectSKU(sku string) {
	for _, r := range s.RejectedSKUs {
		if r == sku {
			return
		}
	}
	s.RejectedSKUs = append(s.RejectedSKUs, sku)
}

// RejectCurrentItems blacklists every currently selected item.
func (s *CurationState) RejectCurrentItems() {
	for i := range s.Slots {
		if s.Slots[i].Item != nil {
			s.RejectSKU(s.Slots[i].Item.SKU)
		}
	}
}

// ResetForRefinement clears slot fills and scores ahead of a re-curation,
// keeping the profile, trend brief, blacklist and feedback history.
func (s *CurationState) ResetForRefinement() {
	s.Slots = DefaultSlots()
	s.Score = nil
	s.Palette = nil
	s.Bridge = nil
	s.Status = StatusEmpty
	s.Iteration++
}

// FilledItems returns the selected items in slot priority order.
func (s *CurationState) FilledItems() []CatalogItem {
	var items []CatalogItem
	for i := range s.Slots {
		if s.Slots[i].Item != nil {
			items = append(items, *s.Slots[i].Item)
		}
	}
	return items
}

// TotalCost sums the prices of all selected items.
func (s *CurationState) TotalCost() float64 {
	var total float64
	for i := range s.Slots {
		if s.Slots[i].Item != nil {
			total += s.Slots[i].Item.Price
		}
	}
	return total
}

// Summary is the flat, serialisable snapshot exported for dashboards.
// No nested catalog objects.
type Summary struct {
	Occasion        string  `json:"occasion"`
	SubOccasion     string  `json:"subOccasion,omitempty"`
	Budget          float64 `json:"budget"`
	StyleArchetype  string  `json:"styleArchetype"`
	TrendAlignment  float64 `json:"trendAlignment"`
	Confidence      float64 `json:"confidence"`
	PaletteStrategy string  `json:"paletteStrategy"`
	ItemCount       int     `json:"itemCount"`
	Iteration       int     `json:"iteration"`
	Status          string  `json:"status"`
}

// ToSummary flattens the state for tabular analytics.
func (s *CurationState) ToSummary() Summary {
	out := Summary{
		Occasion:    s.Occasion,
		SubOccasion: s.SubOccasion,
		Budget:      s.Budget,
		ItemCount:   len(s.FilledItems()),
		Iteration:   s.Iteration,
		Status:      s.Status,
	}
	if s.Profile != nil {
		out.StyleArchetype = s.Profile.Archetype
	}
	if s.Palette != nil {
		out.PaletteStrategy = s.Palette.Strategy
	}
	if s.Score != nil {
		out.TrendAlignment = s.Score.TrendAlignment
		out.Confidence = s.Score.Confidence
	}
	return out
}
