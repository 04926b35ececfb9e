package models

import (
	"fmt"
	"strings"
)

// Stock status values used by the catalog store.
const (
	StockInStock    = "in_stock"
	StockLimited    = "limited"
	StockOutOfStock = "out_of_stock"
)

// CatalogItem is one row of the external catalog. The engine never
// mutates items; it only reads and selects. Fields are validated once at
// the repository boundary so the engine internals can assume well-typed
// data.
type CatalogItem struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"` // Top / Bottom / Full / Layer / Jewelry / Footwear / Accessory
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	ColourFamily string  `json:"colourFamily"` // vocabulary name, e.g. "Maroon"
	ColourHex    string  `json:"colourHex"`
	Fabric       string  `json:"fabric"`
	Cut          string  `json:"cut,omitempty"`
	Fit          string  `json:"fit,omitempty"`
	Vibe         string  `json:"vibe,omitempty"` // Ethnic / Modern / Boho / ...
	OccasionTags string  `json:"occasionTags"`   // comma-joined tag list
	Gender       string  `json:"gender"`         // male / female / unisex
	Region       string  `json:"region,omitempty"`
	StockStatus  string  `json:"stockStatus"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	ProductURL   string  `json:"productUrl,omitempty"`
}

// Validate checks the fixed-schema invariants a catalog row must satisfy
// before it crosses into the engine.
func (i *CatalogItem) Validate() error {
	switch {
	case strings.TrimSpace(i.SKU) == "":
		return fmt.Errorf("catalog item missing sku")
	case strings.TrimSpace(i.Name) == "":
		return fmt.Errorf("catalog item %s missing name", i.SKU)
	case strings.TrimSpace(i.Category) == "":
		return fmt.Errorf("catalog item %s missing category", i.SKU)
	case i.Price < 0:
		return fmt.Errorf("catalog item %s has negative price %.2f", i.SKU, i.Price)
	}
	return nil
}

// MatchesOccasion reports whether the item's occasion tags contain the
// given occasion substring.
func (i *CatalogItem) MatchesOccasion(occasion string) bool {
	if occasion == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.OccasionTags), strings.ToLower(occasion))
}

// CatalogQuery is the single read operation the engine issues against
// the catalog store. Results come back ordered by price descending (sku
// ascending on ties) and capped at Limit rows.
type CatalogQuery struct {
	Categories     []string // one or more of the slot categories
	Occasion       string   // matched as a substring of occasion_tags
	Gender         string   // expanded to (gender, 'unisex') by the store
	PriceCeiling   float64
	ColourFamilies []string // optional; empty means colour-unconstrained
	Vibe           string   // optional preferred vibe tag
	Metal          string   // optional jewellery metal (matched on fabric or colour family)
	NameLike       string   // optional type preference, e.g. "Saree"
	ExcludeSKUs    []string // rejected-item blacklist
	Limit          int      // defaults to 5 when zero
}
