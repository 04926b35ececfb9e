package models

import "time"

// OutfitHistoryEntry is one audit row of the curation log: which bundle
// a user was shown, at which iteration, and how it scored. Written
// best-effort after each curation; never read back into the engine.
type OutfitHistoryEntry struct {
	ID             int64     `json:"id,omitempty"`
	UserID         string    `json:"userId"`
	Occasion       string    `json:"occasion"`
	Budget         float64   `json:"budget"`
	TotalCost      float64   `json:"totalCost"`
	SKUs           []string  `json:"skus"`
	PaletteColours []string  `json:"paletteColours"`
	Confidence     float64   `json:"confidence"`
	TrendAlignment float64   `json:"trendAlignment"`
	Iteration      int       `json:"iteration"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
