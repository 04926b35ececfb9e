package models

// TrendBrief is the small structured summary of current season signals
// produced upstream of the engine. Assumed already deduplicated and
// capped: at most 5 colours, 4 fabrics, 3 silhouettes.
type TrendBrief struct {
	TrendingColours []string `json:"trendingColours"`
	KeyFabrics      []string `json:"keyFabrics"`
	Silhouettes     []string `json:"silhouettes"`
	Season          string   `json:"season"`
	Year            int      `json:"year"`
	SourceSummary   string   `json:"sourceSummary,omitempty"`
}

// IsEmpty reports whether the brief carries no usable signal.
func (t *TrendBrief) IsEmpty() bool {
	return t == nil || (len(t.TrendingColours) == 0 && len(t.KeyFabrics) == 0 && len(t.Silhouettes) == 0)
}
