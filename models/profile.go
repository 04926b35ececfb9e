package models

// StyleProfile is the aggregated persona view of one user's history:
// dominant colours, preferred silhouettes and fabrics, plus sizing and
// budget bands. Sparse histories resolve to DefaultProfile rather than
// failing.
type StyleProfile struct {
	UserID             string             `json:"userId"`
	DominantColours    []string           `json:"dominantColours"`
	DominantColourPcts map[string]float64 `json:"dominantColourPcts,omitempty"`
	Silhouettes        []string           `json:"silhouettes"`
	Fabrics            []string           `json:"fabrics"`
	Archetype          string             `json:"archetype"`
	Size               string             `json:"size"`
	Undertone          string             `json:"undertone"` // warm / cool / neutral
	BudgetMin          float64            `json:"budgetMin"`
	BudgetMax          float64            `json:"budgetMax"`
}

// DefaultProfile is the safe fallback persona used when a user has no
// purchase history: neutral undertone, mid-range budget, generic
// fabrics. The engine must never fail solely for lack of history.
func DefaultProfile(userID string) *StyleProfile {
	return &StyleProfile{
		UserID:          userID,
		DominantColours: []string{"Black", "White", "Navy Blue"},
		Silhouettes:     []string{"Straight", "Classic"},
		Fabrics:         []string{"Cotton", "Linen"},
		Archetype:       "Minimalist Professional",
		Size:            "M",
		Undertone:       "neutral",
		BudgetMin:       5000,
		BudgetMax:       30000,
	}
}

// IsEmpty reports whether the profile carries no usable history signal.
func (p *StyleProfile) IsEmpty() bool {
	return p == nil || (len(p.DominantColours) == 0 && len(p.Fabrics) == 0 && len(p.Silhouettes) == 0)
}
