// Package trends exposes the trend interface the engine consumes. The
// static provider serves the curated seasonal tables; a live scraper can
// replace it behind the same interface without touching the engine.
package trends

import (
	"context"
	"time"

	"style-atelier/kb"
	"style-atelier/models"
)

// Provider is the consumed trend interface: briefs come back already
// deduplicated and capped.
type Provider interface {
	GetCurrentTrendBrief(ctx context.Context, occasion, season string) (*models.TrendBrief, error)
}

// StaticProvider serves briefs from the in-process knowledge base.
type StaticProvider struct{}

// NewStaticProvider creates a StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

var _ Provider = (*StaticProvider)(nil)

// GetCurrentTrendBrief assembles the brief for an occasion and season.
// An empty season resolves from the current month.
func (p *StaticProvider) GetCurrentTrendBrief(_ context.Context, occasion, season string) (*models.TrendBrief, error) {
	if season == "" {
		season = CurrentSeason(time.Now())
	}
	brief := kb.BriefFor(occasion, season)
	return &brief, nil
}

// CurrentSeason maps a date onto the fashion calendar.
func CurrentSeason(now time.Time) string {
	switch now.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}
