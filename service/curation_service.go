// Package service orchestrates the curation pipeline: signal gathering,
// palette intersection, tiered slot matching, scoring and refinement.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"style-atelier/colour"
	"style-atelier/feedback"
	"style-atelier/kb"
	"style-atelier/matcher"
	"style-atelier/models"
	"style-atelier/palette"
	"style-atelier/repository"
	"style-atelier/scorer"
	"style-atelier/trends"
	"style-atelier/utils"
)

// CurationService wires the engine components over the catalog, persona
// and trend stores.
type CurationService struct {
	catalog  repository.CatalogRepositoryInterface
	profiles repository.ProfileRepositoryInterface
	history  repository.OutfitHistoryRepositoryInterface // optional, nil disables the audit log
	trends   trends.Provider
	matcher  *matcher.Matcher
}

// NewCurationService creates a CurationService. The history repository
// may be nil; audit logging is then skipped.
func NewCurationService(
	catalog repository.CatalogRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	history repository.OutfitHistoryRepositoryInterface,
	trendProvider trends.Provider,
) *CurationService {
	return &CurationService{
		catalog:  catalog,
		profiles: profiles,
		history:  history,
		trends:   trendProvider,
		matcher:  matcher.New(catalog),
	}
}

// Curate runs the full pipeline over a session state and returns it with
// slots filled and scores attached. A bundle always comes back, possibly
// partial; only a configuration error aborts the run.
func (s *CurationService) Curate(ctx context.Context, state *models.CurationState, userID string) (*models.CurationState, error) {
	if err := s.validate(state); err != nil {
		return nil, err
	}

	s.resolveSignals(ctx, state, userID)

	guidance := kb.GuidanceFor(state.Occasion, state.SubOccasion, state.Region, state.Gender)
	strategy := kb.PaletteStrategyFor(state.Occasion, guidance.Vibe)

	p, bridge, err := palette.Build(palette.Input{
		Trend:           state.TrendBrief,
		Profile:         state.Profile,
		OccasionColours: guidance.Colours,
		AvoidColours:    guidance.AvoidColours,
		Strategy:        strategy,
		Mood:            state.ColourMood,
		SeedHex:         state.SeedHex,
	})
	if err != nil {
		return nil, err
	}
	state.Palette = p
	state.Bridge = bridge
	if state.JewelleryMetal == "" {
		state.JewelleryMetal = string(colour.MetalFor(state.Profile.Undertone, utils.NormaliseTag(state.Occasion)))
	}

	remaining, degraded := s.matcher.FillAll(ctx, state.Slots, state.Budget, func(slot *models.SelectionSlot) matcher.Constraints {
		return s.constraintsFor(state, slot)
	})
	state.RemainingBudget = remaining
	for _, err := range degraded {
		log.Printf("⚠️ degraded slot: %v", err)
	}

	score := scorer.Score(state.Slots, state.TrendBrief)
	state.Score = &score
	state.Status = bundleStatus(state.Slots)
	state.StylistTip = s.stylistTip(state, guidance)

	s.recordHistory(ctx, state, userID)

	log.Printf("✅ Curated %s bundle: %d items, ₹%.0f spent, confidence %.0f, alignment %.1f",
		state.Occasion, len(state.FilledItems()), state.TotalCost(),
		score.Confidence, score.TrendAlignment)
	return state, nil
}

// Refine classifies free-text feedback, blacklists the current items,
// mutates the state per the action and re-runs the pipeline. Iteration
// count and feedback history grow on every call.
func (s *CurationService) Refine(ctx context.Context, state *models.CurationState, feedbackText, userID string) (*models.CurationState, error) {
	action, colourName := feedback.Classify(feedbackText)
	if action == feedback.ActionFullRebuild && strings.TrimSpace(feedbackText) != "" {
		log.Printf("🔁 %v: %q, rebuilding from scratch", models.ErrFeedbackUnrecognised, feedbackText)
	}

	state.FeedbackHistory = append(state.FeedbackHistory, feedbackText)
	state.RejectCurrentItems()
	state.ResetForRefinement()
	feedback.Apply(state, action, colourName)

	return s.Curate(ctx, state, userID)
}

// History returns a user's most recent curated bundles from the audit
// log, newest first. Empty when audit logging is disabled.
func (s *CurationService) History(ctx context.Context, userID string, limit int) ([]models.OutfitHistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.GetByUser(ctx, userID, limit)
}

// validate enforces the caller-side contract. Violations are fatal and
// name the bad field.
func (s *CurationService) validate(state *models.CurationState) error {
	switch {
	case state == nil:
		return models.ConfigurationErrorf("state", "nil curation state")
	case strings.TrimSpace(state.Occasion) == "":
		return models.ConfigurationErrorf("occasion", "must not be empty")
	case state.Budget <= 0:
		return models.ConfigurationErrorf("budget", "must be positive, got %.2f", state.Budget)
	case len(state.Slots) == 0:
		return models.ConfigurationErrorf("slots", "slot list must not be empty")
	}
	if state.SeedHex != "" {
		if _, err := colour.NormalizeHex(state.SeedHex); err != nil {
			return models.ConfigurationErrorf("seedHex", "%v", err)
		}
	}
	return nil
}

// resolveSignals fills in the trend brief and style profile when absent.
// Missing signals are recovered with defaults and logged, never errored.
func (s *CurationService) resolveSignals(ctx context.Context, state *models.CurationState, userID string) {
	if state.TrendBrief.IsEmpty() {
		brief, err := s.trends.GetCurrentTrendBrief(ctx, utils.NormaliseTag(state.Occasion), "")
		if err != nil || brief.IsEmpty() {
			log.Printf("⚠️ %v for occasion %s, proceeding without trend data", models.ErrSignalMissing, state.Occasion)
			brief = &models.TrendBrief{}
		}
		state.TrendBrief = brief
	}
	if state.Profile.IsEmpty() {
		profile, err := s.profiles.GetStyleProfile(ctx, userID)
		if err != nil || profile.IsEmpty() {
			log.Printf("⚠️ %v for user %s, using default persona", models.ErrSignalMissing, userID)
			profile = models.DefaultProfile(userID)
		}
		state.Profile = profile
	}
}

// constraintsFor shapes the matcher constraints per slot role: garments
// chase the palette, jewellery chases the recommended metal, and every
// slot honours the blacklist.
func (s *CurationService) constraintsFor(state *models.CurationState, slot *models.SelectionSlot) matcher.Constraints {
	c := matcher.Constraints{
		Occasion:       utils.NormaliseTag(state.Occasion),
		Gender:         state.Gender,
		PaletteColours: state.Palette.Families(),
		HistoryColours: state.Profile.DominantColours,
		Vibe:           state.PreferredVibe,
		RejectedSKUs:   state.RejectedSKUs,
	}
	switch slot.Role {
	case models.RoleMainGarment:
		c.NameLike = state.ClothingType
	case models.RoleComplementary:
		// Secondary shades only, so the pair contrasts the main piece.
		if len(state.Palette.Secondary) > 0 {
			var names []string
			for _, sec := range state.Palette.Secondary {
				names = append(names, sec.Name)
			}
			c.PaletteColours = names
		}
	case models.RoleJewellery:
		c.PaletteColours = []string{state.JewelleryMetal}
		c.Metal = state.JewelleryMetal
		c.NameLike = state.JewelleryType
	case models.RoleAccessory:
		// Accessories are the low-commitment place to land the bridge
		// colour, so the accent families lead the search.
		var names []string
		if state.Bridge != nil {
			names = append(names, state.Bridge.AccentColour)
		}
		names = append(names, state.Palette.Accents...)
		if len(names) > 0 {
			c.PaletteColours = append(names, c.PaletteColours...)
		}
		c.NameLike = state.AccessoryType
	}
	return c
}

// bundleStatus derives the overall status. A mandatory slot with no
// in-stock candidates at all marks the bundle out of stock when nothing
// else filled; a mandatory slot that is merely priced out degrades the
// bundle to partial.
func bundleStatus(slots []models.SelectionSlot) string {
	filled, mandatoryMissing, mandatoryUnavailable := 0, false, false
	for i := range slots {
		switch {
		case slots[i].Item != nil:
			filled++
		case slots[i].Mandatory:
			mandatoryMissing = true
			if slots[i].Status == models.SlotUnavailable {
				mandatoryUnavailable = true
			}
		}
	}
	switch {
	case filled == 0 && mandatoryUnavailable:
		return models.StatusEmpty
	case mandatoryMissing:
		return models.StatusPartial
	case filled == 0:
		return models.StatusEmpty
	default:
		return models.StatusAvailable
	}
}

// stylistTip composes the human note shown with the bundle: occasion
// framing, the archetype's accent idea, climate and bridge advice.
func (s *CurationService) stylistTip(state *models.CurationState, guidance kb.Guidance) string {
	var parts []string
	parts = append(parts, guidance.Description)
	if archetype, ok := kb.ArchetypeByName(state.Profile.Archetype); ok {
		parts = append(parts, archetype.AccentSuggestion+".")
	}
	if guidance.WeightNote != "" {
		parts = append(parts, guidance.WeightNote+".")
	}
	if state.Bridge != nil {
		parts = append(parts, state.Bridge.Suggestion)
	}
	if state.RemainingBudget > 0 && len(state.FilledItems()) > 0 {
		parts = append(parts, fmt.Sprintf("You have %s left of your budget.", utils.FormatINR(state.RemainingBudget)))
	}
	return strings.Join(parts, " ")
}

// recordHistory writes the audit row. Best effort: failures are logged,
// never surfaced.
func (s *CurationService) recordHistory(ctx context.Context, state *models.CurationState, userID string) {
	if s.history == nil || userID == "" {
		return
	}
	var skus []string
	for _, item := range state.FilledItems() {
		skus = append(skus, item.SKU)
	}
	entry := &models.OutfitHistoryEntry{
		UserID:         userID,
		Occasion:       state.Occasion,
		Budget:         state.Budget,
		TotalCost:      state.TotalCost(),
		SKUs:           skus,
		PaletteColours: state.Palette.Families(),
		Iteration:      state.Iteration,
		Status:         state.Status,
	}
	if state.Score != nil {
		entry.Confidence = state.Score.Confidence
		entry.TrendAlignment = state.Score.TrendAlignment
	}
	if err := s.history.Insert(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to record outfit history: %v", err)
	}
}
