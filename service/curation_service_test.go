package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-atelier/models"
	"style-atelier/repository"
	"style-atelier/trends"
)

// stubProfiles serves a canned profile, or an empty one to exercise the
// default-persona fallback.
type stubProfiles struct {
	profile *models.StyleProfile
	err     error
}

func (s *stubProfiles) GetStyleProfile(_ context.Context, userID string) (*models.StyleProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.profile != nil {
		return s.profile, nil
	}
	return &models.StyleProfile{UserID: userID}, nil
}

// memHistory collects audit rows in memory.
type memHistory struct {
	entries []models.OutfitHistoryEntry
}

func (m *memHistory) Insert(_ context.Context, e *models.OutfitHistoryEntry) error {
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memHistory) GetByUser(_ context.Context, _ string, _ int) ([]models.OutfitHistoryEntry, error) {
	return m.entries, nil
}

func weddingCatalog() *repository.MemoryCatalogRepository {
	mk := func(sku, name, category, colourFamily, fabric, vibe string, price float64) models.CatalogItem {
		return models.CatalogItem{
			SKU: sku, Name: name, Category: category, Price: price,
			ColourFamily: colourFamily, Fabric: fabric, Vibe: vibe,
			OccasionTags: "wedding,reception", Gender: "female",
			StockStatus: models.StockInStock,
		}
	}
	return repository.NewMemoryCatalogRepository([]models.CatalogItem{
		mk("LEH-01", "Maroon Bridal Lehenga", "Full", "Maroon", "Kanjeevaram Silk", "Ethnic", 15000),
		mk("LEH-02", "Emerald Lehenga", "Full", "Emerald Green", "Raw Silk", "Ethnic", 11000),
		mk("KUR-01", "Gold Kurta", "Top", "Gold", "Silk", "Ethnic", 4000),
		mk("JWL-01", "Kundan Bridal Set", "Jewelry", "Gold", "Gold Plated", "Ethnic", 6000),
		mk("JWL-02", "Silver Jhumkas", "Jewelry", "Silver", "Silver", "Ethnic", 2000),
		mk("FTW-01", "Embroidered Juttis", "Footwear", "Gold", "Leather", "Ethnic", 2500),
		mk("ACC-01", "Potli Bag", "Accessory", "Gold", "Silk", "Ethnic", 1800),
	})
}

func newTestService(catalog *repository.MemoryCatalogRepository, profiles repository.ProfileRepositoryInterface) (*CurationService, *memHistory) {
	history := &memHistory{}
	return NewCurationService(catalog, profiles, history, trends.NewStaticProvider()), history
}

func weddingState(budget float64) *models.CurationState {
	state := models.NewCurationState("wedding", "female", budget)
	state.PreferredVibe = "Ethnic"
	return state
}

func TestCurateFullBundle(t *testing.T) {
	svc, history := newTestService(weddingCatalog(), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.StatusAvailable, state.Status)
	assert.NotEmpty(t, state.FilledItems())
	require.NotNil(t, state.Score)
	assert.GreaterOrEqual(t, state.Score.Confidence, 0.0)
	assert.GreaterOrEqual(t, state.Score.TrendAlignment, 1.0)
	assert.LessOrEqual(t, state.Score.TrendAlignment, 10.0)
	assert.GreaterOrEqual(t, state.RemainingBudget, 0.0)
	assert.NotNil(t, state.Palette)
	assert.NotEmpty(t, state.StylistTip)
	assert.Len(t, history.entries, 1, "audit row recorded")
}

func TestCurateEmptyProfileStillReturnsBundle(t *testing.T) {
	// No purchase history at all: the default persona kicks in and the
	// run completes without error.
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{})

	state, err := svc.Curate(context.Background(), weddingState(30000), "new-user")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, state.Score.Confidence, 0.0)
	assert.Equal(t, "Minimalist Professional", state.Profile.Archetype)
}

func TestCurateProfileRepoFailureFallsBackToDefaults(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{err: errors.New("persona store down")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)
	assert.NotNil(t, state.Profile)
}

func TestCurateConfigurationErrors(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{})

	_, err := svc.Curate(context.Background(), models.NewCurationState("", "female", 1000), "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConfiguration))
	assert.Contains(t, err.Error(), "occasion")

	_, err = svc.Curate(context.Background(), models.NewCurationState("wedding", "female", 0), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")

	bad := weddingState(1000)
	bad.SeedHex = "#NOTHEX"
	_, err = svc.Curate(context.Background(), bad, "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seedHex")

	empty := weddingState(1000)
	empty.Slots = nil
	_, err = svc.Curate(context.Background(), empty, "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slots")
}

func TestCurateBudgetExhaustion(t *testing.T) {
	// Budget below the cheapest main garment: mandatory slot degrades,
	// status partial, nothing overspent and no error raised.
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(500), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.SlotUnfilled, state.Slots[0].Status, "priced out, not unavailable")
	assert.Equal(t, models.StatusPartial, state.Status)
	assert.GreaterOrEqual(t, state.RemainingBudget, 0.0)
}

func TestCurateEmptyCatalogIsOutOfStock(t *testing.T) {
	svc, _ := newTestService(repository.NewMemoryCatalogRepository(nil), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmpty, state.Status)
	assert.Equal(t, models.SlotUnavailable, state.Slots[0].Status)
}

func TestRefineExcludesRejectedItems(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)

	var before []string
	for _, item := range state.FilledItems() {
		before = append(before, item.SKU)
	}
	require.NotEmpty(t, before)

	state, err = svc.Refine(context.Background(), state, "show me something different", "u1")
	require.NoError(t, err)

	blacklisted := map[string]bool{}
	for _, sku := range state.RejectedSKUs {
		blacklisted[sku] = true
	}
	for _, sku := range before {
		assert.True(t, blacklisted[sku], "previous pick %s must be blacklisted", sku)
	}
	for _, item := range state.FilledItems() {
		assert.False(t, blacklisted[item.SKU], "blacklisted %s reappeared", item.SKU)
	}
	assert.Equal(t, 1, state.Iteration)
}

func TestRefineLoopGrowsIterationAndBlacklist(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)

	prevIteration := state.Iteration
	prevBlacklist := len(state.RejectedSKUs)
	for i := 0; i < 3; i++ {
		state, err = svc.Refine(context.Background(), state, "zxqw gibberish feedback", "u1")
		require.NoError(t, err)

		assert.Greater(t, state.Iteration, prevIteration)
		assert.GreaterOrEqual(t, len(state.RejectedSKUs), prevBlacklist)
		prevIteration = state.Iteration
		prevBlacklist = len(state.RejectedSKUs)
	}
	assert.Len(t, state.FeedbackHistory, 3)
}

func TestRefineReduceBudgetScalesTotal(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)

	state, err = svc.Refine(context.Background(), state, "this is too expensive", "u1")
	require.NoError(t, err)
	assert.InDelta(t, 21000, state.Budget, 0.01)
}

func TestCurateJewelleryFollowsMetal(t *testing.T) {
	profile := models.DefaultProfile("u1")
	profile.Undertone = "cool"
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{profile: profile})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Silver", state.JewelleryMetal)
	for i := range state.Slots {
		if state.Slots[i].Role == models.RoleJewellery && state.Slots[i].Item != nil {
			assert.Equal(t, "JWL-02", state.Slots[i].Item.SKU)
		}
	}
}

func TestHistoryReturnsAuditTrail(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{})
	state := models.NewCurationState("wedding", "female", 30000)
	_, err := svc.Curate(context.Background(), state, "u1")
	require.NoError(t, err)

	entries, err := svc.History(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, "wedding", entries[0].Occasion)
}

func TestHistoryEmptyWhenAuditDisabled(t *testing.T) {
	svc := NewCurationService(weddingCatalog(), &stubProfiles{}, nil, trends.NewStaticProvider())
	entries, err := svc.History(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToSummaryFlatSnapshot(t *testing.T) {
	svc, _ := newTestService(weddingCatalog(), &stubProfiles{profile: models.DefaultProfile("u1")})

	state, err := svc.Curate(context.Background(), weddingState(30000), "u1")
	require.NoError(t, err)

	summary := state.ToSummary()
	assert.Equal(t, "wedding", summary.Occasion)
	assert.Equal(t, state.Score.Confidence, summary.Confidence)
	assert.Equal(t, state.Palette.Strategy, summary.PaletteStrategy)
	assert.Equal(t, len(state.FilledItems()), summary.ItemCount)
}
