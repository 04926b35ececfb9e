package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-atelier/models"
	"style-atelier/repository"
	"style-atelier/service"
	"style-atelier/trends"
)

type stubProfiles struct{}

func (stubProfiles) GetStyleProfile(_ context.Context, userID string) (*models.StyleProfile, error) {
	return models.DefaultProfile(userID), nil
}

func newTestController() *CurationController {
	mk := func(sku, name, category, colourFamily string, price float64) models.CatalogItem {
		return models.CatalogItem{
			SKU: sku, Name: name, Category: category, Price: price,
			ColourFamily: colourFamily, Fabric: "Silk", Vibe: "Ethnic",
			OccasionTags: "wedding,reception", Gender: "female",
			StockStatus: models.StockInStock,
		}
	}
	// Enough main-garment variety that repeated refinements, which
	// blacklist the previous pick, keep finding candidates.
	var items []models.CatalogItem
	for i := 1; i <= 12; i++ {
		items = append(items, mk(fmt.Sprintf("LEH-%02d", i), "Bridal Lehenga", "Full", "Maroon", float64(5000+i*100)))
	}
	catalog := repository.NewMemoryCatalogRepository(items)
	svc := service.NewCurationService(catalog, stubProfiles{}, nil, trends.NewStaticProvider())
	return NewCurationController(svc, service.NewSwatchService())
}

func startSession(t *testing.T, c *CurationController) string {
	t.Helper()
	body, _ := json.Marshal(curateRequest{
		UserID: "u1", Occasion: "wedding", Gender: "female", Budget: 30000,
	})
	req := httptest.NewRequest(http.MethodPost, "/curate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	c.Curate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp curateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func postRefine(c *CurationController, sessionID, feedbackText string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(refineRequest{UserID: "u1", Feedback: feedbackText})
	req := httptest.NewRequest(http.MethodPost, "/curate/"+sessionID+"/refine", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	c.Refine(rec, req)
	return rec
}

func TestRefineUnknownSessionIs404(t *testing.T) {
	c := newTestController()
	rec := postRefine(c, "nope", "make it pop")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefineBumpsIteration(t *testing.T) {
	c := newTestController()
	sessionID := startSession(t, c)

	rec := postRefine(c, sessionID, "show me something else")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp curateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.State.Iteration)
	assert.Len(t, resp.State.FeedbackHistory, 1)
}

func TestConcurrentRefinesOnOneSessionSerialise(t *testing.T) {
	c := newTestController()
	sessionID := startSession(t, c)

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			rec := postRefine(c, sessionID, "show me something else")
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	// Serialised refinements lose nothing: every call bumped the
	// iteration and appended its feedback line exactly once.
	sess := c.loadSession(sessionID)
	require.NotNil(t, sess)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	assert.Equal(t, n, sess.state.Iteration)
	assert.Len(t, sess.state.FeedbackHistory, n)
}
