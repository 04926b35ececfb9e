package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"style-atelier/models"
	"style-atelier/service"
)

// session pairs a curation state with its own lock. The state is owned
// by one invocation at a time, so every request touching it takes the
// session lock first, not just the map lock.
type session struct {
	mu    sync.Mutex
	state *models.CurationState
}

// CurationController handles HTTP requests for outfit curation sessions.
type CurationController struct {
	curationService *service.CurationService
	swatchService   *service.SwatchService
	// Session storage (key: sessionID). sessionsMutex guards the map
	// only; concurrent requests on the same session serialise on that
	// session's own mutex.
	sessions      map[string]*session
	sessionsMutex sync.RWMutex
	nextSession   int64
}

// NewCurationController creates a new CurationController
func NewCurationController(curationService *service.CurationService, swatchService *service.SwatchService) *CurationController {
	return &CurationController{
		curationService: curationService,
		swatchService:   swatchService,
		sessions:        make(map[string]*session),
	}
}

// curateRequest is the POST /curate payload.
type curateRequest struct {
	UserID        string  `json:"userId"`
	Occasion      string  `json:"occasion"`
	SubOccasion   string  `json:"subOccasion,omitempty"`
	Gender        string  `json:"gender"`
	Budget        float64 `json:"budget"`
	Region        string  `json:"region,omitempty"`
	ColourMood    string  `json:"colourMood,omitempty"`
	PreferredVibe string  `json:"preferredVibe,omitempty"`
	ClothingType  string  `json:"clothingType,omitempty"`
	JewelleryType string  `json:"jewelleryType,omitempty"`
	AccessoryType string  `json:"accessoryType,omitempty"`
	SeedHex       string  `json:"seedHex,omitempty"`
}

type curateResponse struct {
	SessionID string                `json:"sessionId"`
	State     *models.CurationState `json:"state"`
}

// Curate handles POST /curate
func (c *CurationController) Curate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req curateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Curate: invalid request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state := models.NewCurationState(req.Occasion, req.Gender, req.Budget)
	state.SubOccasion = req.SubOccasion
	state.Region = req.Region
	state.ColourMood = req.ColourMood
	state.PreferredVibe = req.PreferredVibe
	state.ClothingType = req.ClothingType
	state.JewelleryType = req.JewelleryType
	state.AccessoryType = req.AccessoryType
	state.SeedHex = req.SeedHex

	result, err := c.curationService.Curate(context.Background(), state, req.UserID)
	if err != nil {
		log.Printf("❌ Curate failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := c.storeSession(req.UserID, result)
	writeJSON(w, http.StatusOK, curateResponse{SessionID: sessionID, State: result})
}

// refineRequest is the POST /curate/{sessionID}/refine payload.
type refineRequest struct {
	UserID   string `json:"userId"`
	Feedback string `json:"feedback"`
}

// Refine handles POST /curate/{sessionID}/refine
func (c *CurationController) Refine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := pathSegment(r.URL.Path, "/curate/", "/refine")
	sess := c.loadSession(sessionID)
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	var req refineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	result, err := c.curationService.Refine(context.Background(), sess.state, req.Feedback, req.UserID)
	if err != nil {
		log.Printf("❌ Refine failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, curateResponse{SessionID: sessionID, State: result})
}

// GetSession handles GET /curate/{sessionID}
func (c *CurationController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimPrefix(r.URL.Path, "/curate/")
	sess := c.loadSession(sessionID)
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, curateResponse{SessionID: sessionID, State: sess.state})
}

// GetSummary handles GET /curate/{sessionID}/summary
func (c *CurationController) GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := pathSegment(r.URL.Path, "/curate/", "/summary")
	sess := c.loadSession(sessionID)
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	sess.mu.Lock()
	summary := sess.state.ToSummary()
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, summary)
}

// GetHistory handles GET /history?userId=...: the user's curated-bundle
// audit trail.
func (c *CurationController) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId query parameter is required", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	entries, err := c.curationService.History(context.Background(), userID, limit)
	if err != nil {
		log.Printf("❌ History lookup failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.OutfitHistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Swatch handles POST /swatch: extracts the dominant colour of an
// uploaded garment photo for use as a palette seed.
func (c *CurationController) Swatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	hex, spec, err := c.swatchService.DominantHex(file)
	if err != nil {
		log.Printf("❌ Swatch extraction failed: %v", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"seedHex": hex,
		"name":    spec.Name,
		"family":  spec.Family,
		"warmth":  spec.Warmth,
	})
}

func (c *CurationController) storeSession(userID string, state *models.CurationState) string {
	c.sessionsMutex.Lock()
	defer c.sessionsMutex.Unlock()
	c.nextSession++
	sessionID := fmt.Sprintf("%s-%d-%s", userID, time.Now().Unix(), strconv.FormatInt(c.nextSession, 10))
	c.sessions[sessionID] = &session{state: state}
	return sessionID
}

func (c *CurationController) loadSession(sessionID string) *session {
	c.sessionsMutex.RLock()
	defer c.sessionsMutex.RUnlock()
	return c.sessions[sessionID]
}

func pathSegment(path, prefix, suffix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, prefix), suffix)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}
