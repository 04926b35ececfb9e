package router

import (
	"net/http"
	"strings"

	"style-atelier/app/controller"
)

type Controllers struct {
	Curation *controller.CurationController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Start a curation session
	http.HandleFunc("/curate", controllers.Curation.Curate)

	// Swatch colour extraction
	http.HandleFunc("/swatch", controllers.Curation.Swatch)

	// Curated-bundle audit trail
	http.HandleFunc("/history", controllers.Curation.GetHistory)

	// Session routes: refine, summary, get
	http.HandleFunc("/curate/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/refine") {
			controllers.Curation.Refine(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/summary") {
			controllers.Curation.GetSummary(w, r)
			return
		}
		if r.Method == http.MethodGet {
			controllers.Curation.GetSession(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
}
