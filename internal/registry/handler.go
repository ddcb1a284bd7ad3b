package registry

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// ListHandler returns the full catalog grouped by category.
func ListHandler(w http.ResponseWriter, r *http.Request) {
	grouped := map[string][]Descriptor{}
	for _, d := range All() {
		grouped[d.Category] = append(grouped[d.Category], d)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grouped)
}

// SearchHandler matches ?q= against the catalog.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	results := Search(r.URL.Query().Get("q"))
	if results == nil {
		results = []Descriptor{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// CalcHandler dispatches POST /api/tools/{slug}/calc through the table.
func CalcHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	d, ok := Lookup(slug)
	if !ok {
		http.Error(w, "Unknown calculator", http.StatusNotFound)
		return
	}
	d.Handler()(w, r)
}
