package content

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// ContentHandler serves the learning hub. Repo may be nil when the service
// runs without a database; calculators keep working, content returns 503.
type ContentHandler struct {
	Repo Repository
}

func (h *ContentHandler) available(w http.ResponseWriter) bool {
	if h.Repo == nil {
		http.Error(w, "Content store unavailable", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	articles, err := h.Repo.ListArticles(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("ListArticles error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if articles == nil {
		articles = []Article{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(articles)
}

func (h *ContentHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	slug := mux.Vars(r)["slug"]
	article, err := h.Repo.GetArticle(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Article not found", http.StatusNotFound)
			return
		}
		log.Printf("GetArticle error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(article)
}

func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	categories, err := h.Repo.ListCategories(r.Context())
	if err != nil {
		log.Printf("ListCategories error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []Category{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}
