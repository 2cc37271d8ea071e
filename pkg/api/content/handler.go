// Package content serves the rendered FAQ/reference articles.
package content

import (
	"encoding/json"
	"net/http"

	core "fold_valuation/pkg/core/content"
)

// Handler holds the loaded article library.
type Handler struct {
	Lib *core.Library
}

// NewHandler creates a content handler over an already-loaded library.
func NewHandler(lib *core.Library) *Handler {
	return &Handler{Lib: lib}
}

// HandleFAQ returns all articles, or one article when ?slug= is given.
func (h *Handler) HandleFAQ(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if slug := r.URL.Query().Get("slug"); slug != "" {
		art, ok := h.Lib.Get(slug)
		if !ok {
			http.Error(w, "Article not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(art)
		return
	}

	json.NewEncoder(w).Encode(h.Lib.Articles())
}
