package handler

import (
	"log/slog"
	"net/http"

	"github.com/livingword/site/internal/model"
	"github.com/livingword/site/internal/service"
)

type searchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *searchHandler {
	return &searchHandler{
		searchService: searchService,
	}
}

type searchResponse struct {
	Results *model.SearchResults `json:"results"`
}

// Search handles GET /api/search?q=. All five category slots are always
// present in the response; a failed lookup fails the whole request, no
// partial envelope is ever returned.
func (h *searchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.searchService.Search(r.Context(), query)
	if err != nil {
		slog.Error("search failed", "error", err, "query", query)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}
