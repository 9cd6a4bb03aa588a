package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/livingword/site/internal/service"
)

type pageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *pageHandler {
	return &pageHandler{
		pageService: pageService,
	}
}

// Show serves a content page payload, from the render cache when warm.
func (h *pageHandler) Show(w http.ResponseWriter, r *http.Request) {
	payload, err := h.pageService.Render(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPage) {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		slog.Error("page render failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		slog.Error("failed to write page response", "error", err)
	}
}
