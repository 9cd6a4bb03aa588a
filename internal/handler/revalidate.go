package handler

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/livingword/site/internal/service"
)

type revalidateHandler struct {
	pageService *service.PageService
	secret      string
}

func NewRevalidateHandler(pageService *service.PageService, secret string) *revalidateHandler {
	return &revalidateHandler{
		pageService: pageService,
		secret:      secret,
	}
}

type revalidateRequest struct {
	Secret string `json:"secret"`
	Type   string `json:"type"`
	Path   string `json:"path"`
}

// Revalidate handles the content-store webhook: POST /api/revalidate.
// Once past the secret check it always succeeds, whether or not any
// cached render was actually stale.
func (h *revalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	var req revalidateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid secret"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.secret)) != 1 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid secret"})
		return
	}

	paths := h.pageService.Invalidate(req.Type, req.Path)
	slog.Info("revalidated content pages", "type", req.Type, "paths", paths)

	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true,
		"now":         time.Now().UnixMilli(),
	})
}
