package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/livingword/site/internal/service"
)

type uploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *uploadHandler {
	return &uploadHandler{
		uploadService: uploadService,
	}
}

type uploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// Create handles POST /api/uploads. On success the response carries the
// grant: {uploadUrl, fields, publicGetUrl, fileKey}.
func (h *uploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	grant, err := h.uploadService.CreateGrant(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUpload):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStorageNotConfigured):
			slog.Error("upload grant rejected", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			slog.Error("upload grant failed", "error", err, "filename", req.Filename)
			writeError(w, http.StatusInternalServerError, "failed to create upload")
		}
		return
	}

	writeJSON(w, http.StatusOK, grant)
}
