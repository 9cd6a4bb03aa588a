package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/livingword/site/internal/service"
	"github.com/livingword/site/internal/validation"
)

type reportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *reportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

type reportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/report.
func (h *reportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	err = validation.ValidateName(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	err = validation.ValidateEmail(email)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	err = validation.ValidateMessage(req.Message)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.reportService.Send(r.Context(), name, email, req.Message)
	if err != nil {
		slog.Error("report send failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to send report")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
