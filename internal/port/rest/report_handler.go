package rest

import (
	"net/http"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/service"
	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	moderation service.ModerationService
	log        logger.Logger
}

func NewReportHandler(moderation service.ModerationService, log logger.Logger) *ReportHandler {
	return &ReportHandler{moderation: moderation, log: log}
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var report entity.Report
	if !decodeBody(w, r, &report) {
		return
	}

	res, err := h.moderation.ReportProduct(r.Context(), &report)
	if err != nil {
		h.log.Errorf("Failed to create report: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.moderation.Reports(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list reports: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.moderation.DeleteReport(r.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to delete report %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
