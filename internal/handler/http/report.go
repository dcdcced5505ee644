package http

import (
	"fmt"
	"net/http"

	"github.com/fieldops/presence-backend-go/internal/domain/report"
	"github.com/fieldops/presence-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyExcel(w http.ResponseWriter, r *http.Request)
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MonthlyExcel implements ReportHandler.
func (h *reportHandlerImpl) MonthlyExcel(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.MonthlyExcel(r.Context(), monthlyFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamFile(w, file)
}

// MonthlyPDF implements ReportHandler.
func (h *reportHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.MonthlyPDF(r.Context(), monthlyFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamFile(w, file)
}

func streamFile(w http.ResponseWriter, file report.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(file.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
