package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/report"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	GetDepartmentSummary(w http.ResponseWriter, r *http.Request)
	ExportMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func monthlySummaryRequest(r *http.Request) report.MonthlySummaryRequest {
	req := report.MonthlySummaryRequest{
		Month:      r.URL.Query().Get("month"),
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
	}
	if req.Month == "" {
		req.Month = time.Now().Format("2006-01")
	}
	if req.Department == "" {
		req.Department = "all"
	}
	return req
}

// GetMonthlySummary handles GET /reports/monthly-summary
func (h *reportHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.reportService.MonthlySummary(ctx, monthlySummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentSummary handles GET /reports/department-summary
func (h *reportHandlerImpl) GetDepartmentSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DepartmentSummaryRequest{
		Month: r.URL.Query().Get("month"),
	}
	if req.Month == "" {
		req.Month = time.Now().Format("2006-01")
	}

	result, err := h.reportService.DepartmentSummary(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlySummary handles GET /reports/monthly-summary/export
func (h *reportHandlerImpl) ExportMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contents, filename, err := h.reportService.ExportMonthlySummary(ctx, monthlySummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(contents)
}
