package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/overtime"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/export"
)

type OvertimeHandler interface {
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	GetDepartmentSummary(w http.ResponseWriter, r *http.Request)
	ExportMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

func overtimeSummaryRequest(r *http.Request) overtime.OvertimeSummaryRequest {
	req := overtime.OvertimeSummaryRequest{
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

// GetMonthlySummary handles GET /overtime/summary
func (h *overtimeHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.overtimeService.MonthlySummary(ctx, overtimeSummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentSummary handles GET /overtime/department-summary
func (h *overtimeHandlerImpl) GetDepartmentSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.overtimeService.DepartmentSummary(ctx, overtimeSummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlySummary handles GET /overtime/summary/export
func (h *overtimeHandlerImpl) ExportMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contents, filename, err := h.overtimeService.ExportMonthlySummary(ctx, overtimeSummaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(contents)
}
