package http

import (
	"net/http"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetDailyRoster(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetDailyRoster handles GET /attendance/daily
func (h *attendanceHandlerImpl) GetDailyRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := attendance.DailyRosterRequest{
		Date:   r.URL.Query().Get("date"),
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if req.Status == "" {
		req.Status = "all"
	}

	result, err := h.attendanceService.DailyRoster(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview handles GET /dashboard/overview
func (h *attendanceHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := attendance.OverviewRequest{
		Date: r.URL.Query().Get("date"),
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	result, err := h.attendanceService.Overview(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
