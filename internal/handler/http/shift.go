package http

import (
	"net/http"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/shift"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	GetShiftAttendance(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// GetShiftAttendance handles GET /attendance/shifts
func (h *shiftHandlerImpl) GetShiftAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := shift.ShiftAttendanceRequest{
		Date:    r.URL.Query().Get("date"),
		ShiftID: r.URL.Query().Get("shift_id"),
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if req.ShiftID == "" {
		req.ShiftID = "all"
	}
	if req.Status == "" {
		req.Status = "all"
	}

	result, err := h.shiftService.ShiftAttendance(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
