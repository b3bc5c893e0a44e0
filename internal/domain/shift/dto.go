package shift

import (
	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT-WISE ATTENDANCE DTOs
// ========================================

type ShiftAttendanceRequest struct {
	Date    string `json:"date"`
	ShiftID string `json:"shift_id"` // "all" or one shift id
	Search  string `json:"search"`
	Status  string `json:"status"` // "all" or a normalized status value
}

func (r *ShiftAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, attendance.ValidStatusFilters()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, present, absent, late, half-day",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftRosterResponse is one shift block in the wire shape the shift-wise
// attendance screen consumes.
type ShiftRosterResponse struct {
	ShiftID           string                           `json:"shift_id"`
	ShiftNumber       int                              `json:"shift_number"`
	ShiftStartTime    string                           `json:"shift_start_time"`
	ShiftEndTime      string                           `json:"shift_end_time"`
	AttendanceRecords []attendance.DailyRecordResponse `json:"attendance_records"`
	Summary           attendance.StatusCounts          `json:"summary"`
}

type ShiftAttendanceResponse struct {
	Date            string                `json:"date"`
	Shifts          []ShiftRosterResponse `json:"shifts"`
	UnassignedCount int                   `json:"unassigned_count"`
}
