package attendance

import (
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY ROSTER DTOs
// ========================================

type DailyRosterRequest struct {
	Date   string `json:"date"`
	Search string `json:"search"`
	Status string `json:"status"` // "all" or a normalized status value
}

func (r *DailyRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, ValidStatusFilters()) {
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

// DailyRecordResponse is one roster row in the wire shape the dashboard
// consumes.
type DailyRecordResponse struct {
	EmployeeID   string  `json:"user_id"`
	Name         string  `json:"user_name"`
	Department   string  `json:"designation"`
	TimeIn       *string `json:"time_in"`
	TimeOut      *string `json:"time_out"`
	WorkingHours string  `json:"total_working_hours"`
	Status       string  `json:"status"`
	OutStatus    *string `json:"out_status"`
	LateBy       *string `json:"late_by,omitempty"`
	Location     *string `json:"location"`
}

// NewDailyRecordResponse maps a classified record to its wire shape.
func NewDailyRecordResponse(rec Classified) DailyRecordResponse {
	return DailyRecordResponse{
		EmployeeID:   rec.EmployeeID,
		Name:         rec.Name,
		Department:   rec.Department,
		TimeIn:       rec.TimeIn,
		TimeOut:      rec.TimeOut,
		WorkingHours: rec.WorkingHours,
		Status:       string(rec.Status),
		OutStatus:    rec.OutStatus,
		LateBy:       rec.LateBy,
		Location:     rec.Location,
	}
}

type DailyRosterResponse struct {
	Date    string                `json:"date"`
	Records []DailyRecordResponse `json:"all_records"`
	Summary StatusCounts          `json:"summary"`
}

// ========================================
// DASHBOARD OVERVIEW DTOs
// ========================================

type OverviewRequest struct {
	Date string `json:"date"`
}

func (r *OverviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OverviewResponse struct {
	Date           string       `json:"date"`
	TotalEmployees int          `json:"total_employees"`
	Summary        StatusCounts `json:"summary"`
}
