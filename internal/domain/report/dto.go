package report

import (
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE SUMMARY
// ========================================

type MonthlySummaryRequest struct {
	Month      string `json:"month"` // "YYYY-MM"
	Search     string `json:"search"`
	Department string `json:"department"` // "all" or an exact department name
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummary is one employee's month roll-up, in the wire shape the
// summary table consumes. Late days are a sub-classification of presence:
// attendanceRate counts them as attended, and they are not part of
// presentDays.
type MonthlySummary struct {
	EmployeeID     string  `json:"employeeId"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	TotalDays      int     `json:"totalDays"`
	PresentDays    int     `json:"presentDays"`
	AbsentDays     int     `json:"absentDays"`
	LateDays       int     `json:"lateDays"`
	HalfDays       int     `json:"halfDays"`
	OvertimeHours  float64 `json:"overtimeHours"`
	AttendanceRate float64 `json:"attendanceRate"` // 0-100, one decimal
}

// MonthlyTotals are the headline cards above the summary table.
type MonthlyTotals struct {
	TotalEmployees        int     `json:"totalEmployees"`
	TotalPresent          int     `json:"totalPresent"`
	TotalAbsent           int     `json:"totalAbsent"`
	TotalLate             int     `json:"totalLate"`
	OverallAttendanceRate float64 `json:"overallAttendanceRate"`
}

type MonthlySummaryReport struct {
	Month  string           `json:"month"`
	Data   []MonthlySummary `json:"data"`
	Totals MonthlyTotals    `json:"totals"`
}

// ========================================
// DEPARTMENT SUMMARY
// ========================================

type DepartmentSummaryRequest struct {
	Month string `json:"month"`
}

func (r *DepartmentSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DepartmentSummary groups monthly summaries per department. totalPresent
// includes late arrivals, matching the attendance-rate convention.
type DepartmentSummary struct {
	Department        string  `json:"department"`
	EmployeeCount     int     `json:"employeeCount"`
	AvgAttendanceRate float64 `json:"avgAttendanceRate"` // unweighted mean
	TotalPresent      int     `json:"totalPresent"`
	TotalAbsent       int     `json:"totalAbsent"`
	TotalLate         int     `json:"totalLate"`
}

type DepartmentSummaryReport struct {
	Month string              `json:"month"`
	Data  []DepartmentSummary `json:"data"`
}
