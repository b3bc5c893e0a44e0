package overtime

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// ========================================
// OVERTIME SUMMARY DTOs
// ========================================

type OvertimeSummaryRequest struct {
	Month      string `json:"month"` // "YYYY-MM"
	Search     string `json:"search"`
	Department string `json:"department"` // "all" or an exact department name
}

func (r *OvertimeSummaryRequest) Validate() error {
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

// OvertimeSummary is one employee's overtime month, in the wire shape the
// overtime calculation screen consumes.
type OvertimeSummary struct {
	EmployeeID         string          `json:"employeeId"`
	Name               string          `json:"name"`
	Department         string          `json:"department"`
	TotalOvertimeHours float64         `json:"totalOvertimeHours"`
	OvertimeDays       int             `json:"overtimeDays"`
	OvertimeRate       decimal.Decimal `json:"overtimeRate"` // currency per hour
	TotalOvertimePay   decimal.Decimal `json:"totalOvertimePay"`
}

type OvertimeTotals struct {
	TotalEmployees       int             `json:"totalEmployees"`
	TotalOvertimeHours   float64         `json:"totalOvertimeHours"`
	TotalOvertimeDays    int             `json:"totalOvertimeDays"`
	TotalOvertimePay     decimal.Decimal `json:"totalOvertimePay"`
	AverageOvertimeHours float64         `json:"averageOvertimeHours"`
}

type OvertimeSummaryReport struct {
	Month  string            `json:"month"`
	Data   []OvertimeSummary `json:"data"`
	Totals OvertimeTotals    `json:"totals"`
}

// ========================================
// DEPARTMENT OVERTIME DTOs
// ========================================

type DepartmentOvertimeSummary struct {
	Department           string          `json:"department"`
	EmployeeCount        int             `json:"employeeCount"`
	TotalOvertimeHours   float64         `json:"totalOvertimeHours"`
	TotalOvertimePay     decimal.Decimal `json:"totalOvertimePay"`
	AverageOvertimeHours float64         `json:"averageOvertimeHours"`
}

type DepartmentOvertimeReport struct {
	Month string                      `json:"month"`
	Data  []DepartmentOvertimeSummary `json:"data"`
}
