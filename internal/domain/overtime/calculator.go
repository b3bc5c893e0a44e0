package overtime

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
)

// ComputePay derives overtime pay from hours worked and an hourly rate.
// The model is strictly linear, no tiered rates. Negative inputs are
// rejected, never clamped.
func ComputePay(hours float64, rate decimal.Decimal) (decimal.Decimal, error) {
	if hours < 0 {
		return decimal.Zero, ErrNegativeOvertimeHours
	}
	if rate.IsNegative() {
		return decimal.Zero, ErrNegativeOvertimeRate
	}
	return decimal.NewFromFloat(hours).Mul(rate).Round(2), nil
}

// AggregateMonthly rolls up per-day overtime into one OvertimeSummary per
// employee for the given period. The per-record overtime figure is the single
// source of truth for hours; this aggregator and the monthly attendance
// summary both sum the same field so the two screens always agree. An
// overtime day is a day with strictly more than zero overtime hours. Rates
// are looked up per employee id; employees missing from the map get the zero
// rate. Output is sorted by employee id.
func AggregateMonthly(records []attendance.Classified, period time.Time, rates map[string]decimal.Decimal) ([]OvertimeSummary, error) {
	periodStart := time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	byEmployee := make(map[string]*OvertimeSummary)
	overtimeDates := make(map[string]map[string]bool)

	for _, rec := range records {
		if rec.Date.Before(periodStart) || !rec.Date.Before(periodEnd) {
			continue
		}
		if rec.OvertimeHours < 0 {
			return nil, ErrNegativeOvertimeHours
		}

		summary, ok := byEmployee[rec.EmployeeID]
		if !ok {
			summary = &OvertimeSummary{
				EmployeeID:   rec.EmployeeID,
				Name:         rec.Name,
				Department:   rec.Department,
				OvertimeRate: rates[rec.EmployeeID],
			}
			byEmployee[rec.EmployeeID] = summary
			overtimeDates[rec.EmployeeID] = make(map[string]bool)
		}

		summary.TotalOvertimeHours += rec.OvertimeHours
		if rec.OvertimeHours > 0 {
			overtimeDates[rec.EmployeeID][rec.Date.Format("2006-01-02")] = true
		}
	}

	summaries := make([]OvertimeSummary, 0, len(byEmployee))
	for id, summary := range byEmployee {
		summary.OvertimeDays = len(overtimeDates[id])

		pay, err := ComputePay(summary.TotalOvertimeHours, summary.OvertimeRate)
		if err != nil {
			return nil, err
		}
		summary.TotalOvertimePay = pay
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeID < summaries[j].EmployeeID
	})
	return summaries, nil
}

// ComputeTotals derives the headline cards above the overtime table.
func ComputeTotals(summaries []OvertimeSummary) OvertimeTotals {
	totals := OvertimeTotals{
		TotalEmployees:   len(summaries),
		TotalOvertimePay: decimal.Zero,
	}

	for _, s := range summaries {
		totals.TotalOvertimeHours += s.TotalOvertimeHours
		totals.TotalOvertimeDays += s.OvertimeDays
		totals.TotalOvertimePay = totals.TotalOvertimePay.Add(s.TotalOvertimePay)
	}

	if len(summaries) > 0 {
		totals.AverageOvertimeHours = roundOneDecimal(totals.TotalOvertimeHours / float64(len(summaries)))
	}
	return totals
}

// RollupDepartments groups overtime summaries per department. The average is
// the unweighted mean of member hours for the period. Output is sorted by
// department name.
func RollupDepartments(summaries []OvertimeSummary) []DepartmentOvertimeSummary {
	byDepartment := make(map[string]*DepartmentOvertimeSummary)

	for _, s := range summaries {
		dept, ok := byDepartment[s.Department]
		if !ok {
			dept = &DepartmentOvertimeSummary{
				Department:       s.Department,
				TotalOvertimePay: decimal.Zero,
			}
			byDepartment[s.Department] = dept
		}

		dept.EmployeeCount++
		dept.TotalOvertimeHours += s.TotalOvertimeHours
		dept.TotalOvertimePay = dept.TotalOvertimePay.Add(s.TotalOvertimePay)
	}

	departments := make([]DepartmentOvertimeSummary, 0, len(byDepartment))
	for _, dept := range byDepartment {
		if dept.EmployeeCount > 0 {
			dept.AverageOvertimeHours = roundOneDecimal(dept.TotalOvertimeHours / float64(dept.EmployeeCount))
		}
		departments = append(departments, *dept)
	}

	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})
	return departments
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
