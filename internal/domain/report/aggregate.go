package report

import (
	"math"
	"sort"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
)

// AggregateMonthly rolls up classified daily records into one MonthlySummary
// per employee for the given period (first day of the month). Records dated
// outside the period are skipped. totalDays counts only the days the source
// actually reported for that employee; missing days are not invented as
// absences. Output is sorted by employee id, so aggregation is invariant to
// the input order of daily records.
func AggregateMonthly(records []attendance.Classified, period time.Time) []MonthlySummary {
	periodStart := time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	byEmployee := make(map[string]*MonthlySummary)
	for _, rec := range records {
		if rec.Date.Before(periodStart) || !rec.Date.Before(periodEnd) {
			continue
		}

		summary, ok := byEmployee[rec.EmployeeID]
		if !ok {
			summary = &MonthlySummary{
				EmployeeID: rec.EmployeeID,
				Name:       rec.Name,
				Department: rec.Department,
			}
			byEmployee[rec.EmployeeID] = summary
		}

		summary.TotalDays++
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLate:
			summary.LateDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		}
		summary.OvertimeHours += rec.OvertimeHours
	}

	summaries := make([]MonthlySummary, 0, len(byEmployee))
	for _, summary := range byEmployee {
		summary.AttendanceRate = attendanceRate(summary.PresentDays, summary.LateDays, summary.TotalDays)
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeID < summaries[j].EmployeeID
	})
	return summaries
}

// attendanceRate is 100 x (present + late) / total, one decimal. Late days
// count toward presence. A month with no recorded days rates 0, never a fault.
func attendanceRate(presentDays, lateDays, totalDays int) float64 {
	if totalDays == 0 {
		return 0
	}
	rate := 100 * float64(presentDays+lateDays) / float64(totalDays)
	return roundOneDecimal(rate)
}

// ComputeMonthlyTotals derives the headline cards from the per-employee rows.
// The overall rate is the unweighted mean of member attendance rates.
func ComputeMonthlyTotals(summaries []MonthlySummary) MonthlyTotals {
	totals := MonthlyTotals{TotalEmployees: len(summaries)}

	var rateSum float64
	for _, s := range summaries {
		totals.TotalPresent += s.PresentDays
		totals.TotalAbsent += s.AbsentDays
		totals.TotalLate += s.LateDays
		rateSum += s.AttendanceRate
	}

	if len(summaries) > 0 {
		totals.OverallAttendanceRate = roundOneDecimal(rateSum / float64(len(summaries)))
	}
	return totals
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
