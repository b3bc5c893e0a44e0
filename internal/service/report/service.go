package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/domain/report"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
	}
}

// monthlySummaries fetches, classifies and aggregates one month of records.
func (s *ReportServiceImpl) monthlySummaries(ctx context.Context, month string) ([]report.MonthlySummary, error) {
	period, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, report.ErrInvalidPeriod
	}

	periodStart := period
	periodEnd := period.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	classified := attendance.ClassifyAll(records)
	return report.AggregateMonthly(classified, period), nil
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlySummaryReport{}, err
	}

	summaries, err := s.monthlySummaries(ctx, req.Month)
	if err != nil {
		return report.MonthlySummaryReport{}, err
	}

	filtered := filterSummaries(summaries, req.Search, req.Department)

	return report.MonthlySummaryReport{
		Month:  req.Month,
		Data:   filtered,
		Totals: report.ComputeMonthlyTotals(filtered),
	}, nil
}

// DepartmentSummary implements report.ReportService.
func (s *ReportServiceImpl) DepartmentSummary(ctx context.Context, req report.DepartmentSummaryRequest) (report.DepartmentSummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.DepartmentSummaryReport{}, err
	}

	summaries, err := s.monthlySummaries(ctx, req.Month)
	if err != nil {
		return report.DepartmentSummaryReport{}, err
	}

	return report.DepartmentSummaryReport{
		Month: req.Month,
		Data:  report.RollupDepartments(summaries),
	}, nil
}

// ExportMonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) ([]byte, string, error) {
	result, err := s.MonthlySummary(ctx, req)
	if err != nil {
		return nil, "", err
	}

	headers := []string{
		"Employee ID", "Name", "Department", "Total Days", "Present Days",
		"Absent Days", "Late Days", "Half Days", "Overtime Hours", "Attendance Rate (%)",
	}
	rows := make([][]interface{}, 0, len(result.Data))
	for _, row := range result.Data {
		rows = append(rows, []interface{}{
			row.EmployeeID, row.Name, row.Department, row.TotalDays, row.PresentDays,
			row.AbsentDays, row.LateDays, row.HalfDays, row.OvertimeHours, row.AttendanceRate,
		})
	}

	file, err := export.BuildWorkbook("Monthly Attendance", headers, rows)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	filename := fmt.Sprintf("attendance-summary-%s.xlsx", req.Month)
	return file, filename, nil
}

// filterSummaries narrows the monthly table to the search box (name or
// employee id, case-insensitive substring) and the department dropdown.
func filterSummaries(summaries []report.MonthlySummary, searchTerm, department string) []report.MonthlySummary {
	search := strings.ToLower(strings.TrimSpace(searchTerm))
	filterAll := department == "" || department == "all"

	filtered := make([]report.MonthlySummary, 0, len(summaries))
	for _, s := range summaries {
		if search != "" {
			matches := strings.Contains(strings.ToLower(s.Name), search) ||
				strings.Contains(strings.ToLower(s.EmployeeID), search)
			if !matches {
				continue
			}
		}
		if !filterAll && s.Department != department {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
