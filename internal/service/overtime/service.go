package overtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/domain/overtime"
	"github.com/staffhub-io/ess-backend-go/internal/domain/report"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/export"
)

type OvertimeServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	rateRepo       overtime.RateRepository
}

func NewOvertimeService(attendanceRepo attendance.AttendanceRepository, rateRepo overtime.RateRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		attendanceRepo: attendanceRepo,
		rateRepo:       rateRepo,
	}
}

// monthlySummaries fetches one month of records and rolls up overtime per
// employee.
func (s *OvertimeServiceImpl) monthlySummaries(ctx context.Context, month string) ([]overtime.OvertimeSummary, error) {
	period, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, report.ErrInvalidPeriod
	}

	records, err := s.attendanceRepo.ListByPeriod(ctx, period, period.AddDate(0, 1, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	rates, err := s.rateRepo.GetOvertimeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime rates: %w", err)
	}

	classified := attendance.ClassifyAll(records)
	return overtime.AggregateMonthly(classified, period, rates)
}

// MonthlySummary implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) MonthlySummary(ctx context.Context, req overtime.OvertimeSummaryRequest) (overtime.OvertimeSummaryReport, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeSummaryReport{}, err
	}

	summaries, err := s.monthlySummaries(ctx, req.Month)
	if err != nil {
		return overtime.OvertimeSummaryReport{}, err
	}

	filtered := filterSummaries(summaries, req.Search, req.Department)

	return overtime.OvertimeSummaryReport{
		Month:  req.Month,
		Data:   filtered,
		Totals: overtime.ComputeTotals(filtered),
	}, nil
}

// DepartmentSummary implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DepartmentSummary(ctx context.Context, req overtime.OvertimeSummaryRequest) (overtime.DepartmentOvertimeReport, error) {
	if err := req.Validate(); err != nil {
		return overtime.DepartmentOvertimeReport{}, err
	}

	summaries, err := s.monthlySummaries(ctx, req.Month)
	if err != nil {
		return overtime.DepartmentOvertimeReport{}, err
	}

	return overtime.DepartmentOvertimeReport{
		Month: req.Month,
		Data:  overtime.RollupDepartments(summaries),
	}, nil
}

// ExportMonthlySummary implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ExportMonthlySummary(ctx context.Context, req overtime.OvertimeSummaryRequest) ([]byte, string, error) {
	result, err := s.MonthlySummary(ctx, req)
	if err != nil {
		return nil, "", err
	}

	headers := []string{
		"Employee ID", "Name", "Department", "Overtime Hours",
		"Overtime Days", "Overtime Rate", "Total Overtime Pay",
	}
	rows := make([][]interface{}, 0, len(result.Data))
	for _, row := range result.Data {
		rows = append(rows, []interface{}{
			row.EmployeeID, row.Name, row.Department, row.TotalOvertimeHours,
			row.OvertimeDays, row.OvertimeRate.InexactFloat64(), row.TotalOvertimePay.InexactFloat64(),
		})
	}

	file, err := export.BuildWorkbook("Overtime", headers, rows)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	filename := fmt.Sprintf("overtime-summary-%s.xlsx", req.Month)
	return file, filename, nil
}

// filterSummaries narrows the overtime table to the search box and the
// department dropdown, mirroring the monthly summary screen.
func filterSummaries(summaries []overtime.OvertimeSummary, searchTerm, department string) []overtime.OvertimeSummary {
	search := strings.ToLower(strings.TrimSpace(searchTerm))
	filterAll := department == "" || department == "all"

	filtered := make([]overtime.OvertimeSummary, 0, len(summaries))
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
