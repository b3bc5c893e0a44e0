package report

import "context"

// ReportService defines the interface for the monthly attendance summary and
// department roll-up screens
type ReportService interface {
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryReport, error)

	DepartmentSummary(ctx context.Context, req DepartmentSummaryRequest) (DepartmentSummaryReport, error)

	// ExportMonthlySummary renders the monthly summary as an XLSX workbook and
	// returns the file contents with a suggested filename
	ExportMonthlySummary(ctx context.Context, req MonthlySummaryRequest) ([]byte, string, error)
}
