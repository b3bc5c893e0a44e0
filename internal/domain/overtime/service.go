package overtime

import "context"

// OvertimeService defines the interface for the overtime calculation screen
type OvertimeService interface {
	MonthlySummary(ctx context.Context, req OvertimeSummaryRequest) (OvertimeSummaryReport, error)

	DepartmentSummary(ctx context.Context, req OvertimeSummaryRequest) (DepartmentOvertimeReport, error)

	// ExportMonthlySummary renders the overtime summary as an XLSX workbook
	ExportMonthlySummary(ctx context.Context, req OvertimeSummaryRequest) ([]byte, string, error)
}
