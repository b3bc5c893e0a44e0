package report

import "errors"

var (
	ErrInvalidPeriod          = errors.New("period must be a valid YYYY-MM month")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
