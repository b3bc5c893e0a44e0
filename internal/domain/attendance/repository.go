package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines the interface for raw attendance rows
type AttendanceRepository interface {
	// ListByDate returns every employee's record for a single day
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByPeriod returns all records with periodStart <= date <= periodEnd
	ListByPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]Record, error)
}
