package overtime

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateRepository provides per-employee overtime rates
type RateRepository interface {
	// GetOvertimeRates returns the hourly overtime rate keyed by employee id
	GetOvertimeRates(ctx context.Context) (map[string]decimal.Decimal, error)
}
