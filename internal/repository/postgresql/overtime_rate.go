package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/staffhub-io/ess-backend-go/internal/domain/overtime"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/database"
)

type rateRepositoryImpl struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) overtime.RateRepository {
	return &rateRepositoryImpl{db: db}
}

// GetOvertimeRates implements overtime.RateRepository.
func (r *rateRepositoryImpl) GetOvertimeRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, overtime_rate
		FROM users
		WHERE employee_id IS NOT NULL
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime rates: %w", err)
	}
	defer rows.Close()

	rates := make(map[string]decimal.Decimal)
	for rows.Next() {
		var employeeID string
		var rate decimal.Decimal
		if err := rows.Scan(&employeeID, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan overtime rate: %w", err)
		}
		rates[employeeID] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overtime rates: %w", err)
	}

	return rates, nil
}
