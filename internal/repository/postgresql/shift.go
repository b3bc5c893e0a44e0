package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub-io/ess-backend-go/internal/domain/shift"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// ListDefinitions implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListDefinitions(ctx context.Context) ([]shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_number, start_time, end_time
		FROM shifts
		ORDER BY shift_number ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift definitions: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		var def shift.Definition
		if err := rows.Scan(&def.ShiftID, &def.Number, &def.StartTime, &def.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift definition: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift definitions: %w", err)
	}

	return defs, nil
}
