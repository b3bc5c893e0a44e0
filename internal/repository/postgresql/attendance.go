package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const recordColumns = `ar.employee_id, u.name, u.department, ar.date,
	   ar.time_in, ar.time_out, ar.working_hours, ar.status, ar.out_status,
	   ar.location, ar.shift_id, ar.overtime_hours`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.EmployeeID,
		&rec.Name,
		&rec.Department,
		&rec.Date,
		&rec.TimeIn,
		&rec.TimeOut,
		&rec.WorkingHours,
		&rec.RawStatus,
		&rec.OutStatus,
		&rec.Location,
		&rec.ShiftID,
		&rec.OvertimeHours,
	)
	return rec, err
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN users u ON u.employee_id = ar.employee_id
		WHERE ar.date = $1
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN users u ON u.employee_id = ar.employee_id
		WHERE ar.date BETWEEN $1 AND $2
		ORDER BY ar.date ASC, u.name ASC
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by period: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}
	return records, nil
}
