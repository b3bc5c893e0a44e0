package shift

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records []attendance.Record
	err     error
}

func (s *stubAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return s.records, s.err
}

func (s *stubAttendanceRepo) ListByPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.Record, error) {
	return s.records, s.err
}

type stubShiftRepo struct {
	defs []shift.Definition
	err  error
}

func (s *stubShiftRepo) ListDefinitions(ctx context.Context) ([]shift.Definition, error) {
	return s.defs, s.err
}

func strPtr(s string) *string {
	return &s
}

func testDefs() []shift.Definition {
	return []shift.Definition{
		{ShiftID: "shift-1", Number: 1, StartTime: "06:00:00", EndTime: "14:00:00"},
		{ShiftID: "shift-2", Number: 2, StartTime: "14:00:00", EndTime: "22:00:00"},
	}
}

func testRecords() []attendance.Record {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return []attendance.Record{
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: day, RawStatus: "present", ShiftID: strPtr("shift-1")},
		{EmployeeID: "EMP002", Name: "Bob Lim", Department: "Sales", Date: day, RawStatus: "late", ShiftID: strPtr("shift-1")},
		{EmployeeID: "EMP003", Name: "Carol Ng", Department: "Engineering", Date: day, RawStatus: "present", ShiftID: strPtr("shift-2")},
		{EmployeeID: "EMP004", Name: "Dan Lee", Department: "HR", Date: day, RawStatus: "present", ShiftID: strPtr("shift-99")},
	}
}

func TestShiftAttendance(t *testing.T) {
	svc := NewShiftService(
		&stubAttendanceRepo{records: testRecords()},
		&stubShiftRepo{defs: testDefs()},
	)

	result, err := svc.ShiftAttendance(context.Background(), shift.ShiftAttendanceRequest{
		Date:    "2026-03-02",
		ShiftID: "all",
		Status:  "all",
	})

	require.NoError(t, err)
	require.Len(t, result.Shifts, 2)
	assert.Equal(t, 1, result.UnassignedCount)

	first := result.Shifts[0]
	assert.Equal(t, "shift-1", first.ShiftID)
	assert.Equal(t, 1, first.ShiftNumber)
	require.Len(t, first.AttendanceRecords, 2)
	assert.Equal(t, 1, first.Summary.Present)
	assert.Equal(t, 1, first.Summary.Late)

	second := result.Shifts[1]
	require.Len(t, second.AttendanceRecords, 1)
	assert.Equal(t, "EMP003", second.AttendanceRecords[0].EmployeeID)
}

func TestShiftAttendance_SingleShift(t *testing.T) {
	svc := NewShiftService(
		&stubAttendanceRepo{records: testRecords()},
		&stubShiftRepo{defs: testDefs()},
	)

	result, err := svc.ShiftAttendance(context.Background(), shift.ShiftAttendanceRequest{
		Date:    "2026-03-02",
		ShiftID: "shift-2",
		Status:  "all",
	})

	require.NoError(t, err)
	require.Len(t, result.Shifts, 1)
	assert.Equal(t, "shift-2", result.Shifts[0].ShiftID)
	// Records for other shifts are not lost into this one
	require.Len(t, result.Shifts[0].AttendanceRecords, 1)
}

func TestShiftAttendance_SingleShiftUnassignedCount(t *testing.T) {
	svc := NewShiftService(
		&stubAttendanceRepo{records: testRecords()},
		&stubShiftRepo{defs: testDefs()},
	)

	result, err := svc.ShiftAttendance(context.Background(), shift.ShiftAttendanceRequest{
		Date:    "2026-03-02",
		ShiftID: "shift-1",
		Status:  "all",
	})

	require.NoError(t, err)
	require.Len(t, result.Shifts, 1)
	assert.Equal(t, "shift-1", result.Shifts[0].ShiftID)

	// Only the shift-99 record is unassigned; shift-2 belongs to a known
	// shift even though it was not requested
	assert.Equal(t, 1, result.UnassignedCount)
}

func TestShiftAttendance_FilterKeepsShiftSummary(t *testing.T) {
	svc := NewShiftService(
		&stubAttendanceRepo{records: testRecords()},
		&stubShiftRepo{defs: testDefs()},
	)

	result, err := svc.ShiftAttendance(context.Background(), shift.ShiftAttendanceRequest{
		Date:    "2026-03-02",
		ShiftID: "all",
		Search:  "alice",
		Status:  "all",
	})

	require.NoError(t, err)
	first := result.Shifts[0]
	require.Len(t, first.AttendanceRecords, 1)

	// Summary still reflects the whole shift
	assert.Equal(t, 1, first.Summary.Present)
	assert.Equal(t, 1, first.Summary.Late)
}

func TestShiftAttendance_InvalidDate(t *testing.T) {
	svc := NewShiftService(&stubAttendanceRepo{}, &stubShiftRepo{})

	_, err := svc.ShiftAttendance(context.Background(), shift.ShiftAttendanceRequest{
		Date:    "not-a-date",
		ShiftID: "all",
		Status:  "all",
	})

	assert.Error(t, err)
}
