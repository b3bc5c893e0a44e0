package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
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

func strPtr(s string) *string {
	return &s
}

func testDayRecords() []attendance.Record {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return []attendance.Record{
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: day, RawStatus: "present", WorkingHours: strPtr("08:00:00")},
		{EmployeeID: "EMP002", Name: "Bob Lim", Department: "Sales", Date: day, RawStatus: "late", OutStatus: strPtr("late"), TimeIn: strPtr("09:45:00")},
		{EmployeeID: "EMP003", Name: "Carol Ng", Department: "Engineering", Date: day, RawStatus: "unknown-status"},
	}
}

func TestDailyRoster(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{records: testDayRecords()})

	result, err := svc.DailyRoster(context.Background(), attendance.DailyRosterRequest{
		Date:   "2026-03-02",
		Status: "all",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", result.Date)
	require.Len(t, result.Records, 3)

	// Unknown status falls back to absent
	assert.Equal(t, "absent", result.Records[2].Status)
	// Missing working hours surface as the zero duration
	assert.Equal(t, "00:00:00", result.Records[1].WorkingHours)
	// late_by echoes the raw check-in
	if assert.NotNil(t, result.Records[1].LateBy) {
		assert.Equal(t, "09:45:00", *result.Records[1].LateBy)
	}

	assert.Equal(t, 1, result.Summary.Present)
	assert.Equal(t, 1, result.Summary.Late)
	assert.Equal(t, 1, result.Summary.Absent)
}

func TestDailyRoster_SummaryFollowsSearchFilter(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{records: testDayRecords()})

	result, err := svc.DailyRoster(context.Background(), attendance.DailyRosterRequest{
		Date:   "2026-03-02",
		Search: "alice",
		Status: "all",
	})

	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "EMP001", result.Records[0].EmployeeID)

	// The status cards count the filtered rows
	assert.Equal(t, 1, result.Summary.Present)
	assert.Equal(t, 0, result.Summary.Late)
	assert.Equal(t, 0, result.Summary.Absent)
}

func TestDailyRoster_SummaryFollowsStatusFilter(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(&stubAttendanceRepo{records: []attendance.Record{
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: day, RawStatus: "present"},
		{EmployeeID: "EMP002", Name: "Bob Lim", Department: "Sales", Date: day, RawStatus: "absent"},
	}})

	result, err := svc.DailyRoster(context.Background(), attendance.DailyRosterRequest{
		Date:   "2026-03-02",
		Status: "present",
	})

	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	// Rows hidden by the status dropdown leave the cards too
	assert.Equal(t, 1, result.Summary.Present)
	assert.Equal(t, 0, result.Summary.Absent)
}

func TestDailyRoster_InvalidRequest(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{})

	_, err := svc.DailyRoster(context.Background(), attendance.DailyRosterRequest{
		Date:   "03/02/2026",
		Status: "all",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "date")

	_, err = svc.DailyRoster(context.Background(), attendance.DailyRosterRequest{
		Date:   "2026-03-02",
		Status: "sick",
	})
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "status")
}

func TestDailyRoster_RepoError(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{err: errors.New("connection refused")})

	_, err := svc.DailyRoster(context.Background(), attendance.DailyRosterRequest{
		Date:   "2026-03-02",
		Status: "all",
	})

	assert.Error(t, err)
}

func TestOverview(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{records: testDayRecords()})

	result, err := svc.Overview(context.Background(), attendance.OverviewRequest{Date: "2026-03-02"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalEmployees)
	assert.Equal(t, 1, result.Summary.Present)
}

func TestOverview_EmptyDay(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{})

	result, err := svc.Overview(context.Background(), attendance.OverviewRequest{Date: "2026-03-02"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalEmployees)
	assert.Equal(t, attendance.StatusCounts{}, result.Summary)
}
