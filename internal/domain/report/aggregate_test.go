package report

import (
	"testing"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marchDay(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

func marchRecords() []attendance.Classified {
	return attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: marchDay(2), RawStatus: "present"},
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: marchDay(3), RawStatus: "late"},
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: marchDay(4), RawStatus: "absent"},
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: marchDay(5), RawStatus: "half day"},
	})
}

func TestAggregateMonthly_SingleEmployee(t *testing.T) {
	summaries := AggregateMonthly(marchRecords(), marchDay(1))

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "EMP001", s.EmployeeID)
	assert.Equal(t, 4, s.TotalDays)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.HalfDays)

	// (present + late) / total = 2/4
	assert.Equal(t, 50.0, s.AttendanceRate)
}

func TestAggregateMonthly_IgnoresRecordsOutsidePeriod(t *testing.T) {
	records := append(marchRecords(), attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP001", Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), RawStatus: "present"},
		{EmployeeID: "EMP001", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), RawStatus: "present"},
	})...)

	summaries := AggregateMonthly(records, marchDay(1))

	require.Len(t, summaries, 1)
	assert.Equal(t, 4, summaries[0].TotalDays)
}

func TestAggregateMonthly_OrderInvariant(t *testing.T) {
	records := attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP002", Name: "Bob Lim", Department: "Sales", Date: marchDay(2), RawStatus: "present"},
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: marchDay(2), RawStatus: "present"},
		{EmployeeID: "EMP002", Name: "Bob Lim", Department: "Sales", Date: marchDay(3), RawStatus: "absent"},
		{EmployeeID: "EMP001", Name: "Alice Tan", Department: "Engineering", Date: marchDay(3), RawStatus: "late"},
	})
	reversed := make([]attendance.Classified, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}

	forward := AggregateMonthly(records, marchDay(1))
	backward := AggregateMonthly(reversed, marchDay(1))

	assert.Equal(t, forward, backward)
	require.Len(t, forward, 2)
	assert.Equal(t, "EMP001", forward[0].EmployeeID)
	assert.Equal(t, "EMP002", forward[1].EmployeeID)
}

func TestAggregateMonthly_SumsOvertimeHours(t *testing.T) {
	records := attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP001", Date: marchDay(2), RawStatus: "present", OvertimeHours: 2},
		{EmployeeID: "EMP001", Date: marchDay(3), RawStatus: "present", OvertimeHours: 1.5},
	})

	summaries := AggregateMonthly(records, marchDay(1))

	require.Len(t, summaries, 1)
	assert.Equal(t, 3.5, summaries[0].OvertimeHours)
}

func TestAggregateMonthly_Empty(t *testing.T) {
	summaries := AggregateMonthly(nil, marchDay(1))
	assert.Empty(t, summaries)
}

func TestAttendanceRate_ZeroDays(t *testing.T) {
	assert.Equal(t, 0.0, attendanceRate(0, 0, 0))
}

func TestAttendanceRate_Rounding(t *testing.T) {
	// 2/3 -> 66.666... -> 66.7
	assert.Equal(t, 66.7, attendanceRate(2, 0, 3))
}

func TestComputeMonthlyTotals(t *testing.T) {
	summaries := []MonthlySummary{
		{EmployeeID: "EMP001", PresentDays: 18, AbsentDays: 1, LateDays: 1, AttendanceRate: 95.0},
		{EmployeeID: "EMP002", PresentDays: 10, AbsentDays: 5, LateDays: 5, AttendanceRate: 75.0},
	}

	totals := ComputeMonthlyTotals(summaries)

	assert.Equal(t, 2, totals.TotalEmployees)
	assert.Equal(t, 28, totals.TotalPresent)
	assert.Equal(t, 6, totals.TotalAbsent)
	assert.Equal(t, 6, totals.TotalLate)
	assert.Equal(t, 85.0, totals.OverallAttendanceRate)
}

func TestComputeMonthlyTotals_Empty(t *testing.T) {
	totals := ComputeMonthlyTotals(nil)
	assert.Equal(t, MonthlyTotals{}, totals)
}

func TestRollupDepartments(t *testing.T) {
	summaries := []MonthlySummary{
		{EmployeeID: "EMP001", Department: "Engineering", PresentDays: 18, LateDays: 2, AbsentDays: 0, AttendanceRate: 100.0},
		{EmployeeID: "EMP002", Department: "Engineering", PresentDays: 14, LateDays: 2, AbsentDays: 4, AttendanceRate: 80.0},
		{EmployeeID: "EMP003", Department: "Sales", PresentDays: 20, LateDays: 0, AbsentDays: 0, AttendanceRate: 100.0},
	}

	departments := RollupDepartments(summaries)

	require.Len(t, departments, 2)

	eng := departments[0]
	assert.Equal(t, "Engineering", eng.Department)
	assert.Equal(t, 2, eng.EmployeeCount)
	// Late arrivals count as present
	assert.Equal(t, 36, eng.TotalPresent)
	assert.Equal(t, 4, eng.TotalAbsent)
	assert.Equal(t, 4, eng.TotalLate)
	assert.Equal(t, 90.0, eng.AvgAttendanceRate)

	sales := departments[1]
	assert.Equal(t, "Sales", sales.Department)
	assert.Equal(t, 1, sales.EmployeeCount)
	assert.Equal(t, 100.0, sales.AvgAttendanceRate)
}

func TestRollupDepartments_Empty(t *testing.T) {
	assert.Empty(t, RollupDepartments(nil))
}
