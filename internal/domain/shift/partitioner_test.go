package shift

import (
	"testing"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testDefinitions() []Definition {
	return []Definition{
		{ShiftID: "shift-1", Number: 1, StartTime: "06:00:00", EndTime: "14:00:00"},
		{ShiftID: "shift-2", Number: 2, StartTime: "14:00:00", EndTime: "22:00:00"},
		{ShiftID: "shift-3", Number: 3, StartTime: "22:00:00", EndTime: "06:00:00"},
	}
}

func TestPartition(t *testing.T) {
	records := attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP001", RawStatus: "present", ShiftID: strPtr("shift-1")},
		{EmployeeID: "EMP002", RawStatus: "late", ShiftID: strPtr("shift-1")},
		{EmployeeID: "EMP003", RawStatus: "absent", ShiftID: strPtr("shift-2")},
	})

	rosters, unassigned := Partition(records, testDefinitions())

	require.Len(t, rosters, 3)
	assert.Equal(t, 0, unassigned)

	first := rosters[0]
	assert.Equal(t, "shift-1", first.ShiftID)
	require.Len(t, first.Records, 2)
	assert.Equal(t, "EMP001", first.Records[0].EmployeeID)
	assert.Equal(t, "EMP002", first.Records[1].EmployeeID)
	assert.Equal(t, 1, first.Summary.Present)
	assert.Equal(t, 1, first.Summary.Late)

	second := rosters[1]
	require.Len(t, second.Records, 1)
	assert.Equal(t, 1, second.Summary.Absent)

	// A shift with no records still comes back, empty
	third := rosters[2]
	assert.Empty(t, third.Records)
	assert.Equal(t, attendance.StatusCounts{}, third.Summary)
}

func TestPartition_UnknownAndMissingShiftIDs(t *testing.T) {
	records := attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP001", RawStatus: "present", ShiftID: strPtr("shift-1")},
		{EmployeeID: "EMP002", RawStatus: "present", ShiftID: strPtr("shift-99")},
		{EmployeeID: "EMP003", RawStatus: "present"},
	})

	rosters, unassigned := Partition(records, testDefinitions())

	assert.Equal(t, 2, unassigned)

	total := 0
	for _, roster := range rosters {
		total += len(roster.Records)
	}
	assert.Equal(t, 1, total)
}

func TestPartition_RostersFollowDefinitionOrder(t *testing.T) {
	rosters, _ := Partition(nil, testDefinitions())

	require.Len(t, rosters, 3)
	assert.Equal(t, 1, rosters[0].Number)
	assert.Equal(t, 2, rosters[1].Number)
	assert.Equal(t, 3, rosters[2].Number)
}

func TestPartition_NoDefinitions(t *testing.T) {
	records := attendance.ClassifyAll([]attendance.Record{
		{EmployeeID: "EMP001", RawStatus: "present", ShiftID: strPtr("shift-1")},
	})

	rosters, unassigned := Partition(records, nil)

	assert.Empty(t, rosters)
	assert.Equal(t, 1, unassigned)
}
