package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestClassify_StatusNormalization(t *testing.T) {
	tests := []struct {
		name      string
		rawStatus string
		want      Status
	}{
		{"present", "present", StatusPresent},
		{"present uppercase", "Present", StatusPresent},
		{"late", "late", StatusLate},
		{"absent", "absent", StatusAbsent},
		{"half day", "half day", StatusHalfDay},
		{"half day mixed case", "Half Day", StatusHalfDay},
		{"padded whitespace", "  present  ", StatusPresent},
		{"unknown resolves to absent", "vacation", StatusAbsent},
		{"empty resolves to absent", "", StatusAbsent},
		{"hyphenated variant is not recognized", "half-day-ish", StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(Record{EmployeeID: "EMP001", RawStatus: tt.rawStatus})
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestClassify_WorkingHoursDefault(t *testing.T) {
	withHours := Classify(Record{RawStatus: "present", WorkingHours: strPtr("08:30:00")})
	assert.Equal(t, "08:30:00", withHours.WorkingHours)

	nilHours := Classify(Record{RawStatus: "present"})
	assert.Equal(t, "00:00:00", nilHours.WorkingHours)

	emptyHours := Classify(Record{RawStatus: "present", WorkingHours: strPtr("")})
	assert.Equal(t, "00:00:00", emptyHours.WorkingHours)
}

func TestClassify_LateBy(t *testing.T) {
	// LateBy carries the raw check-in verbatim when out_status flags late
	late := Classify(Record{
		RawStatus: "late",
		OutStatus: strPtr("late"),
		TimeIn:    strPtr("09:45:00"),
	})
	if assert.NotNil(t, late.LateBy) {
		assert.Equal(t, "09:45:00", *late.LateBy)
	}

	onTime := Classify(Record{
		RawStatus: "present",
		OutStatus: strPtr("on time"),
		TimeIn:    strPtr("09:00:00"),
	})
	assert.Nil(t, onTime.LateBy)

	noOutStatus := Classify(Record{RawStatus: "late", TimeIn: strPtr("09:45:00")})
	assert.Nil(t, noOutStatus.LateBy)
}

func TestClassifyAll_PreservesOrderAndCount(t *testing.T) {
	records := []Record{
		{EmployeeID: "EMP003", RawStatus: "late"},
		{EmployeeID: "EMP001", RawStatus: "present"},
		{EmployeeID: "EMP002", RawStatus: "nonsense"},
	}

	classified := ClassifyAll(records)

	assert.Len(t, classified, 3)
	assert.Equal(t, "EMP003", classified[0].EmployeeID)
	assert.Equal(t, "EMP001", classified[1].EmployeeID)
	assert.Equal(t, "EMP002", classified[2].EmployeeID)
	assert.Equal(t, StatusAbsent, classified[2].Status)
}

func TestCountByStatus(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	classified := ClassifyAll([]Record{
		{EmployeeID: "EMP001", Date: day, RawStatus: "present"},
		{EmployeeID: "EMP002", Date: day, RawStatus: "present"},
		{EmployeeID: "EMP003", Date: day, RawStatus: "late"},
		{EmployeeID: "EMP004", Date: day, RawStatus: "half day"},
		{EmployeeID: "EMP005", Date: day, RawStatus: "absent"},
		{EmployeeID: "EMP006", Date: day, RawStatus: "???"},
	})

	counts := CountByStatus(classified)

	assert.Equal(t, 2, counts.Present)
	assert.Equal(t, 2, counts.Absent)
	assert.Equal(t, 1, counts.Late)
	assert.Equal(t, 1, counts.HalfDay)
}

func TestCountByStatus_Empty(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Equal(t, StatusCounts{}, counts)
}
