package attendance

import "strings"

// zeroWorkingHours is the default when the source omits total_working_hours.
const zeroWorkingHours = "00:00:00"

// statusTable maps the source's status strings (lower-cased) to the
// normalized enum. Every screen resolves statuses through this one table.
var statusTable = map[string]Status{
	"half day": StatusHalfDay,
	"absent":   StatusAbsent,
	"late":     StatusLate,
	"present":  StatusPresent,
}

// Classify derives the normalized status and working-hours figure for one raw
// record. Unrecognized or missing status strings resolve to absent: an
// ambiguous record must never silently read as present. Malformed fields
// degrade to safe defaults; Classify never fails.
func Classify(rec Record) Classified {
	status, ok := statusTable[strings.ToLower(strings.TrimSpace(rec.RawStatus))]
	if !ok {
		status = StatusAbsent
	}

	workingHours := zeroWorkingHours
	if rec.WorkingHours != nil && *rec.WorkingHours != "" {
		workingHours = *rec.WorkingHours
	}

	var lateBy *string
	if rec.OutStatus != nil && strings.EqualFold(strings.TrimSpace(*rec.OutStatus), "late") {
		lateBy = rec.TimeIn
	}

	return Classified{
		Record:       rec,
		Status:       status,
		WorkingHours: workingHours,
		LateBy:       lateBy,
	}
}

// ClassifyAll classifies a batch, preserving input order. One bad record never
// prevents classification of the rest.
func ClassifyAll(records []Record) []Classified {
	classified := make([]Classified, 0, len(records))
	for _, rec := range records {
		classified = append(classified, Classify(rec))
	}
	return classified
}

// StatusCounts tallies classified records per status bucket.
type StatusCounts struct {
	Present int `json:"present_count"`
	Absent  int `json:"absent_count"`
	Late    int `json:"late_count"`
	HalfDay int `json:"halfday_count"`
}

// CountByStatus computes the summary counts shown on dashboard cards and
// per-shift summaries.
func CountByStatus(records []Classified) StatusCounts {
	var counts StatusCounts
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			counts.Present++
		case StatusAbsent:
			counts.Absent++
		case StatusLate:
			counts.Late++
		case StatusHalfDay:
			counts.HalfDay++
		}
	}
	return counts
}
