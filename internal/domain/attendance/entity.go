package attendance

import "time"

// Status is the normalized daily attendance status shown on every screen.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

// ValidStatusFilters returns the accepted values for the status dropdown.
func ValidStatusFilters() []string {
	return []string{"all", string(StatusPresent), string(StatusAbsent), string(StatusLate), string(StatusHalfDay)}
}

// Record is one raw attendance row per employee per day, as supplied by the
// attendance source. Immutable once fetched.
type Record struct {
	EmployeeID    string
	Name          string
	Department    string
	Date          time.Time
	TimeIn        *string // "15:04:05", nil when the employee never clocked in
	TimeOut       *string
	WorkingHours  *string // "15:04:05" elapsed form, nil when the source omits it
	RawStatus     string  // free-form status string from the source
	OutStatus     *string
	Location      *string
	ShiftID       *string
	OvertimeHours float64 // per-day overtime; single source of truth for all roll-ups
}

// Classified is a Record plus its derived, normalized fields. It is recomputed
// from the Record on every request and never stored.
type Classified struct {
	Record
	Status       Status
	WorkingHours string // normalized, "00:00:00" when the source supplied none
	// LateBy carries the raw check-in time when the source flags the day as
	// late via out_status. It is a passthrough, not a computed delay; the
	// consuming dashboard renders it verbatim.
	LateBy *string
}
