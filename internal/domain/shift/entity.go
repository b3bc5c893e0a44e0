package shift

import "github.com/staffhub-io/ess-backend-go/internal/domain/attendance"

// Definition is a configured work shift.
type Definition struct {
	ShiftID   string
	Number    int
	StartTime string // "15:04:05"
	EndTime   string
}

// Roster is one shift's classified records for a day plus its status summary.
// The summary always reflects the shift's full record subset; roster filtering
// narrows Records without touching it.
type Roster struct {
	Definition
	Records []attendance.Classified
	Summary attendance.StatusCounts
}
