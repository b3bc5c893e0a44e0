package shift

import "github.com/staffhub-io/ess-backend-go/internal/domain/attendance"

// Partition assigns each classified record to exactly one shift by the
// record's shift id, preserving input order within each shift. Records whose
// shift id matches no known definition (or who carry none) are excluded from
// every roster; the count of excluded records is returned so callers can
// surface them instead of losing them silently. Rosters come back in
// definition order, including empty ones.
func Partition(records []attendance.Classified, defs []Definition) ([]Roster, int) {
	rosters := make([]Roster, len(defs))
	index := make(map[string]int, len(defs))
	for i, def := range defs {
		rosters[i] = Roster{Definition: def}
		index[def.ShiftID] = i
	}

	unassigned := 0
	for _, rec := range records {
		if rec.ShiftID == nil {
			unassigned++
			continue
		}
		i, ok := index[*rec.ShiftID]
		if !ok {
			unassigned++
			continue
		}
		rosters[i].Records = append(rosters[i].Records, rec)
	}

	for i := range rosters {
		rosters[i].Summary = attendance.CountByStatus(rosters[i].Records)
	}
	return rosters, unassigned
}
