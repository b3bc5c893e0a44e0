package attendance

import "strings"

// FilterRoster narrows a classified roster by the search box and status
// dropdown. The search term matches name, employee id or department as a
// case-insensitive substring; an empty term matches everything. statusFilter
// "all" bypasses status matching. Both conditions combine with AND and input
// order is preserved.
func FilterRoster(records []Classified, searchTerm string, statusFilter string) []Classified {
	search := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]Classified, 0, len(records))
	for _, rec := range records {
		if search != "" {
			matchesSearch := strings.Contains(strings.ToLower(rec.Name), search) ||
				strings.Contains(strings.ToLower(rec.EmployeeID), search) ||
				strings.Contains(strings.ToLower(rec.Department), search)
			if !matchesSearch {
				continue
			}
		}

		if statusFilter != "all" && string(rec.Status) != statusFilter {
			continue
		}

		filtered = append(filtered, rec)
	}
	return filtered
}
