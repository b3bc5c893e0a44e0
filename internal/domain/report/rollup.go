package report

import "sort"

// RollupDepartments groups per-employee monthly summaries into per-department
// summaries. avgAttendanceRate is the unweighted mean of member rates, not
// weighted by headcount-days. totalPresent counts late arrivals as present,
// the same convention the monthly attendance rate uses. Output is sorted by
// department name.
func RollupDepartments(summaries []MonthlySummary) []DepartmentSummary {
	byDepartment := make(map[string]*DepartmentSummary)
	rateSums := make(map[string]float64)

	for _, s := range summaries {
		dept, ok := byDepartment[s.Department]
		if !ok {
			dept = &DepartmentSummary{Department: s.Department}
			byDepartment[s.Department] = dept
		}

		dept.EmployeeCount++
		dept.TotalPresent += s.PresentDays + s.LateDays
		dept.TotalAbsent += s.AbsentDays
		dept.TotalLate += s.LateDays
		rateSums[s.Department] += s.AttendanceRate
	}

	departments := make([]DepartmentSummary, 0, len(byDepartment))
	for name, dept := range byDepartment {
		if dept.EmployeeCount > 0 {
			dept.AvgAttendanceRate = roundOneDecimal(rateSums[name] / float64(dept.EmployeeCount))
		}
		departments = append(departments, *dept)
	}

	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})
	return departments
}
