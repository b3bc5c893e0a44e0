package attendance

import "context"

// AttendanceService defines the interface for the daily check-in/out screen
// and the dashboard overview cards
type AttendanceService interface {
	// DailyRoster returns the classified, filtered roster for one day
	DailyRoster(ctx context.Context, req DailyRosterRequest) (DailyRosterResponse, error)

	// Overview returns the day's status counts for the dashboard cards
	Overview(ctx context.Context, req OverviewRequest) (OverviewResponse, error)
}
