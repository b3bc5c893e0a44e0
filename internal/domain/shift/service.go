package shift

import "context"

// ShiftService defines the interface for the shift-wise attendance screen
type ShiftService interface {
	ShiftAttendance(ctx context.Context, req ShiftAttendanceRequest) (ShiftAttendanceResponse, error)
}
