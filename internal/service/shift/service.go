package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
	"github.com/staffhub-io/ess-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      shift.ShiftRepository
}

func NewShiftService(attendanceRepo attendance.AttendanceRepository, shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
	}
}

// ShiftAttendance implements shift.ShiftService.
func (s *ShiftServiceImpl) ShiftAttendance(ctx context.Context, req shift.ShiftAttendanceRequest) (shift.ShiftAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftAttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.ShiftAttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	defs, err := s.shiftRepo.ListDefinitions(ctx)
	if err != nil {
		return shift.ShiftAttendanceResponse{}, fmt.Errorf("failed to list shift definitions: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return shift.ShiftAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	// Partition against every known shift so records belonging to
	// non-requested shifts never count as unassigned
	classified := attendance.ClassifyAll(records)
	rosters, unassigned := shift.Partition(classified, defs)

	if req.ShiftID != "" && req.ShiftID != "all" {
		narrowed := make([]shift.Roster, 0, 1)
		for _, roster := range rosters {
			if roster.ShiftID == req.ShiftID {
				narrowed = append(narrowed, roster)
			}
		}
		rosters = narrowed
	}

	responses := make([]shift.ShiftRosterResponse, 0, len(rosters))
	for _, roster := range rosters {
		// Search and status filters narrow each shift's rows independently;
		// the summary keeps reflecting the whole shift
		filtered := attendance.FilterRoster(roster.Records, req.Search, req.Status)

		recordResponses := make([]attendance.DailyRecordResponse, 0, len(filtered))
		for _, rec := range filtered {
			recordResponses = append(recordResponses, attendance.NewDailyRecordResponse(rec))
		}

		responses = append(responses, shift.ShiftRosterResponse{
			ShiftID:           roster.ShiftID,
			ShiftNumber:       roster.Number,
			ShiftStartTime:    roster.StartTime,
			ShiftEndTime:      roster.EndTime,
			AttendanceRecords: recordResponses,
			Summary:           roster.Summary,
		})
	}

	return shift.ShiftAttendanceResponse{
		Date:            req.Date,
		Shifts:          responses,
		UnassignedCount: unassigned,
	}, nil
}
