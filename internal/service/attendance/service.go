package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
	}
}

// DailyRoster implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailyRoster(ctx context.Context, req attendance.DailyRosterRequest) (attendance.DailyRosterResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyRosterResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.DailyRosterResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	classified := attendance.ClassifyAll(records)

	// The four status cards sit over the table and follow its filters, so
	// they count the filtered rows, not the whole day
	filtered := attendance.FilterRoster(classified, req.Search, req.Status)
	summary := attendance.CountByStatus(filtered)

	responses := make([]attendance.DailyRecordResponse, 0, len(filtered))
	for _, rec := range filtered {
		responses = append(responses, attendance.NewDailyRecordResponse(rec))
	}

	return attendance.DailyRosterResponse{
		Date:    req.Date,
		Records: responses,
		Summary: summary,
	}, nil
}

// Overview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Overview(ctx context.Context, req attendance.OverviewRequest) (attendance.OverviewResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.OverviewResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.OverviewResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.OverviewResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	classified := attendance.ClassifyAll(records)

	return attendance.OverviewResponse{
		Date:           req.Date,
		TotalEmployees: len(classified),
		Summary:        attendance.CountByStatus(classified),
	}, nil
}
