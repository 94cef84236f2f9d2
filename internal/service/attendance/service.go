package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/domain/employee"
	"github.com/opshr/workforce-automation/internal/domain/leave"
)

// ShiftConfig is the default shift window stamped onto auto-generated
// records.
type ShiftConfig struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// DefaultShift is the 08:00-17:00 window, 540 working minutes.
func DefaultShift() ShiftConfig {
	return ShiftConfig{StartHour: 8, EndHour: 17}
}

func (s ShiftConfig) workingMinutes() int {
	return (s.EndHour*60 + s.EndMinute) - (s.StartHour*60 + s.StartMinute)
}

const autoGeneratedNote = "Auto-generated by attendance automation"

type AutomationServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    attendance.HolidayRepository
	leaveRepo      leave.LeaveRepository
	shift          ShiftConfig
}

func NewAutomationService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo attendance.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	shift ShiftConfig,
) attendance.AutomationService {
	return &AutomationServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		shift:          shift,
	}
}

// normalizeDay truncates to calendar-day precision in UTC.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay reports whether the day is a weekday and not a registered
// holiday.
func (s *AutomationServiceImpl) IsWorkingDay(ctx context.Context, day time.Time) (bool, error) {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false, nil
	}

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, normalizeDay(day))
	if err != nil {
		return false, fmt.Errorf("holiday lookup: %w", err)
	}
	return !isHoliday, nil
}

// MarkDay applies the marking rules for one employee on one day.
func (s *AutomationServiceImpl) MarkDay(ctx context.Context, employeeID string, day time.Time) (attendance.Outcome, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.OutcomeFailed, err
	}
	return s.markDayForEmployee(ctx, emp, normalizeDay(day))
}

// markDayForEmployee runs the per-day decision chain against an already
// loaded employee. day must be normalized.
func (s *AutomationServiceImpl) markDayForEmployee(ctx context.Context, emp employee.Employee, day time.Time) (attendance.Outcome, error) {
	if !emp.EmployedOn(day) {
		return attendance.OutcomeSkippedNotYetEmployed, nil
	}

	// Existence is checked first so manual entries on non-working days still
	// report AlreadyExists. The insert below is atomic regardless.
	exists, err := s.attendanceRepo.ExistsForDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.OutcomeFailed, fmt.Errorf("attendance existence check: %w", err)
	}
	if exists {
		return attendance.OutcomeAlreadyExists, nil
	}

	working, err := s.IsWorkingDay(ctx, day)
	if err != nil {
		return attendance.OutcomeFailed, err
	}
	if !working {
		return attendance.OutcomeSkippedNonWorkingDay, nil
	}

	onLeave, err := s.leaveRepo.HasApprovedLeaveOn(ctx, emp.ID, day)
	if err != nil {
		return attendance.OutcomeFailed, fmt.Errorf("leave lookup: %w", err)
	}
	if onLeave {
		// Leave days are not materialized as records; manual entry is the
		// only path that writes an explicit on-leave status.
		return attendance.OutcomeSkippedOnLeave, nil
	}

	result, err := s.attendanceRepo.InsertIfAbsent(ctx, s.buildRecord(emp.ID, day))
	if err != nil {
		return attendance.OutcomeFailed, fmt.Errorf("attendance insert: %w", err)
	}
	if result == attendance.AlreadyExists {
		// A concurrent run won the insert race.
		return attendance.OutcomeAlreadyExists, nil
	}
	return attendance.OutcomeCreated, nil
}

func (s *AutomationServiceImpl) buildRecord(employeeID string, day time.Time) attendance.Attendance {
	checkIn := day.Add(time.Duration(s.shift.StartHour)*time.Hour + time.Duration(s.shift.StartMinute)*time.Minute)
	checkOut := day.Add(time.Duration(s.shift.EndHour)*time.Hour + time.Duration(s.shift.EndMinute)*time.Minute)
	notes := autoGeneratedNote

	return attendance.Attendance{
		EmployeeID:     employeeID,
		Date:           day,
		CheckIn:        &checkIn,
		CheckOut:       &checkOut,
		WorkingMinutes: s.shift.workingMinutes(),
		Status:         attendance.StatusPresent,
		Notes:          &notes,
		IsManualEntry:  true,
	}
}

// MarkAllForDate marks every automation-eligible employee for one day.
func (s *AutomationServiceImpl) MarkAllForDate(ctx context.Context, day time.Time) (attendance.DaySummary, error) {
	normalized := normalizeDay(day)
	summary := attendance.DaySummary{Date: normalized}

	working, err := s.IsWorkingDay(ctx, normalized)
	if err != nil {
		return summary, err
	}
	if !working {
		// Nothing to do on weekends and holidays.
		return summary, nil
	}

	employees, err := s.employeeRepo.ListAutomationEligible(ctx)
	if err != nil {
		return summary, fmt.Errorf("list employees: %w", err)
	}
	summary.TotalEmployees = len(employees)

	for _, emp := range employees {
		outcome, err := s.markDayForEmployee(ctx, emp, normalized)
		if err != nil {
			slog.Error("Attendance marking failed for employee",
				"employee_id", emp.ID,
				"date", normalized.Format("2006-01-02"),
				"error", err)
		}
		switch outcome {
		case attendance.OutcomeCreated:
			summary.Processed++
		case attendance.OutcomeAlreadyExists:
			summary.AlreadyExists++
		default:
			summary.Skipped++
		}
	}

	return summary, nil
}
