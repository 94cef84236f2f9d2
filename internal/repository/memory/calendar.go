package memory

import (
	"context"
	"sync"
	"time"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/domain/leave"
)

type HolidayRepository struct {
	mu       sync.RWMutex
	holidays []attendance.Holiday
}

func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{}
}

func (r *HolidayRepository) Add(h attendance.Holiday) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holidays = append(r.holidays, h)
}

func (r *HolidayRepository) IsHoliday(_ context.Context, day time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.holidays {
		if sameCalendarDay(h.Date, day) {
			return true, nil
		}
	}
	return false, nil
}

type LeaveRepository struct {
	mu           sync.RWMutex
	applications []leave.LeaveApplication
}

func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{}
}

func (r *LeaveRepository) Add(l leave.LeaveApplication) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applications = append(r.applications, l)
}

func (r *LeaveRepository) HasApprovedLeaveOn(_ context.Context, employeeID string, day time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	for _, l := range r.applications {
		if l.EmployeeID == employeeID && l.Covers(normalized) {
			return true, nil
		}
	}
	return false, nil
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
