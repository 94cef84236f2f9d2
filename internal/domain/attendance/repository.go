package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ExistsForDate reports whether any record exists for the employee on the
	// given calendar day, whether created by automation or a manual path.
	ExistsForDate(ctx context.Context, employeeID string, day time.Time) (bool, error)

	// InsertIfAbsent atomically inserts the record unless one already exists
	// for (employee_id, date). The uniqueness constraint closes the
	// check-then-act window between concurrent automation runs.
	InsertIfAbsent(ctx context.Context, record Attendance) (InsertResult, error)
}

type HolidayRepository interface {
	// IsHoliday reports whether the given calendar day is a registered
	// holiday. Time-of-day on stored holidays is ignored.
	IsHoliday(ctx context.Context, day time.Time) (bool, error)
}
