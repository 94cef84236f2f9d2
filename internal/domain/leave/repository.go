package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// HasApprovedLeaveOn reports whether the employee has an approved leave
	// application whose [start_date, end_date] range covers the given day.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, day time.Time) (bool, error)
}
