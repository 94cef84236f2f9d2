package leave

import "time"

type LeaveApplication struct {
	ID         string
	EmployeeID string
	Status     Status
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Covers reports whether the application spans the given calendar day,
// inclusive on both ends. Only approved applications count.
func (l LeaveApplication) Covers(day time.Time) bool {
	if l.Status != StatusApproved {
		return false
	}
	start := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
