package attendance

import "time"

type Attendance struct {
	ID                    string
	EmployeeID            string
	Date                  time.Time
	CheckIn               *time.Time
	CheckOut              *time.Time
	WorkingMinutes        int
	Status                string
	IsLate                bool
	LateMinutes           int
	IsEarlyDeparture      bool
	EarlyDepartureMinutes int
	OvertimeMinutes       int
	BreakDuration         int
	Notes                 *string
	IsManualEntry         bool
	Location              *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

const (
	StatusPresent = "present"
	StatusOnLeave = "on_leave"
	StatusAbsent  = "absent"
)

// Holiday is a read-only calendar input. A day matches a holiday when the
// calendar dates are equal, regardless of the stored time-of-day.
type Holiday struct {
	ID   string
	Name string
	Date time.Time
}
