package attendance

import "errors"

// Attendance automation domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidRange       = errors.New("start date must not be after end date")
	ErrRangeTooLarge      = errors.New("requested date range exceeds the allowed maximum")
)
