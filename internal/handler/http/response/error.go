package response

import (
	"errors"
	"net/http"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/domain/employee"
	"github.com/opshr/workforce-automation/internal/domain/payroll"
	"github.com/opshr/workforce-automation/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, attendance.ErrRangeTooLarge):
		BadRequest(w, "Requested date range exceeds the allowed maximum", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
