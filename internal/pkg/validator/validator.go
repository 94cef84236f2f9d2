package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation (YYYY-MM-DD)
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Month validation
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// Year validation. Payroll periods before 2000 or far in the future are
// treated as caller mistakes.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= time.Now().Year()+1
}

// ValidatePeriod collects month/year errors for payroll operations.
func ValidatePeriod(month, year int) ValidationErrors {
	var errs ValidationErrors
	if !IsValidMonth(month) {
		errs = append(errs, ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !IsValidYear(year) {
		errs = append(errs, ValidationError{Field: "year", Message: "must be a plausible payroll year"})
	}
	return errs
}
