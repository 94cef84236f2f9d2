package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrEmployeeNotFound      = errors.New("employee not found")
)
