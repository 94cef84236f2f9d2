package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Status only advances pending -> approved -> paid, driven by an
// approval workflow external to recalculation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

// PayrollRecord is the stored result of one employee's monthly calculation.
// Unique per (employee_id, period_month, period_year). Recalculation rewrites
// the financial fields only; workflow fields belong to the approval flow.
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	PeriodMonth      int
	PeriodYear       int
	BaseSalary       decimal.Decimal
	OvertimePay      decimal.Decimal
	TotalBonuses     decimal.Decimal
	TotalAdjustments decimal.Decimal
	GrossSalary      decimal.Decimal
	TaxDeduction     decimal.Decimal
	OtherDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
	Status           Status
	ApprovedBy       *string
	ApprovedAt       *time.Time
	PaidBy           *string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}

// OvertimeStatus enum for overtime approval.
type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "pending"
	OvertimeStatusApproved OvertimeStatus = "approved"
	OvertimeStatusRejected OvertimeStatus = "rejected"
)

// OvertimeRecord - only approved entries count toward payroll.
type OvertimeRecord struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      OvertimeStatus
	HoursWorked decimal.Decimal
	CreatedAt   time.Time
}

// Adjustment is a signed per-period salary correction.
type Adjustment struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Amount      decimal.Decimal
	Reason      *string
	CreatedAt   time.Time
}

// Bonus is a positive per-period extra payment.
type Bonus struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Amount      decimal.Decimal
	Reason      *string
	CreatedAt   time.Time
}
