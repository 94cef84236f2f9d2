package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OvertimeRepository interface {
	// SumApprovedHours sums hours_worked over approved overtime entries for
	// the employee with date in [from, to), returning the total and the
	// number of entries counted.
	SumApprovedHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, int, error)
}

type AdjustmentRepository interface {
	// SumForPeriod sums adjustment amounts for (employee, month, year),
	// returning the total and the entry count.
	SumForPeriod(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, int, error)
}

type BonusRepository interface {
	// SumForPeriod sums bonus amounts for (employee, month, year), returning
	// the total and the entry count.
	SumForPeriod(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, int, error)
}

type PayrollRepository interface {
	// GetByEmployeePeriod returns the record for (employee, month, year) or
	// ErrPayrollRecordNotFound.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)

	// Upsert inserts the record, or on (employee_id, period_month,
	// period_year) conflict overwrites the financial columns only. Status,
	// approved_by/at and paid_by/at are never touched by the upsert.
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// ListForPeriod returns all records for (month, year) with employee name
	// and department joined in.
	ListForPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)

	// PeriodTotals aggregates stored records for (month, year).
	PeriodTotals(ctx context.Context, month, year int) (PeriodTotals, error)

	// YearToDateTotals aggregates records with period_year = year and
	// period_month <= throughMonth.
	YearToDateTotals(ctx context.Context, year, throughMonth int) (YearTotals, error)

	// FullYearTotals aggregates all records with period_year = year.
	FullYearTotals(ctx context.Context, year int) (YearTotals, error)
}
