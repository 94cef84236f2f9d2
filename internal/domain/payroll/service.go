package payroll

import "context"

// PayrollService defines the payroll recalculation core.
type PayrollService interface {
	// Recalculate recomputes one employee's record for one period and
	// upserts it, preserving workflow status and approval/payment metadata.
	// Errors propagate directly; single-entity recalculation is not
	// partial-failure tolerant.
	Recalculate(ctx context.Context, employeeID string, month, year int) (RecalculationResult, error)

	// BulkRecalculate runs Recalculate for every employee with role
	// employee. Individual failures are logged and skipped.
	BulkRecalculate(ctx context.Context, month, year int) ([]RecalculationResult, error)

	// Summarize aggregates stored records for the period: current totals and
	// status breakdown, year-to-date, previous year, year-over-year growth,
	// and a per-department breakdown.
	Summarize(ctx context.Context, month, year int) (Summary, error)
}
