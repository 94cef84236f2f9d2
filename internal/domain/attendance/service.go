package attendance

import (
	"context"
	"time"
)

// AutomationService defines the attendance automation core: per-day marking
// with idempotency guarantees, plus range and full-history backfill.
type AutomationService interface {
	// MarkDay applies the marking rules for one employee on one calendar day.
	// Repeated calls for the same (employee, day) never duplicate or alter
	// stored records.
	MarkDay(ctx context.Context, employeeID string, day time.Time) (Outcome, error)

	// MarkAllForDate runs MarkDay for every automation-eligible employee.
	// Short-circuits with a zero summary on non-working days. Individual
	// failures are counted as skipped and do not abort the run.
	MarkAllForDate(ctx context.Context, day time.Time) (DaySummary, error)

	// BackfillRange runs MarkAllForDate for each day from start through end
	// inclusive, returning summaries in date order. Callers bound the range
	// size before invoking.
	BackfillRange(ctx context.Context, start, end time.Time) ([]DaySummary, error)

	// BackfillAllHistorical fills attendance gaps for every eligible employee
	// from their hire date through yesterday. Safe to re-run at any cadence.
	BackfillAllHistorical(ctx context.Context) (HistoricalSummary, error)
}
