package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/domain/employee"
)

// BackfillRange marks every day from start through end inclusive. The caller
// bounds the range size before invoking; the orchestrator imposes no cap of
// its own.
func (s *AutomationServiceImpl) BackfillRange(ctx context.Context, start, end time.Time) ([]attendance.DaySummary, error) {
	from := normalizeDay(start)
	to := normalizeDay(end)
	if from.After(to) {
		return nil, attendance.ErrInvalidRange
	}

	var summaries []attendance.DaySummary
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		// Coarse cancellation between days; a committed day is never rolled
		// back.
		if err := ctx.Err(); err != nil {
			return summaries, err
		}

		summary, err := s.MarkAllForDate(ctx, day)
		if err != nil {
			return summaries, fmt.Errorf("mark all for %s: %w", day.Format("2006-01-02"), err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// BackfillAllHistorical fills attendance gaps for every eligible employee
// from their hire date through yesterday. Today is excluded because the
// current day is still in progress. Re-running only fills genuine gaps.
func (s *AutomationServiceImpl) BackfillAllHistorical(ctx context.Context) (attendance.HistoricalSummary, error) {
	var result attendance.HistoricalSummary

	employees, err := s.employeeRepo.ListAutomationEligible(ctx)
	if err != nil {
		return result, fmt.Errorf("list employees: %w", err)
	}
	result.TotalEmployees = len(employees)

	yesterday := normalizeDay(time.Now().UTC()).AddDate(0, 0, -1)

	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		empSummary := s.backfillEmployee(ctx, emp, yesterday)
		result.TotalProcessed += empSummary.Processed
		result.TotalSkipped += empSummary.Skipped
		result.TotalAlreadyExists += empSummary.AlreadyExists
		result.PerEmployee = append(result.PerEmployee, empSummary)
	}

	return result, nil
}

func (s *AutomationServiceImpl) backfillEmployee(ctx context.Context, emp employee.Employee, through time.Time) attendance.EmployeeBackfillSummary {
	from := normalizeDay(emp.CreatedAt)
	summary := attendance.EmployeeBackfillSummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		From:         from,
		To:           through,
	}

	for day := from; !day.After(through); day = day.AddDate(0, 0, 1) {
		outcome, err := s.markDayForEmployee(ctx, emp, day)
		if err != nil {
			slog.Error("Backfill marking failed for employee",
				"employee_id", emp.ID,
				"date", day.Format("2006-01-02"),
				"error", err)
		}
		switch outcome {
		case attendance.OutcomeCreated:
			summary.Processed++
		case attendance.OutcomeAlreadyExists:
			summary.AlreadyExists++
		default:
			summary.Skipped++
		}
	}

	return summary
}
