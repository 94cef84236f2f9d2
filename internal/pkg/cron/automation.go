package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
)

// AutomationJobs wires the attendance automation core to the scheduler:
// a full historical backfill on start and daily thereafter, and a
// yesterday-marking pass around day rollover.
type AutomationJobs struct {
	automationSvc attendance.AutomationService
}

func NewAutomationJobs(automationSvc attendance.AutomationService) *AutomationJobs {
	return &AutomationJobs{automationSvc: automationSvc}
}

func (j *AutomationJobs) RegisterJobs(scheduler *Scheduler, historicalInterval, markInterval time.Duration) {
	scheduler.AddJob("backfill_all_historical", historicalInterval, j.BackfillAllHistorical)
	scheduler.AddJob("mark_yesterday", markInterval, j.MarkYesterday)
}

// BackfillAllHistorical fills attendance gaps across every employee's tenure.
// Re-running is safe: marking is idempotent, so only genuine gaps are filled.
func (j *AutomationJobs) BackfillAllHistorical(ctx context.Context) error {
	slog.Info("Cron: starting historical attendance backfill")

	summary, err := j.automationSvc.BackfillAllHistorical(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: historical attendance backfill finished",
		"employees", summary.TotalEmployees,
		"processed", summary.TotalProcessed,
		"skipped", summary.TotalSkipped,
		"already_exists", summary.TotalAlreadyExists)
	return nil
}

// MarkYesterday marks the day that just ended. Only acts during the first
// hour after midnight UTC; other ticks are no-ops.
func (j *AutomationJobs) MarkYesterday(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	slog.Info("Cron: marking attendance for yesterday", "date", yesterday.Format("2006-01-02"))

	summary, err := j.automationSvc.MarkAllForDate(ctx, yesterday)
	if err != nil {
		return err
	}

	slog.Info("Cron: yesterday marking finished",
		"date", summary.Date.Format("2006-01-02"),
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"already_exists", summary.AlreadyExists)
	return nil
}
