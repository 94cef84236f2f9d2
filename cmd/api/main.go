package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opshr/workforce-automation/internal/config"
	appHTTP "github.com/opshr/workforce-automation/internal/handler/http"
	"github.com/opshr/workforce-automation/internal/pkg/cron"
	"github.com/opshr/workforce-automation/internal/pkg/database"
	"github.com/opshr/workforce-automation/internal/repository/postgresql"
	attendanceService "github.com/opshr/workforce-automation/internal/service/attendance"
	payrollService "github.com/opshr/workforce-automation/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	shift := attendanceService.ShiftConfig{
		StartHour:   cfg.Automation.ShiftStartHour,
		StartMinute: cfg.Automation.ShiftStartMinute,
		EndHour:     cfg.Automation.ShiftEndHour,
		EndMinute:   cfg.Automation.ShiftEndMinute,
	}
	automationSvc := attendanceService.NewAutomationService(employeeRepo, attendanceRepo, holidayRepo, leaveRepo, shift)

	rates := payrollService.Rates{
		StandardMonthlyHours: cfg.Payroll.StandardMonthlyHours,
		TaxRate:              cfg.Payroll.TaxRate,
		OtherDeductionRate:   cfg.Payroll.OtherDeductionRate,
	}
	payrollSvc := payrollService.NewPayrollService(employeeRepo, overtimeRepo, adjustmentRepo, bonusRepo, payrollRepo, rates)

	scheduler := cron.NewScheduler()
	automationJobs := cron.NewAutomationJobs(automationSvc)
	automationJobs.RegisterJobs(scheduler, cfg.Automation.HistoricalInterval, cfg.Automation.MarkInterval)
	scheduler.Start()
	defer scheduler.Stop()

	automationHandler := appHTTP.NewAutomationHandler(automationSvc, cfg.Automation.MaxRangeDays)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	router := appHTTP.NewRouter(cfg, automationHandler, payrollHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server started", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}
