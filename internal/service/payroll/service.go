package payroll

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshr/workforce-automation/internal/domain/employee"
	"github.com/opshr/workforce-automation/internal/domain/payroll"
	"github.com/opshr/workforce-automation/internal/pkg/validator"
)

// Rates holds the payroll calculation constants.
type Rates struct {
	// StandardMonthlyHours divides the base salary into an hourly overtime
	// rate.
	StandardMonthlyHours int64
	TaxRate              decimal.Decimal
	OtherDeductionRate   decimal.Decimal
}

// DefaultRates: 160 standard hours, 15% tax, 2% other deductions.
func DefaultRates() Rates {
	return Rates{
		StandardMonthlyHours: 160,
		TaxRate:              decimal.NewFromFloat(0.15),
		OtherDeductionRate:   decimal.NewFromFloat(0.02),
	}
}

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	overtimeRepo   payroll.OvertimeRepository
	adjustmentRepo payroll.AdjustmentRepository
	bonusRepo      payroll.BonusRepository
	payrollRepo    payroll.PayrollRepository
	rates          Rates
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	overtimeRepo payroll.OvertimeRepository,
	adjustmentRepo payroll.AdjustmentRepository,
	bonusRepo payroll.BonusRepository,
	payrollRepo payroll.PayrollRepository,
	rates Rates,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		overtimeRepo:   overtimeRepo,
		adjustmentRepo: adjustmentRepo,
		bonusRepo:      bonusRepo,
		payrollRepo:    payrollRepo,
		rates:          rates,
	}
}

// Recalculate recomputes one employee's payroll record for one period.
// Errors propagate to the caller without retry.
func (s *PayrollServiceImpl) Recalculate(ctx context.Context, employeeID string, month, year int) (payroll.RecalculationResult, error) {
	if errs := validator.ValidatePeriod(month, year); len(errs) > 0 {
		return payroll.RecalculationResult{}, errs
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.RecalculationResult{}, err
	}

	baseSalary := decimal.Zero
	if emp.BaseSalary != nil {
		baseSalary = *emp.BaseSalary
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	overtimeHours, overtimeCount, err := s.overtimeRepo.SumApprovedHours(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return payroll.RecalculationResult{}, err
	}

	totalAdjustments, adjustmentCount, err := s.adjustmentRepo.SumForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return payroll.RecalculationResult{}, err
	}

	totalBonuses, bonusCount, err := s.bonusRepo.SumForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return payroll.RecalculationResult{}, err
	}

	// Hourly overtime rate derived from the standard monthly hours, rounded
	// to a whole amount before multiplying.
	overtimeRate := baseSalary.Div(decimal.NewFromInt(s.rates.StandardMonthlyHours)).Round(0)
	overtimePay := overtimeHours.Mul(overtimeRate)

	grossSalary := baseSalary.Add(overtimePay).Add(totalAdjustments).Add(totalBonuses)
	taxDeduction := grossSalary.Mul(s.rates.TaxRate).Round(0)
	otherDeductions := grossSalary.Mul(s.rates.OtherDeductionRate).Round(0)
	netSalary := grossSalary.Sub(taxDeduction).Sub(otherDeductions)

	stored, err := s.payrollRepo.Upsert(ctx, payroll.PayrollRecord{
		EmployeeID:       employeeID,
		PeriodMonth:      month,
		PeriodYear:       year,
		BaseSalary:       baseSalary,
		OvertimePay:      overtimePay,
		TotalBonuses:     totalBonuses,
		TotalAdjustments: totalAdjustments,
		GrossSalary:      grossSalary,
		TaxDeduction:     taxDeduction,
		OtherDeductions:  otherDeductions,
		NetSalary:        netSalary,
	})
	if err != nil {
		return payroll.RecalculationResult{}, err
	}

	return payroll.RecalculationResult{
		Record: stored,
		Breakdown: payroll.Breakdown{
			BaseSalary:         baseSalary,
			TotalOvertimeHours: overtimeHours,
			OvertimeRate:       overtimeRate,
			OvertimePay:        overtimePay,
			TotalAdjustments:   totalAdjustments,
			TotalBonuses:       totalBonuses,
			GrossSalary:        grossSalary,
			TaxDeduction:       taxDeduction,
			OtherDeductions:    otherDeductions,
			NetSalary:          netSalary,
		},
		OvertimeEntries: overtimeCount,
		AdjustmentCount: adjustmentCount,
		BonusCount:      bonusCount,
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		Department:      emp.Department,
	}, nil
}

// BulkRecalculate runs Recalculate for every employee with role employee.
// Best-effort: a failing employee is logged and skipped.
func (s *PayrollServiceImpl) BulkRecalculate(ctx context.Context, month, year int) ([]payroll.RecalculationResult, error) {
	if errs := validator.ValidatePeriod(month, year); len(errs) > 0 {
		return nil, errs
	}

	employees, err := s.employeeRepo.ListByRole(ctx, employee.RoleEmployee)
	if err != nil {
		return nil, err
	}

	results := make([]payroll.RecalculationResult, 0, len(employees))
	for _, emp := range employees {
		result, err := s.Recalculate(ctx, emp.ID, month, year)
		if err != nil {
			slog.Error("Payroll recalculation failed for employee",
				"employee_id", emp.ID,
				"month", month,
				"year", year,
				"error", err)
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// Summarize aggregates stored payroll records for the period.
func (s *PayrollServiceImpl) Summarize(ctx context.Context, month, year int) (payroll.Summary, error) {
	if errs := validator.ValidatePeriod(month, year); len(errs) > 0 {
		return payroll.Summary{}, errs
	}

	current, err := s.payrollRepo.PeriodTotals(ctx, month, year)
	if err != nil {
		return payroll.Summary{}, err
	}

	yearToDate, err := s.payrollRepo.YearToDateTotals(ctx, year, month)
	if err != nil {
		return payroll.Summary{}, err
	}

	previousYear, err := s.payrollRepo.FullYearTotals(ctx, year-1)
	if err != nil {
		return payroll.Summary{}, err
	}

	records, err := s.payrollRepo.ListForPeriod(ctx, month, year)
	if err != nil {
		return payroll.Summary{}, err
	}

	return payroll.Summary{
		PeriodMonth:   month,
		PeriodYear:    year,
		Current:       current,
		YearToDate:    yearToDate,
		PreviousYear:  previousYear,
		GrowthPercent: growthPercent(yearToDate.TotalNet, previousYear.TotalNet),
		ByDepartment:  departmentTotals(records),
	}, nil
}

// growthPercent is zero when there is no previous-year baseline.
func growthPercent(currentNet, previousNet decimal.Decimal) decimal.Decimal {
	if previousNet.IsZero() {
		return decimal.Zero
	}
	return currentNet.Sub(previousNet).Mul(decimal.NewFromInt(100)).DivRound(previousNet, 2)
}

func departmentTotals(records []payroll.PayrollRecord) []payroll.DepartmentTotals {
	byDept := make(map[string]*payroll.DepartmentTotals)
	for _, rec := range records {
		dept := ""
		if rec.Department != nil {
			dept = *rec.Department
		}
		totals, ok := byDept[dept]
		if !ok {
			totals = &payroll.DepartmentTotals{Department: dept, TotalNet: decimal.Zero}
			byDept[dept] = totals
		}
		totals.EmployeeCount++
		totals.TotalNet = totals.TotalNet.Add(rec.NetSalary)
	}

	result := make([]payroll.DepartmentTotals, 0, len(byDept))
	for _, totals := range byDept {
		totals.AverageNet = totals.TotalNet.DivRound(decimal.NewFromInt(int64(totals.EmployeeCount)), 2)
		result = append(result, *totals)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Department < result[j].Department })
	return result
}
