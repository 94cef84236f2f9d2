package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshr/workforce-automation/internal/domain/employee"
	"github.com/opshr/workforce-automation/internal/domain/payroll"
	"github.com/opshr/workforce-automation/internal/pkg/validator"
	"github.com/opshr/workforce-automation/internal/repository/memory"
)

type testEnv struct {
	employees   *memory.EmployeeRepository
	overtimes   *memory.OvertimeRepository
	adjustments *memory.AdjustmentRepository
	bonuses     *memory.BonusRepository
	payrolls    *memory.PayrollRepository
	svc         payroll.PayrollService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		employees:   memory.NewEmployeeRepository(),
		overtimes:   memory.NewOvertimeRepository(),
		adjustments: memory.NewAdjustmentRepository(),
		bonuses:     memory.NewBonusRepository(),
	}
	env.payrolls = memory.NewPayrollRepository(env.employees)
	env.svc = NewPayrollService(env.employees, env.overtimes, env.adjustments, env.bonuses, env.payrolls, DefaultRates())
	return env
}

func (env *testEnv) addEmployee(id, department string, baseSalary int64) {
	salary := decimal.NewFromInt(baseSalary)
	env.employees.Add(employee.Employee{
		ID:         id,
		FullName:   "Employee " + id,
		Role:       employee.RoleEmployee,
		Department: department,
		BaseSalary: &salary,
		CreatedAt:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s: want %s, got %s", field, want, got)
}

func TestRecalculate_Breakdown(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	env.overtimes.Add(payroll.OvertimeRecord{
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:      payroll.OvertimeStatusApproved,
		HoursWorked: decimal.NewFromInt(10),
	})
	env.overtimes.Add(payroll.OvertimeRecord{
		// Rejected entries never reach the calculation.
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		Status:      payroll.OvertimeStatusRejected,
		HoursWorked: decimal.NewFromInt(5),
	})
	env.overtimes.Add(payroll.OvertimeRecord{
		// Approved but outside the period.
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Status:      payroll.OvertimeStatusApproved,
		HoursWorked: decimal.NewFromInt(3),
	})
	env.adjustments.Add(payroll.Adjustment{
		EmployeeID: "emp-1", PeriodMonth: 6, PeriodYear: 2024,
		Amount: decimal.NewFromInt(100),
	})
	env.bonuses.Add(payroll.Bonus{
		EmployeeID: "emp-1", PeriodMonth: 6, PeriodYear: 2024,
		Amount: decimal.NewFromInt(50),
	})

	result, err := env.svc.Recalculate(context.Background(), "emp-1", 6, 2024)
	require.NoError(t, err)

	b := result.Breakdown
	assertAmount(t, "3200", b.BaseSalary, "base salary")
	assertAmount(t, "10", b.TotalOvertimeHours, "overtime hours")
	assertAmount(t, "20", b.OvertimeRate, "overtime rate")
	assertAmount(t, "200", b.OvertimePay, "overtime pay")
	assertAmount(t, "100", b.TotalAdjustments, "adjustments")
	assertAmount(t, "50", b.TotalBonuses, "bonuses")
	assertAmount(t, "3550", b.GrossSalary, "gross salary")
	// 3550 * 0.15 = 532.5 rounds half away from zero.
	assertAmount(t, "533", b.TaxDeduction, "tax deduction")
	assertAmount(t, "71", b.OtherDeductions, "other deductions")
	assertAmount(t, "2946", b.NetSalary, "net salary")

	assert.Equal(t, 1, result.OvertimeEntries)
	assert.Equal(t, 1, result.AdjustmentCount)
	assert.Equal(t, 1, result.BonusCount)
	assert.Equal(t, "Employee emp-1", result.EmployeeName)

	assert.Equal(t, payroll.StatusPending, result.Record.Status)
	assertAmount(t, "2946", result.Record.NetSalary, "stored net salary")
}

func TestRecalculate_NoInputs(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)

	result, err := env.svc.Recalculate(context.Background(), "emp-1", 6, 2024)
	require.NoError(t, err)

	assertAmount(t, "3200", result.Breakdown.GrossSalary, "gross salary")
	assertAmount(t, "480", result.Breakdown.TaxDeduction, "tax deduction")
	assertAmount(t, "64", result.Breakdown.OtherDeductions, "other deductions")
	assertAmount(t, "2656", result.Breakdown.NetSalary, "net salary")
}

func TestRecalculate_UnknownEmployee(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Recalculate(context.Background(), "ghost", 6, 2024)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecalculate_InvalidPeriod(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)

	_, err := env.svc.Recalculate(context.Background(), "emp-1", 13, 2024)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "month")
}

func TestRecalculate_PreservesWorkflowFields(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	ctx := context.Background()

	_, err := env.svc.Recalculate(ctx, "emp-1", 6, 2024)
	require.NoError(t, err)

	approvedAt := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	env.payrolls.SetWorkflow("emp-1", 6, 2024, payroll.StatusApproved, "mgr-1", approvedAt)

	// New overtime lands after approval; recalculation updates the money
	// but must not disturb the approval.
	env.overtimes.Add(payroll.OvertimeRecord{
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Status:      payroll.OvertimeStatusApproved,
		HoursWorked: decimal.NewFromInt(10),
	})

	result, err := env.svc.Recalculate(ctx, "emp-1", 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusApproved, result.Record.Status)
	require.NotNil(t, result.Record.ApprovedBy)
	assert.Equal(t, "mgr-1", *result.Record.ApprovedBy)
	require.NotNil(t, result.Record.ApprovedAt)
	assert.Equal(t, approvedAt, *result.Record.ApprovedAt)
	assertAmount(t, "2946", result.Record.NetSalary, "recalculated net salary")
}

func TestRecalculate_IsIdempotent(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	ctx := context.Background()

	first, err := env.svc.Recalculate(ctx, "emp-1", 6, 2024)
	require.NoError(t, err)
	second, err := env.svc.Recalculate(ctx, "emp-1", 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, first.Record.ID, second.Record.ID, "same stored row on every run")
	assert.Equal(t, first.Breakdown, second.Breakdown)
}

func TestBulkRecalculate_SkipsFailingEmployee(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	env.addEmployee("emp-2", "Sales", 2800)
	env.addEmployee("emp-3", "Sales", 2600)
	env.overtimes.FailFor["emp-2"] = errors.New("connection reset")

	results, err := env.svc.BulkRecalculate(context.Background(), 6, 2024)
	require.NoError(t, err)
	require.Len(t, results, 2)

	ids := []string{results[0].EmployeeID, results[1].EmployeeID}
	assert.ElementsMatch(t, []string{"emp-1", "emp-3"}, ids)
}

func TestBulkRecalculate_OnlyEmployeeRole(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	salary := decimal.NewFromInt(5000)
	env.employees.Add(employee.Employee{
		ID: "mgr-1", FullName: "Manager", Role: employee.RoleManager,
		Department: "Engineering", BaseSalary: &salary,
	})

	results, err := env.svc.BulkRecalculate(context.Background(), 6, 2024)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "emp-1", results[0].EmployeeID)
}

func TestSummarize(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	env.addEmployee("emp-2", "Sales", 2800)
	ctx := context.Background()

	_, err := env.svc.BulkRecalculate(ctx, 6, 2024)
	require.NoError(t, err)
	env.payrolls.SetWorkflow("emp-1", 6, 2024, payroll.StatusApproved, "mgr-1", time.Now().UTC())

	summary, err := env.svc.Summarize(ctx, 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Current.EmployeeCount)
	assert.Equal(t, 1, summary.Current.PendingCount)
	assert.Equal(t, 1, summary.Current.ApprovedCount)
	assert.Equal(t, 0, summary.Current.PaidCount)
	// Nets: 2656 + 2324.
	assertAmount(t, "4980", summary.Current.TotalNet, "period total net")
	assertAmount(t, "2490", summary.Current.AverageNet, "period average net")
	assert.Equal(t, 2, summary.YearToDate.RecordCount)

	require.Len(t, summary.ByDepartment, 2)
	assert.Equal(t, "Engineering", summary.ByDepartment[0].Department)
	assertAmount(t, "2656", summary.ByDepartment[0].TotalNet, "engineering net")
	assert.Equal(t, "Sales", summary.ByDepartment[1].Department)
	assertAmount(t, "2324", summary.ByDepartment[1].TotalNet, "sales net")
}

func TestSummarize_GrowthWithoutBaseline(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	ctx := context.Background()

	_, err := env.svc.BulkRecalculate(ctx, 6, 2024)
	require.NoError(t, err)

	summary, err := env.svc.Summarize(ctx, 6, 2024)
	require.NoError(t, err)
	assert.True(t, summary.PreviousYear.TotalNet.IsZero())
	assert.True(t, summary.GrowthPercent.IsZero(), "no baseline means zero growth, not a division error")
}

func TestSummarize_GrowthAgainstPreviousYear(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "Engineering", 3200)
	ctx := context.Background()

	_, err := env.svc.Recalculate(ctx, "emp-1", 3, 2023)
	require.NoError(t, err)
	_, err = env.svc.Recalculate(ctx, "emp-1", 6, 2024)
	require.NoError(t, err)

	summary, err := env.svc.Summarize(ctx, 6, 2024)
	require.NoError(t, err)
	// Identical nets year over year.
	assertAmount(t, "0", summary.GrowthPercent, "growth percent")
	assertAmount(t, "2656", summary.PreviousYear.TotalNet, "previous year net")
}
