package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opshr/workforce-automation/internal/domain/payroll"
)

type OvertimeRepository struct {
	mu      sync.RWMutex
	records []payroll.OvertimeRecord

	// FailFor makes lookups for the given employee fail, for
	// batch-resilience tests.
	FailFor map[string]error
}

func NewOvertimeRepository() *OvertimeRepository {
	return &OvertimeRepository{FailFor: make(map[string]error)}
}

func (r *OvertimeRepository) Add(o payroll.OvertimeRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, o)
}

func (r *OvertimeRepository) SumApprovedHours(_ context.Context, employeeID string, from, to time.Time) (decimal.Decimal, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.FailFor[employeeID]; err != nil {
		return decimal.Zero, 0, err
	}

	total := decimal.Zero
	count := 0
	for _, o := range r.records {
		if o.EmployeeID != employeeID || o.Status != payroll.OvertimeStatusApproved {
			continue
		}
		if o.Date.Before(from) || !o.Date.Before(to) {
			continue
		}
		total = total.Add(o.HoursWorked)
		count++
	}
	return total, count, nil
}

type AdjustmentRepository struct {
	mu      sync.RWMutex
	entries []payroll.Adjustment
}

func NewAdjustmentRepository() *AdjustmentRepository {
	return &AdjustmentRepository{}
}

func (r *AdjustmentRepository) Add(a payroll.Adjustment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, a)
}

func (r *AdjustmentRepository) SumForPeriod(_ context.Context, employeeID string, month, year int) (decimal.Decimal, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	count := 0
	for _, a := range r.entries {
		if a.EmployeeID == employeeID && a.PeriodMonth == month && a.PeriodYear == year {
			total = total.Add(a.Amount)
			count++
		}
	}
	return total, count, nil
}

type BonusRepository struct {
	mu      sync.RWMutex
	entries []payroll.Bonus
}

func NewBonusRepository() *BonusRepository {
	return &BonusRepository{}
}

func (r *BonusRepository) Add(b payroll.Bonus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, b)
}

func (r *BonusRepository) SumForPeriod(_ context.Context, employeeID string, month, year int) (decimal.Decimal, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	count := 0
	for _, b := range r.entries {
		if b.EmployeeID == employeeID && b.PeriodMonth == month && b.PeriodYear == year {
			total = total.Add(b.Amount)
			count++
		}
	}
	return total, count, nil
}

type payrollKey struct {
	EmployeeID string
	Month      int
	Year       int
}

type PayrollRepository struct {
	mu        sync.Mutex
	records   map[payrollKey]payroll.PayrollRecord
	employees *EmployeeRepository
}

// NewPayrollRepository joins employee name and department from the given
// employee repository, the way the SQL implementation joins the employees
// table.
func NewPayrollRepository(employees *EmployeeRepository) *PayrollRepository {
	return &PayrollRepository{
		records:   make(map[payrollKey]payroll.PayrollRecord),
		employees: employees,
	}
}

func (r *PayrollRepository) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[payrollKey{employeeID, month, year}]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (r *PayrollRepository) Upsert(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := payrollKey{record.EmployeeID, record.PeriodMonth, record.PeriodYear}
	now := time.Now().UTC()

	existing, ok := r.records[k]
	if !ok {
		record.ID = uuid.NewString()
		record.Status = payroll.StatusPending
		record.ApprovedBy, record.ApprovedAt = nil, nil
		record.PaidBy, record.PaidAt = nil, nil
		record.CreatedAt = now
		record.UpdatedAt = now
		r.records[k] = record
		return record, nil
	}

	// Overwrite financial columns only; workflow fields stay verbatim.
	existing.BaseSalary = record.BaseSalary
	existing.OvertimePay = record.OvertimePay
	existing.TotalBonuses = record.TotalBonuses
	existing.TotalAdjustments = record.TotalAdjustments
	existing.GrossSalary = record.GrossSalary
	existing.TaxDeduction = record.TaxDeduction
	existing.OtherDeductions = record.OtherDeductions
	existing.NetSalary = record.NetSalary
	existing.UpdatedAt = now
	r.records[k] = existing
	return existing, nil
}

// SetWorkflow simulates the external approval workflow for tests.
func (r *PayrollRepository) SetWorkflow(employeeID string, month, year int, status payroll.Status, actor string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := payrollKey{employeeID, month, year}
	rec, ok := r.records[k]
	if !ok {
		return
	}
	rec.Status = status
	switch status {
	case payroll.StatusApproved:
		rec.ApprovedBy, rec.ApprovedAt = &actor, &at
	case payroll.StatusPaid:
		rec.PaidBy, rec.PaidAt = &actor, &at
	}
	r.records[k] = rec
}

func (r *PayrollRepository) ListForPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []payroll.PayrollRecord
	for k, rec := range r.records {
		if k.Month != month || k.Year != year {
			continue
		}
		if emp, err := r.employees.GetByID(ctx, rec.EmployeeID); err == nil {
			name, dept := emp.FullName, emp.Department
			rec.EmployeeName, rec.Department = &name, &dept
		}
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })
	return result, nil
}

func (r *PayrollRepository) PeriodTotals(_ context.Context, month, year int) (payroll.PeriodTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	totals := payroll.PeriodTotals{
		TotalNet:         decimal.Zero,
		TotalGross:       decimal.Zero,
		TotalOvertime:    decimal.Zero,
		TotalBonuses:     decimal.Zero,
		TotalAdjustments: decimal.Zero,
		TotalTax:         decimal.Zero,
		AverageNet:       decimal.Zero,
	}

	for k, rec := range r.records {
		if k.Month != month || k.Year != year {
			continue
		}
		totals.EmployeeCount++
		totals.TotalNet = totals.TotalNet.Add(rec.NetSalary)
		totals.TotalGross = totals.TotalGross.Add(rec.GrossSalary)
		totals.TotalOvertime = totals.TotalOvertime.Add(rec.OvertimePay)
		totals.TotalBonuses = totals.TotalBonuses.Add(rec.TotalBonuses)
		totals.TotalAdjustments = totals.TotalAdjustments.Add(rec.TotalAdjustments)
		totals.TotalTax = totals.TotalTax.Add(rec.TaxDeduction)
		switch rec.Status {
		case payroll.StatusPending:
			totals.PendingCount++
		case payroll.StatusApproved:
			totals.ApprovedCount++
		case payroll.StatusPaid:
			totals.PaidCount++
		}
	}

	if totals.EmployeeCount > 0 {
		totals.AverageNet = totals.TotalNet.DivRound(decimal.NewFromInt(int64(totals.EmployeeCount)), 2)
	}
	return totals, nil
}

func (r *PayrollRepository) YearToDateTotals(_ context.Context, year, throughMonth int) (payroll.YearTotals, error) {
	return r.yearTotals(year, throughMonth), nil
}

func (r *PayrollRepository) FullYearTotals(_ context.Context, year int) (payroll.YearTotals, error) {
	return r.yearTotals(year, 12), nil
}

func (r *PayrollRepository) yearTotals(year, throughMonth int) payroll.YearTotals {
	r.mu.Lock()
	defer r.mu.Unlock()

	totals := payroll.YearTotals{TotalNet: decimal.Zero, TotalGross: decimal.Zero}
	for k, rec := range r.records {
		if k.Year != year || k.Month > throughMonth {
			continue
		}
		totals.RecordCount++
		totals.TotalNet = totals.TotalNet.Add(rec.NetSalary)
		totals.TotalGross = totals.TotalGross.Add(rec.GrossSalary)
	}
	return totals
}
