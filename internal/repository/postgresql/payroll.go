package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/opshr/workforce-automation/internal/domain/payroll"
	"github.com/opshr/workforce-automation/internal/pkg/database"
)

// ========== OVERTIME ==========

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) payroll.OvertimeRepository {
	return &overtimeRepository{db: db}
}

func (r *overtimeRepository) SumApprovedHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_worked), 0), COUNT(*)
		FROM overtime_records
		WHERE employee_id = $1
			AND status = 'approved'
			AND date >= $2 AND date < $3
	`

	var total decimal.Decimal
	var count int
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum approved overtime hours: %w", err)
	}

	return total, count, nil
}

// ========== ADJUSTMENTS ==========

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) payroll.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) SumForPeriod(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM payroll_adjustments
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var total decimal.Decimal
	var count int
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum payroll adjustments: %w", err)
	}

	return total, count, nil
}

// ========== BONUSES ==========

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) payroll.BonusRepository {
	return &bonusRepository{db: db}
}

func (r *bonusRepository) SumForPeriod(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM payroll_bonuses
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var total decimal.Decimal
	var count int
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum payroll bonuses: %w", err)
	}

	return total, count, nil
}

// ========== PAYROLL RECORDS ==========

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, period_month, period_year, base_salary, overtime_pay,
	total_bonuses, total_adjustments, gross_salary, tax_deduction,
	other_deductions, net_salary, status, approved_by, approved_at,
	paid_by, paid_at, created_at, updated_at`

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BaseSalary, &rec.OvertimePay,
		&rec.TotalBonuses, &rec.TotalAdjustments, &rec.GrossSalary, &rec.TaxDeduction,
		&rec.OtherDeductions, &rec.NetSalary, &rec.Status, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.PaidBy, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// Upsert is guarded by the uk_employee_period unique constraint on
// (employee_id, period_month, period_year). On conflict only the financial
// columns are overwritten; status and approval/payment metadata stay as the
// workflow left them.
func (r *payrollRepository) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_month, period_year, base_salary, overtime_pay,
			total_bonuses, total_adjustments, gross_salary, tax_deduction,
			other_deductions, net_salary, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending')
		ON CONFLICT ON CONSTRAINT uk_employee_period DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			overtime_pay = EXCLUDED.overtime_pay,
			total_bonuses = EXCLUDED.total_bonuses,
			total_adjustments = EXCLUDED.total_adjustments,
			gross_salary = EXCLUDED.gross_salary,
			tax_deduction = EXCLUDED.tax_deduction,
			other_deductions = EXCLUDED.other_deductions,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING ` + payrollColumns + `
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodMonth, record.PeriodYear, record.BaseSalary, record.OvertimePay,
		record.TotalBonuses, record.TotalAdjustments, record.GrossSalary, record.TaxDeduction,
		record.OtherDeductions, record.NetSalary,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BaseSalary, &rec.OvertimePay,
		&rec.TotalBonuses, &rec.TotalAdjustments, &rec.GrossSalary, &rec.TaxDeduction,
		&rec.OtherDeductions, &rec.NetSalary, &rec.Status, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.PaidBy, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListForPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period_month, pr.period_year, pr.base_salary, pr.overtime_pay,
			   pr.total_bonuses, pr.total_adjustments, pr.gross_salary, pr.tax_deduction,
			   pr.other_deductions, pr.net_salary, pr.status, pr.approved_by, pr.approved_at,
			   pr.paid_by, pr.paid_at, pr.created_at, pr.updated_at,
			   e.full_name as employee_name, e.department
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.period_month = $1 AND pr.period_year = $2
		ORDER BY e.full_name, pr.employee_id
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear, &rec.BaseSalary, &rec.OvertimePay,
			&rec.TotalBonuses, &rec.TotalAdjustments, &rec.GrossSalary, &rec.TaxDeduction,
			&rec.OtherDeductions, &rec.NetSalary, &rec.Status, &rec.ApprovedBy, &rec.ApprovedAt,
			&rec.PaidBy, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *payrollRepository) PeriodTotals(ctx context.Context, month, year int) (payroll.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as employee_count,
			COALESCE(SUM(net_salary), 0) as total_net,
			COALESCE(SUM(gross_salary), 0) as total_gross,
			COALESCE(SUM(overtime_pay), 0) as total_overtime,
			COALESCE(SUM(total_bonuses), 0) as total_bonuses,
			COALESCE(SUM(total_adjustments), 0) as total_adjustments,
			COALESCE(SUM(tax_deduction), 0) as total_tax,
			COALESCE(ROUND(AVG(net_salary), 2), 0) as average_net,
			COUNT(*) FILTER (WHERE status = 'pending') as pending_count,
			COUNT(*) FILTER (WHERE status = 'approved') as approved_count,
			COUNT(*) FILTER (WHERE status = 'paid') as paid_count
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`

	var totals payroll.PeriodTotals
	err := q.QueryRow(ctx, query, month, year).Scan(
		&totals.EmployeeCount, &totals.TotalNet, &totals.TotalGross, &totals.TotalOvertime,
		&totals.TotalBonuses, &totals.TotalAdjustments, &totals.TotalTax, &totals.AverageNet,
		&totals.PendingCount, &totals.ApprovedCount, &totals.PaidCount,
	)
	if err != nil {
		return payroll.PeriodTotals{}, fmt.Errorf("failed to get period totals: %w", err)
	}

	return totals, nil
}

func (r *payrollRepository) YearToDateTotals(ctx context.Context, year, throughMonth int) (payroll.YearTotals, error) {
	return r.yearTotals(ctx, year, throughMonth)
}

func (r *payrollRepository) FullYearTotals(ctx context.Context, year int) (payroll.YearTotals, error) {
	return r.yearTotals(ctx, year, 12)
}

func (r *payrollRepository) yearTotals(ctx context.Context, year, throughMonth int) (payroll.YearTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as record_count,
			COALESCE(SUM(net_salary), 0) as total_net,
			COALESCE(SUM(gross_salary), 0) as total_gross
		FROM payroll_records
		WHERE period_year = $1 AND period_month <= $2
	`

	var totals payroll.YearTotals
	err := q.QueryRow(ctx, query, year, throughMonth).Scan(
		&totals.RecordCount, &totals.TotalNet, &totals.TotalGross,
	)
	if err != nil {
		return payroll.YearTotals{}, fmt.Errorf("failed to get year totals: %w", err)
	}

	return totals, nil
}
