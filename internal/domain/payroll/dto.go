package payroll

import "github.com/shopspring/decimal"

// Breakdown exposes each computed quantity of a recalculation individually.
type Breakdown struct {
	BaseSalary         decimal.Decimal `json:"base_salary"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	TotalAdjustments   decimal.Decimal `json:"total_adjustments"`
	TotalBonuses       decimal.Decimal `json:"total_bonuses"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	TaxDeduction       decimal.Decimal `json:"tax_deduction"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	NetSalary          decimal.Decimal `json:"net_salary"`
}

// RecalculationResult is the stored record plus its breakdown and the counts
// of the inputs that fed it.
type RecalculationResult struct {
	Record          PayrollRecord `json:"record"`
	Breakdown       Breakdown     `json:"breakdown"`
	OvertimeEntries int           `json:"overtime_entries"`
	AdjustmentCount int           `json:"adjustment_count"`
	BonusCount      int           `json:"bonus_count"`
	EmployeeID      string        `json:"employee_id"`
	EmployeeName    string        `json:"employee_name"`
	Department      string        `json:"department"`
}

// PeriodTotals aggregates stored records for one (month, year).
type PeriodTotals struct {
	EmployeeCount    int             `json:"employee_count"`
	TotalNet         decimal.Decimal `json:"total_net"`
	TotalGross       decimal.Decimal `json:"total_gross"`
	TotalOvertime    decimal.Decimal `json:"total_overtime"`
	TotalBonuses     decimal.Decimal `json:"total_bonuses"`
	TotalAdjustments decimal.Decimal `json:"total_adjustments"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	AverageNet       decimal.Decimal `json:"average_net"`
	PendingCount     int             `json:"pending_count"`
	ApprovedCount    int             `json:"approved_count"`
	PaidCount        int             `json:"paid_count"`
}

// YearTotals aggregates stored records across a year or year prefix.
type YearTotals struct {
	RecordCount int             `json:"record_count"`
	TotalNet    decimal.Decimal `json:"total_net"`
	TotalGross  decimal.Decimal `json:"total_gross"`
}

// DepartmentTotals breaks the current-period record set down per department.
type DepartmentTotals struct {
	Department    string          `json:"department"`
	EmployeeCount int             `json:"employee_count"`
	TotalNet      decimal.Decimal `json:"total_net"`
	AverageNet    decimal.Decimal `json:"average_net"`
}

// Summary is the cross-period aggregate for one (month, year).
type Summary struct {
	PeriodMonth   int                `json:"period_month"`
	PeriodYear    int                `json:"period_year"`
	Current       PeriodTotals       `json:"current"`
	YearToDate    YearTotals         `json:"year_to_date"`
	PreviousYear  YearTotals         `json:"previous_year"`
	GrowthPercent decimal.Decimal    `json:"growth_percent"`
	ByDepartment  []DepartmentTotals `json:"by_department"`
}
