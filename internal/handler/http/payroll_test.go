package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/opshr/workforce-automation/internal/domain/employee"
	"github.com/opshr/workforce-automation/internal/repository/memory"
	payrollService "github.com/opshr/workforce-automation/internal/service/payroll"
)

func newPayrollTestHandler() PayrollHandler {
	employees := memory.NewEmployeeRepository()
	overtimes := memory.NewOvertimeRepository()
	adjustments := memory.NewAdjustmentRepository()
	bonuses := memory.NewBonusRepository()
	payrolls := memory.NewPayrollRepository(employees)

	salary := decimal.NewFromInt(3200)
	employees.Add(employee.Employee{
		ID:         "emp-1",
		FullName:   "Test Employee",
		Role:       employee.RoleEmployee,
		Department: "Engineering",
		BaseSalary: &salary,
		CreatedAt:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	svc := payrollService.NewPayrollService(employees, overtimes, adjustments, bonuses, payrolls, payrollService.DefaultRates())
	return NewPayrollHandler(svc)
}

func TestRecalculate(t *testing.T) {
	handler := newPayrollTestHandler()

	rec, resp := doJSON(t, handler.Recalculate, map[string]interface{}{
		"employee_id": "emp-1",
		"month":       6,
		"year":        2024,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestRecalculate_MissingEmployeeID(t *testing.T) {
	handler := newPayrollTestHandler()

	rec, _ := doJSON(t, handler.Recalculate, map[string]interface{}{
		"month": 6,
		"year":  2024,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecalculate_UnknownEmployee(t *testing.T) {
	handler := newPayrollTestHandler()

	rec, _ := doJSON(t, handler.Recalculate, map[string]interface{}{
		"employee_id": "ghost",
		"month":       6,
		"year":        2024,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecalculate_InvalidMonth(t *testing.T) {
	handler := newPayrollTestHandler()

	rec, resp := doJSON(t, handler.Recalculate, map[string]interface{}{
		"employee_id": "emp-1",
		"month":       13,
		"year":        2024,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotNil(t, resp.Error)
}

func TestBulkRecalculate(t *testing.T) {
	handler := newPayrollTestHandler()

	rec, resp := doJSON(t, handler.BulkRecalculate, map[string]interface{}{
		"month": 6,
		"year":  2024,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestGetSummary(t *testing.T) {
	handler := newPayrollTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/?month=6&year=2024", nil)
	rec := httptest.NewRecorder()
	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSummary_MissingParams(t *testing.T) {
	handler := newPayrollTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/?month=6", nil)
	rec := httptest.NewRecorder()
	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
