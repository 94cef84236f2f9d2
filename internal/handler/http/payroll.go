package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/opshr/workforce-automation/internal/domain/payroll"
	"github.com/opshr/workforce-automation/internal/handler/http/response"
	"github.com/opshr/workforce-automation/internal/pkg/validator"
)

type PayrollHandler interface {
	Recalculate(w http.ResponseWriter, r *http.Request)
	BulkRecalculate(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

type recalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

type bulkRecalculateRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (h *payrollHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req recalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if validator.IsEmpty(req.EmployeeID) {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.Recalculate(r.Context(), req.EmployeeID, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll recalculated", result)
}

func (h *payrollHandlerImpl) BulkRecalculate(w http.ResponseWriter, r *http.Request) {
	var req bulkRecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results, err := h.payrollService.BulkRecalculate(r.Context(), req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll recalculated for all employees", results)
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter month must be a number", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter year must be a number", nil)
		return
	}

	summary, err := h.payrollService.Summarize(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
