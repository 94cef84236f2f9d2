package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/handler/http/response"
	"github.com/opshr/workforce-automation/internal/pkg/validator"
)

type AutomationHandler interface {
	MarkDate(w http.ResponseWriter, r *http.Request)
	BackfillRange(w http.ResponseWriter, r *http.Request)
	BackfillHistorical(w http.ResponseWriter, r *http.Request)
}

type automationHandlerImpl struct {
	automationService attendance.AutomationService
	maxRangeDays      int
}

func NewAutomationHandler(automationService attendance.AutomationService, maxRangeDays int) AutomationHandler {
	return &automationHandlerImpl{
		automationService: automationService,
		maxRangeDays:      maxRangeDays,
	}
}

type markDateRequest struct {
	Date string `json:"date"`
}

type backfillRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *automationHandlerImpl) MarkDate(w http.ResponseWriter, r *http.Request) {
	var req markDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	day, err := parseDate(req.Date, "date")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.automationService.MarkAllForDate(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", summary)
}

func (h *automationHandlerImpl) BackfillRange(w http.ResponseWriter, r *http.Request) {
	var req backfillRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if end.Sub(start) > time.Duration(h.maxRangeDays)*24*time.Hour {
		response.HandleError(w, attendance.ErrRangeTooLarge)
		return
	}

	summaries, err := h.automationService.BackfillRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backfill completed", summaries)
}

func (h *automationHandlerImpl) BackfillHistorical(w http.ResponseWriter, r *http.Request) {
	summary, err := h.automationService.BackfillAllHistorical(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Historical backfill completed", summary)
}

func parseDate(value, field string) (time.Time, error) {
	if validator.IsEmpty(value) {
		return time.Time{}, validator.ValidationErrors{{Field: field, Message: "is required"}}
	}
	day, err := validator.ParseDate(value)
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{Field: field, Message: "must be a YYYY-MM-DD date"}}
	}
	return day, nil
}
