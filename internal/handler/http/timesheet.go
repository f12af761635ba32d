package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	ListByMonth(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// monthFromQuery reads year and month query parameters, defaulting to the
// current month.
func monthFromQuery(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, validator.ValidationErrors{{
				Field:   "year",
				Message: "year must be a number",
			}}
		}
		year = parsed
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, validator.ValidationErrors{{
				Field:   "month",
				Message: "month must be between 1 and 12",
			}}
		}
		month = time.Month(parsed)
	}

	return year, month, nil
}

// ListByMonth implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := h.timesheetService.ListByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// ListByEmployee implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	year, month, err := monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := h.timesheetService.ListByEmployeeAndMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

type recalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

// Recalculate implements TimesheetHandler. It re-runs reconciliation for
// one employee and day, for when an admin needs the derived row refreshed
// immediately instead of waiting for the backfill job.
func (h *timesheetHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req recalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.timesheetService.Reconcile(r.Context(), req.EmployeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.SuccessWithMessage(w, "No punches on this date", nil)
		return
	}

	response.SuccessWithMessage(w, "Timesheet recalculated", mapTimesheet(result))
}

func mapTimesheet(t *timesheet.DailyTimesheet) timesheet.TimesheetResponse {
	resp := timesheet.TimesheetResponse{
		ID:              t.ID,
		EmployeeID:      t.EmployeeID,
		EmployeeName:    t.EmployeeName,
		WorkDate:        t.WorkDate.Format("2006-01-02"),
		WorkedMinutes:   t.WorkedMinutes,
		BreakMinutes:    t.BreakMinutes,
		ExpectedMinutes: t.ExpectedMinutes,
		BalanceMinutes:  t.BalanceMinutes,
		Status:          string(t.Status),
		Notes:           t.Notes,
	}
	if t.FirstPunchAt != nil {
		first := t.FirstPunchAt.Format(time.RFC3339)
		resp.FirstPunchAt = &first
	}
	if t.LastPunchAt != nil {
		last := t.LastPunchAt.Format(time.RFC3339)
		resp.LastPunchAt = &last
	}
	return resp
}
