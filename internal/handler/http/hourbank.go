package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type HourBankHandler interface {
	ListLedger(w http.ResponseWriter, r *http.Request)
	CreateManualEntry(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)
}

type hourBankHandlerImpl struct {
	hourBankService hourbank.HourBankService
}

func NewHourBankHandler(hourBankService hourbank.HourBankService) HourBankHandler {
	return &hourBankHandlerImpl{
		hourBankService: hourBankService,
	}
}

// ListLedger implements HourBankHandler. An optional employee_id query
// parameter narrows the listing to one employee.
func (h *hourBankHandlerImpl) ListLedger(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	entries, err := h.hourBankService.ListLedger(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// CreateManualEntry implements HourBankHandler.
func (h *hourBankHandlerImpl) CreateManualEntry(w http.ResponseWriter, r *http.Request) {
	var req hourbank.CreateManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.hourBankService.CreateManualEntry(r.Context(), req, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ledger entry created", entry)
}

// Approve implements HourBankHandler.
func (h *hourBankHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	entry, err := h.hourBankService.Approve(r.Context(), entryID, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger entry approved", entry)
}

// Reject implements HourBankHandler.
func (h *hourBankHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	entry, err := h.hourBankService.Reject(r.Context(), entryID, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger entry rejected", entry)
}

// GetBalance implements HourBankHandler.
func (h *hourBankHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	balance, err := h.hourBankService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// ListBalances implements HourBankHandler.
func (h *hourBankHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.hourBankService.ListBalances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}
