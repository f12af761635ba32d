package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type KioskHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
	Punch(w http.ResponseWriter, r *http.Request)
}

type kioskHandlerImpl struct {
	kioskService punch.KioskService
}

func NewKioskHandler(kioskService punch.KioskService) KioskHandler {
	return &kioskHandlerImpl{
		kioskService: kioskService,
	}
}

// Validate implements KioskHandler.
func (h *kioskHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req punch.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kioskService.Validate(r.Context(), req)
	if err != nil {
		response.HandleError(w, maskUnknownCPF(err))
		return
	}

	response.Success(w, result)
}

// Punch implements KioskHandler.
func (h *kioskHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req punch.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kioskService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, maskUnknownCPF(err))
		return
	}

	response.Created(w, "Punch registered", result)
}

// maskUnknownCPF makes an unknown CPF indistinguishable from a wrong PIN
// so the public kiosk endpoints cannot be used to probe registered CPFs.
func maskUnknownCPF(err error) error {
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.ErrInvalidCredentials
	}
	return err
}
