package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/sector"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type SectorHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type sectorHandlerImpl struct {
	sectorService sector.SectorService
}

func NewSectorHandler(sectorService sector.SectorService) SectorHandler {
	return &sectorHandlerImpl{
		sectorService: sectorService,
	}
}

// Create implements SectorHandler.
func (h *sectorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sector.UpsertSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sectorService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sector created", result)
}

// Get implements SectorHandler.
func (h *sectorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.sectorService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SectorHandler.
func (h *sectorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sectorService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SectorHandler.
func (h *sectorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sector.UpsertSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sectorService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sector updated", result)
}

// Delete implements SectorHandler.
func (h *sectorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sectorService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sector deleted", nil)
}
