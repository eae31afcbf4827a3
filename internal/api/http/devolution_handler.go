package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/service"
)

type DevolutionHandler struct {
	devolutionSvc service.DevolutionService
}

func NewDevolutionHandler(devolutionSvc service.DevolutionService) *DevolutionHandler {
	return &DevolutionHandler{devolutionSvc: devolutionSvc}
}

func (h *DevolutionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var devolution domain.Devolution
	if err := decodeJSON(r, &devolution); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.devolutionSvc.CreateDevolution(r.Context(), &devolution); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDevolution):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "contract or equipment not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to create devolution")
		}
		return
	}
	respondJSON(w, http.StatusCreated, devolution)
}

func (h *DevolutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid devolution id")
		return
	}
	devolution, err := h.devolutionSvc.GetDevolution(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "devolution not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load devolution")
		return
	}
	respondJSON(w, http.StatusOK, devolution)
}

func (h *DevolutionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid devolution id")
		return
	}
	var devolution domain.Devolution
	if err := decodeJSON(r, &devolution); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	devolution.ID = id
	if err := h.devolutionSvc.UpdateDevolution(r.Context(), &devolution); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDevolution):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "devolution not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update devolution")
		}
		return
	}
	respondJSON(w, http.StatusOK, devolution)
}

func (h *DevolutionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid devolution id")
		return
	}
	if err := h.devolutionSvc.DeleteDevolution(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete devolution")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// List returns all devolutions, optionally scoped to one contract.
func (h *DevolutionHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.Devolution
		err   error
	)
	if raw := r.URL.Query().Get("contratoId"); raw != "" {
		var contractID int
		contractID, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid contratoId")
			return
		}
		items, err = h.devolutionSvc.ListDevolutionsByContract(r.Context(), int32(contractID))
	} else {
		items, err = h.devolutionSvc.ListDevolutions(r.Context())
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list devolutions")
		return
	}
	if items == nil {
		items = []domain.Devolution{}
	}
	respondJSON(w, http.StatusOK, domain.SortDevolutionsByDate(items))
}

func (h *DevolutionHandler) Process(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid devolution id")
		return
	}
	devolution, err := h.devolutionSvc.ProcessDevolution(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "devolution not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to process devolution")
		return
	}
	respondJSON(w, http.StatusOK, devolution)
}

type penaltyRequest struct {
	Penalty float64 `json:"valorMulta"`
	Reason  string  `json:"motivo"`
}

// Penalize records a manually assessed fine on a devolution.
func (h *DevolutionHandler) Penalize(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid devolution id")
		return
	}
	var req penaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	devolution, err := h.devolutionSvc.PenalizeDevolution(r.Context(), id, req.Penalty, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPenalty):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "devolution not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to apply penalty")
		}
		return
	}
	respondJSON(w, http.StatusOK, devolution)
}

func (h *DevolutionHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.devolutionSvc.DevolutionStatistics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
