package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/service"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var equipment domain.Equipment
	if err := decodeJSON(r, &equipment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.equipmentSvc.CreateEquipment(r.Context(), &equipment); err != nil {
		if errors.Is(err, service.ErrInvalidEquipment) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create equipment")
		return
	}
	respondJSON(w, http.StatusCreated, equipment)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	equipment, err := h.equipmentSvc.GetEquipment(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "equipment not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load equipment")
		return
	}
	respondJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	var equipment domain.Equipment
	if err := decodeJSON(r, &equipment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	equipment.ID = id
	if err := h.equipmentSvc.UpdateEquipment(r.Context(), &equipment); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEquipment):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "equipment not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update equipment")
		}
		return
	}
	respondJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	if err := h.equipmentSvc.DeleteEquipment(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete equipment")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// List supports ?q= text filtering and ?sort= ordering.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	sortKey := domain.EquipmentSortKey(r.URL.Query().Get("sort"))

	items, err := h.equipmentSvc.ListEquipment(r.Context(), query, sortKey)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list equipment")
		return
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.equipmentSvc.EquipmentStatistics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Quote returns the cheapest tier combination for a rental duration.
func (h *EquipmentHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		respondError(w, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	quote, err := h.equipmentSvc.QuoteBestPrice(r.Context(), id, days)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "equipment not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to compute quote")
		return
	}
	respondJSON(w, http.StatusOK, quote)
}
