package http

import (
	"database/sql"
	"errors"
	"net/http"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/service"
)

type SignatureHandler struct {
	signatureSvc service.SignatureService
}

func NewSignatureHandler(signatureSvc service.SignatureService) *SignatureHandler {
	return &SignatureHandler{signatureSvc: signatureSvc}
}

type rejectRequest struct {
	Reason string `json:"motivo"`
}

// Request opens the signing window for a contract.
func (h *SignatureHandler) Request(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	sig, err := h.signatureSvc.RequestSignature(r.Context(), contractID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySigned):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "contract not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to request signature")
		}
		return
	}
	respondJSON(w, http.StatusCreated, sig)
}

// Sign attaches a drawn signature to a contract.
func (h *SignatureHandler) Sign(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	var data domain.SigningData
	if err := decodeJSON(r, &data); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sig, err := h.signatureSvc.SignContract(r.Context(), contractID, data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrAlreadySigned):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "contract not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to sign contract")
		}
		return
	}
	respondJSON(w, http.StatusOK, sig)
}

// Reject records a refusal to sign.
func (h *SignatureHandler) Reject(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sig, err := h.signatureSvc.RejectSignature(r.Context(), contractID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySigned):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "contract not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to reject signature")
		}
		return
	}
	respondJSON(w, http.StatusOK, sig)
}

// Get returns the latest signature record of a contract.
func (h *SignatureHandler) Get(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	sig, err := h.signatureSvc.GetContractSignature(r.Context(), contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "signature not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load signature")
		return
	}
	respondJSON(w, http.StatusOK, sig)
}
