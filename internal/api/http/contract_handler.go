package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/service"
)

type ContractHandler struct {
	contractSvc service.ContractService
}

func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// contractView decorates a contract with its derived status and badge.
type contractView struct {
	domain.Contract
	Status      domain.ContractStatus `json:"statusDerivado"`
	Badge       domain.StatusBadge    `json:"badge"`
	ValorTotal  float64               `json:"valorEfetivo"`
	ClienteNome string                `json:"clienteNomeResolvido"`
}

func newContractView(c *domain.Contract, now time.Time) contractView {
	status := domain.ResolveContractStatus(c, now)
	return contractView{
		Contract:    *c,
		Status:      status,
		Badge:       domain.ContractStatusBadge(status),
		ValorTotal:  domain.EffectiveValue(c),
		ClienteNome: domain.ResolveClientName(c),
	}
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contract domain.Contract
	if err := decodeJSON(r, &contract); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.contractSvc.CreateContract(r.Context(), &contract); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContract):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "client not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to create contract")
		}
		return
	}
	respondJSON(w, http.StatusCreated, newContractView(&contract, time.Now()))
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	contract, err := h.contractSvc.GetContract(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "contract not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load contract")
		return
	}
	respondJSON(w, http.StatusOK, newContractView(contract, time.Now()))
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	var contract domain.Contract
	if err := decodeJSON(r, &contract); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	contract.ID = id
	if err := h.contractSvc.UpdateContract(r.Context(), &contract); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContract):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "contract not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update contract")
		}
		return
	}
	respondJSON(w, http.StatusOK, newContractView(&contract, time.Now()))
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	if err := h.contractSvc.DeleteContract(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete contract")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// List returns all contracts, optionally filtered to one client via
// ?clienteId= or to contracts due within ?dueWithin= days.
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		contracts []domain.Contract
		err       error
	)
	switch {
	case r.URL.Query().Get("clienteId") != "":
		var clientID int
		clientID, err = strconv.Atoi(r.URL.Query().Get("clienteId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid clienteId")
			return
		}
		contracts, err = h.contractSvc.ListContractsByClient(r.Context(), int32(clientID))
	case r.URL.Query().Get("dueWithin") != "":
		var days int
		days, err = strconv.Atoi(r.URL.Query().Get("dueWithin"))
		if err != nil || days < 0 {
			respondError(w, http.StatusBadRequest, "invalid dueWithin")
			return
		}
		contracts, err = h.contractSvc.ListContractsDueWithin(r.Context(), days)
	default:
		contracts, err = h.contractSvc.ListContracts(r.Context())
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list contracts")
		return
	}

	now := time.Now()
	views := make([]contractView, 0, len(contracts))
	for i := range contracts {
		views = append(views, newContractView(&contracts[i], now))
	}
	respondJSON(w, http.StatusOK, views)
}
