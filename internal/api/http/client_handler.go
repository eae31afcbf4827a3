package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/service"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	clientSvc service.ClientService
}

func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return int32(id), err
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := decodeJSON(r, &client); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.clientSvc.CreateClient(r.Context(), &client); err != nil {
		if errors.Is(err, service.ErrInvalidTaxID) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create client")
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	client, err := h.clientSvc.GetClient(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "client not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load client")
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	var client domain.Client
	if err := decodeJSON(r, &client); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	client.ID = id
	if err := h.clientSvc.UpdateClient(r.Context(), &client); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaxID):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "client not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update client")
		}
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	if err := h.clientSvc.DeleteClient(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientSvc.ListClients(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	respondJSON(w, http.StatusOK, clients)
}
