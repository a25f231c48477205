package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rental-backend/internal/models"
	"rental-backend/internal/occupancy"
	"rental-backend/internal/services"
)

type ContractHandler struct {
	Service *services.ContractService
}

func NewContractHandler(s *services.ContractService) *ContractHandler {
	return &ContractHandler{Service: s}
}

// CreateContract runs the reservation guard before committing; guard
// rejections come back as 409.
func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	contract, err := h.Service.CreateContract(r.Context(), userID, &req)
	if err != nil {
		if isReservationRejection(err) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(contract)
}

func isReservationRejection(err error) bool {
	return errors.Is(err, occupancy.ErrDuplicateReservation) ||
		errors.Is(err, occupancy.ErrConflictingReservation) ||
		errors.Is(err, occupancy.ErrUnitUnavailable)
}

func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	contract, err := h.Service.GetContract(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Contract not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contract)
}

func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	contracts, err := h.Service.ListContracts(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contracts)
}

func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	var req models.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	contract, err := h.Service.UpdateContract(r.Context(), userID, id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contract)
}

func (h *ContractHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	contract, err := h.Service.Terminate(r.Context(), userID, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contract)
}

func (h *ContractHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteContract(r.Context(), userID, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Schedule returns the contract's effective payment entries, reconciled
// on every read.
func (h *ContractHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	entries, err := h.Service.Schedule(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Contract not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
