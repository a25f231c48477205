package handlers

import (
	"encoding/json"
	"net/http"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/google/uuid"
)

type ExchangeHandler struct {
	Service *services.ExchangeService
}

func NewExchangeHandler(s *services.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{Service: s}
}

func (h *ExchangeHandler) RecordExchange(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.Service.RecordExchange(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, transaction)
}

func (h *ExchangeHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	transaction, err := h.Service.GetTransaction(r.Context(), userID, id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Transaction not found")
		return
	}
	utils.JSON(w, http.StatusOK, transaction)
}

// ListTransactions lists the tenant's exchange transactions, optionally
// scoped to one vault via ?vault_id=.
func (h *ExchangeHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var transactions []*models.ExchangeTransaction
	var err error
	if v := r.URL.Query().Get("vault_id"); v != "" {
		vaultID, perr := uuid.Parse(v)
		if perr != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid vault_id")
			return
		}
		transactions, err = h.Service.ListByVault(r.Context(), userID, vaultID)
	} else {
		transactions, err = h.Service.ListTransactions(r.Context(), userID)
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, transactions)
}

func (h *ExchangeHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.DeleteTransaction(r.Context(), userID, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
