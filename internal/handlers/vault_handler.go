package handlers

import (
	"encoding/json"
	"net/http"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

type VaultHandler struct {
	Service *services.VaultService
}

func NewVaultHandler(s *services.VaultService) *VaultHandler {
	return &VaultHandler{Service: s}
}

func (h *VaultHandler) CreateVault(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vault, err := h.Service.CreateVault(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, vault)
}

func (h *VaultHandler) GetVault(w http.ResponseWriter, r *http.Request) {
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

	vault, err := h.Service.GetVault(r.Context(), userID, id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Vault not found")
		return
	}
	utils.JSON(w, http.StatusOK, vault)
}

func (h *VaultHandler) ListVaults(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vaults, err := h.Service.ListVaults(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, vaults)
}

func (h *VaultHandler) UpdateVault(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vault, err := h.Service.UpdateVault(r.Context(), userID, id, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, vault)
}

func (h *VaultHandler) DeleteVault(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.DeleteVault(r.Context(), userID, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
