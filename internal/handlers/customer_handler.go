package handlers

import (
	"encoding/json"
	"net/http"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(s *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: s}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Service.CreateCustomer(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
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

	customer, err := h.Service.GetCustomer(r.Context(), userID, id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	customers, err := h.Service.ListCustomers(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Service.UpdateCustomer(r.Context(), userID, id, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.DeleteCustomer(r.Context(), userID, id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
