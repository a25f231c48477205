package handlers

import (
	"net/http"

	"rental-backend/internal/services"
)

type ExportHandler struct {
	Service *services.ExportService
}

func NewExportHandler(s *services.ExportService) *ExportHandler {
	return &ExportHandler{Service: s}
}

func (h *ExportHandler) DatasetExcel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	dataset, err := h.Service.Dataset(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := dataset.Excel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="dataset.xlsx"`)
	w.Write(data)
}

func (h *ExportHandler) DatasetJSON(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	dataset, err := h.Service.Dataset(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := dataset.JSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="dataset.json"`)
	w.Write(data)
}

// Statement streams the contract statement PDF.
func (h *ExportHandler) Statement(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.Service.Statement(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Contract not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="statement.pdf"`)
	w.Write(data)
}
