package handlers

import (
	"encoding/json"
	"net/http"

	"rental-backend/internal/services"
)

type ImportHandler struct {
	Service *services.ImportService
}

func NewImportHandler(s *services.ImportService) *ImportHandler {
	return &ImportHandler{Service: s}
}

// Classify accepts an xlsx or JSON payload and returns per-record entity
// guesses with confidence scores and advisory duplicate flags. Nothing is
// persisted.
func (h *ImportHandler) Classify(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	results, err := h.Service.Classify(r.Context(), userID, r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
