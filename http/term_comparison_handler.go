package http

import (
	"encoding/json"
	"net/http"

	"mortgage-engine/domain"
	"mortgage-engine/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
}

func NewTermComparisonHandler(service *service.TermComparisonService) *TermComparisonHandler {
	return &TermComparisonHandler{service: service}
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.TermComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareTerms(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
