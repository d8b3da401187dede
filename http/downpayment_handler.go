package http

import (
	"encoding/json"
	"net/http"

	"mortgage-engine/domain"
	"mortgage-engine/service"
)

type DownPaymentHandler struct {
	service *service.DownPaymentService
}

func NewDownPaymentHandler(service *service.DownPaymentService) *DownPaymentHandler {
	return &DownPaymentHandler{service: service}
}

func (h *DownPaymentHandler) PlanDownPayment(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.DownPaymentPlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.PlanDownPayment(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
