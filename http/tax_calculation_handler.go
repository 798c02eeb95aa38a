package http

import (
	"net/http"

	"hecs-calculator/domain"
	"hecs-calculator/service"
)

type TaxCalculationHandler struct {
	service *service.TaxCalculationService
}

func NewTaxCalculationHandler(service *service.TaxCalculationService) *TaxCalculationHandler {
	return &TaxCalculationHandler{service: service}
}

func (h *TaxCalculationHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.TaxCalculationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	calc, err := h.service.Save(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, createdResponse{ID: calc.ID})
}
