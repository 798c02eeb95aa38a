package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"hecs-calculator/domain"
	"hecs-calculator/service"
)

type RepaymentHandler struct {
	service *service.RepaymentService
}

func NewRepaymentHandler(service *service.RepaymentService) *RepaymentHandler {
	return &RepaymentHandler{service: service}
}

// calculateRequest keeps the raw fields so numbers sent as strings
// ("50000") are accepted the same way as JSON numbers.
type calculateRequest struct {
	Debt   json.RawMessage `json:"debt"`
	Income json.RawMessage `json:"income"`
	Growth json.RawMessage `json:"growth"`
}

// parseNumber returns NaN for anything that is not a number, which the
// service rejects with the field's message.
func parseNumber(raw json.RawMessage) float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return math.NaN()
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return math.NaN()
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (h *RepaymentHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req calculateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := domain.RepaymentInput{
		Debt:   parseNumber(req.Debt),
		Income: parseNumber(req.Income),
		Growth: parseNumber(req.Growth),
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
