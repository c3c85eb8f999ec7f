package evaluate_compliance

import (
	"net/http"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/compliance"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные смены или количества детей"
)

// Handler считает соотношения для произвольной смены без обращения к БД
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/compliance/evaluate
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /compliance/evaluate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staff, counts, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /compliance/evaluate - Invalid data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result := compliance.Evaluate(staff, counts)

	h.logger.Info("POST /compliance/evaluate - Evaluated: staff=%d, children=%d, compliant=%t",
		len(staff), counts.Total(), result.Compliant)
	handlers.RespondJSON(w, http.StatusOK, NewEvaluateResponse(compliance.Summarize(staff), counts, result))
}
