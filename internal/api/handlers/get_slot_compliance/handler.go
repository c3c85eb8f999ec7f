package get_slot_compliance

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	getSlotCompliance "github.com/m04kA/SMC-NurseryService/internal/usecase/get_slot_compliance"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	useCase GetSlotComplianceUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotComplianceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/compliance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotCompliance.Request{SlotID: slotID})
	if err != nil {
		switch {
		case errors.Is(err, getSlotCompliance.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{slotId}/compliance - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, getSlotCompliance.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("GET /slots/{slotId}/compliance - Failed to evaluate: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{slotId}/compliance - Evaluated: slot_id=%s, compliant=%t, cached=%t",
		slotID, result.Result.Compliant, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
