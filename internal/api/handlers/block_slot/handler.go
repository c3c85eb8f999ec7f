package block_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/service/slots"
	"github.com/m04kA/SMC-NurseryService/internal/service/slots/models"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{slotId}/block
// Закрытие слота не отменяет существующие бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req models.SetBlockedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{slotId}/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetBlocked(r.Context(), slotID, &req)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			h.logger.Warn("PATCH /slots/{slotId}/block - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("PATCH /slots/{slotId}/block - Failed to update slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /slots/{slotId}/block - Slot updated: slot_id=%s, is_blocked=%t", slotID, result.IsBlocked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
