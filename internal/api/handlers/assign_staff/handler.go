package assign_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/service/staff"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "slotId и staffId обязательны"
	msgNotFound           = "слот или сотрудник не найден"
	msgAlreadyAssigned    = "сотрудник уже назначен на этот слот"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req AssignStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{slotId}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignToSlot(r.Context(), slotID, req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, staff.ErrSlotOrStaffNotFound):
			h.logger.Warn("POST /slots/{slotId}/staff - Not found: slot_id=%s, staff_id=%s", slotID, req.StaffID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrAlreadyAssigned):
			handlers.RespondConflict(w, msgAlreadyAssigned)

		default:
			h.logger.Error("POST /slots/{slotId}/staff - Failed to assign: slot_id=%s, staff_id=%s, error=%v",
				slotID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{slotId}/staff - Staff assigned: slot_id=%s, staff_id=%s", slotID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
