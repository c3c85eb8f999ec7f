package unassign_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/service/staff"
)

const msgNotAssigned = "сотрудник не назначен на этот слот"

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

// Handle DELETE /api/v1/slots/{slotId}/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, staffID := vars["slotId"], vars["staffId"]

	if err := h.service.UnassignFromSlot(r.Context(), slotID, staffID); err != nil {
		if errors.Is(err, staff.ErrNotAssigned) {
			handlers.RespondNotFound(w, msgNotAssigned)
			return
		}
		h.logger.Error("DELETE /slots/{slotId}/staff/{staffId} - Failed to unassign: slot_id=%s, staff_id=%s, error=%v",
			slotID, staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /slots/{slotId}/staff/{staffId} - Staff unassigned: slot_id=%s, staff_id=%s", slotID, staffID)
	w.WriteHeader(http.StatusNoContent)
}
