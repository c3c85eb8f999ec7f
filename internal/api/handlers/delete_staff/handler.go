package delete_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/service/staff"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgNotFound       = "сотрудник не найден"
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

// Handle DELETE /api/v1/staff/{staffId}
// Назначения сотрудника на слоты удаляются вместе с ним
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]
	if staffID == "" {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.service.Delete(r.Context(), staffID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			h.logger.Warn("DELETE /staff/{id} - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /staff/{id} - Failed to delete staff: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff deleted: staff_id=%s", staffID)
	w.WriteHeader(http.StatusNoContent)
}
