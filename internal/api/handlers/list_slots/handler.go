package list_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/api/middleware"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/internal/service/slots"
	"github.com/m04kA/SMC-NurseryService/internal/service/slots/models"
)

const (
	msgMissingDates  = "параметры from и to обязательны"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/slots
// Query params: from, to (required, YYYY-MM-DD), includeBlocked (optional, только для admin)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	role, _ := middleware.GetUserRole(r.Context())
	req := &models.ListSlotsRequest{
		From:           query.Get("from"),
		To:             query.Get("to"),
		IncludeBlocked: role == domain.RoleAdmin && query.Get("includeBlocked") == "true",
	}
	if req.From == "" || req.To == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidInput) {
			h.logger.Warn("GET /slots - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /slots - Failed to list slots: from=%s, to=%s, error=%v", req.From, req.To, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots listed: from=%s, to=%s, count=%d", req.From, req.To, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
