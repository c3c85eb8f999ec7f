package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-NurseryService/internal/usecase/get_available_slots"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgMissingDates   = "параметры from и to обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast     = "период полностью в прошлом"
	msgRangeTooLarge  = "слишком большой период"
	msgInvalidRequest = "некорректные параметры запроса"
	msgChildNotFound  = "ребенок не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available
// Query params: from, to (required, YYYY-MM-DD), childId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /slots/available - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /slots/available - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(parentID, fromStr, toStr, query.Get("childId"))
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrChildNotFound):
			h.logger.Warn("GET /slots/available - Child not found: parent_id=%s", parentID)
			handlers.RespondNotFound(w, msgChildNotFound)

		case errors.Is(err, getAvailableSlots.ErrAccessDenied):
			h.logger.Warn("GET /slots/available - Access denied: parent_id=%s", parentID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /slots/available - Failed to get slots: parent_id=%s, error=%v", parentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/available - Slots retrieved: parent_id=%s, from=%s, to=%s, count=%d",
		parentID, fromStr, toStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
