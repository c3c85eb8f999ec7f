package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-NurseryService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "childId и slotId обязательны"
	msgChildNotFound      = "ребенок не найден"
	msgSlotNotFound       = "слот не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotBlocked        = "слот закрыт для бронирования"
	msgSlotInPast         = "слот уже начался"
	msgAlreadyBooked      = "ребенок уже записан на этот слот"
	msgNoCapacity         = "нет свободных мест в возрастной группе ребенка"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(parentID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: parent_id=%s, slot_id=%s", parentID, req.SlotID)
			handlers.RespondConflict(w, msgNoCapacity)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: child_id=%s, slot_id=%s", req.ChildID, req.SlotID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrChildNotFound):
			h.logger.Warn("POST /bookings - Child not found: child_id=%s", req.ChildID)
			handlers.RespondNotFound(w, msgChildNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: parent_id=%s, child_id=%s", parentID, req.ChildID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			handlers.RespondBadRequest(w, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrSlotInPast):
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: parent_id=%s, slot_id=%s, error=%v",
				parentID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, parent_id=%s, slot_id=%s",
		result.ID, parentID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
