package get_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	getOccupancy "github.com/m04kA/SMC-NurseryService/internal/usecase/get_occupancy"
)

const (
	msgInvalidParams = "некорректный период, ожидаются from и to в формате YYYY-MM-DD"
	msgRangeTooLarge = "слишком большой период"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy
// Query params: from, to (required, YYYY-MM-DD), includeBlocked (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /occupancy - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getOccupancy.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /occupancy - Failed to build occupancy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /occupancy - Occupancy built: from=%s, to=%s, slots=%d, non_compliant=%d",
		response.From, response.To, len(response.Slots), response.NonCompliant)
	handlers.RespondJSON(w, http.StatusOK, response)
}
