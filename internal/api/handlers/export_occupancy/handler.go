package export_occupancy

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
	useCase ExportOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase ExportOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy/export
// Отдает календарь загрузки за период файлом xlsx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, to, err := handlers.ParseDateRange(query)
	if err != nil {
		h.logger.Warn("GET /occupancy/export - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &getOccupancy.Request{
		From:           from,
		To:             to,
		IncludeBlocked: query.Get("includeBlocked") == "true",
	}

	data, err := h.useCase.ExportXLSX(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getOccupancy.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /occupancy/export - Failed to export occupancy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := getOccupancy.ExportFilename(req)
	h.logger.Info("GET /occupancy/export - Export ready: file=%s, size=%d", filename, len(data))
	handlers.RespondFile(w, getOccupancy.ExportContentType, filename, data)
}
