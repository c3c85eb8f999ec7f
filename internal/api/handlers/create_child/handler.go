package create_child

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/api/middleware"
	"github.com/m04kA/SMC-NurseryService/internal/service/children"
	"github.com/m04kA/SMC-NurseryService/internal/service/children/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidData        = "некорректные данные ребенка"
)

type Handler struct {
	service ChildService
	logger  Logger
}

func NewHandler(service ChildService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/children
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /children - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateChildRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /children - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ParentID = parentID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, children.ErrInvalidInput) {
			h.logger.Warn("POST /children - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /children - Failed to create child: parent_id=%s, error=%v", parentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /children - Child registered: child_id=%s, parent_id=%s", result.ID, parentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
