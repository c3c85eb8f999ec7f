package get_user_children

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/service/children/models"
)

type ChildService interface {
	GetParentChildren(ctx context.Context, parentID, requesterID string) (*models.ChildListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
