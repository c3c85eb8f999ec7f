package assign_staff

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/service/staff/models"
)

type StaffService interface {
	AssignToSlot(ctx context.Context, slotID, staffID string) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
