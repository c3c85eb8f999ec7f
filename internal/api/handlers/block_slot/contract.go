package block_slot

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/service/slots/models"
)

type SlotService interface {
	SetBlocked(ctx context.Context, id string, req *models.SetBlockedRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
