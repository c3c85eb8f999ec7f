package get_slot_compliance

import (
	"context"

	getSlotCompliance "github.com/m04kA/SMC-NurseryService/internal/usecase/get_slot_compliance"
)

type GetSlotComplianceUseCase interface {
	Execute(ctx context.Context, req *getSlotCompliance.Request) (*getSlotCompliance.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
