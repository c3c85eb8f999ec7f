package export_occupancy

import (
	"context"

	getOccupancy "github.com/m04kA/SMC-NurseryService/internal/usecase/get_occupancy"
)

type ExportOccupancyUseCase interface {
	ExportXLSX(ctx context.Context, req *getOccupancy.Request) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
