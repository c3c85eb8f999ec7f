package get_booking

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id string, parentID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
