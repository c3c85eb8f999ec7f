package bookings

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByParentID(ctx context.Context, parentID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetActiveBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, reason *string) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
}

// ComplianceCache интерфейс кэша результатов проверки соотношений
type ComplianceCache interface {
	Invalidate(ctx context.Context, slotIDs ...string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
