package get_occupancy

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// StaffRepository интерфейс репозитория персонала
type StaffRepository interface {
	// GetBySlotIDs получает смены сразу для нескольких слотов (slotID -> состав)
	GetBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]domain.StaffMember, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик проверки соотношений
type Metrics interface {
	RecordCompliance(compliant bool, pfaCompliant bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
