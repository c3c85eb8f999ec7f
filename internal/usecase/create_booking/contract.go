package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error)
	ExistsActive(ctx context.Context, childID, slotID string) (bool, error)
}

// ChildRepository интерфейс репозитория детей
type ChildRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Child, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
}

// StaffRepository интерфейс репозитория персонала
type StaffRepository interface {
	GetBySlotID(ctx context.Context, slotID string) ([]domain.StaffMember, error)
}

// ComplianceCache интерфейс кэша результатов проверки соотношений
type ComplianceCache interface {
	Invalidate(ctx context.Context, slotIDs ...string) error
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	RecordBookingRejected(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
