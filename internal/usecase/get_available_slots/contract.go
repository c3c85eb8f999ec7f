package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// StaffRepository интерфейс репозитория персонала
type StaffRepository interface {
	GetBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]domain.StaffMember, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveBySlotIDs получает активные бронирования сразу для нескольких слотов
	GetActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]*domain.Booking, error)
}

// ChildRepository интерфейс репозитория детей
type ChildRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Child, error)
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
