package get_slot_compliance

import (
	"context"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/internal/infra/cache/slotcompliance"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
}

// StaffRepository интерфейс репозитория персонала
type StaffRepository interface {
	// GetBySlotID получает состав смены, назначенной на слот
	GetBySlotID(ctx context.Context, slotID string) ([]domain.StaffMember, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error)
}

// ComplianceCache интерфейс кэша результатов проверки
type ComplianceCache interface {
	Get(ctx context.Context, slotID string) (*slotcompliance.Entry, error)
	// Version читается до загрузки данных, Set пропускает запись, если версия успела измениться
	Version(ctx context.Context, slotID string) (int64, error)
	Set(ctx context.Context, entry *slotcompliance.Entry, version int64) error
}

// Metrics интерфейс метрик проверки соотношений
type Metrics interface {
	RecordCompliance(compliant bool, pfaCompliant bool)
	RecordCacheLookup(hit bool)
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
