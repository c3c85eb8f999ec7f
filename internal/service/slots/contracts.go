package slots

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	ListByRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
	SetBlocked(ctx context.Context, id string, blocked bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
