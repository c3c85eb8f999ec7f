package children

import (
	"context"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// ChildRepository интерфейс репозитория детей
type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) (*domain.Child, error)
	GetByParentID(ctx context.Context, parentID string) ([]*domain.Child, error)
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
