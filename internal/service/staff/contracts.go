package staff

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	List(ctx context.Context) ([]domain.StaffMember, error)
	Update(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleRepository интерфейс репозитория назначений на слоты
type ScheduleRepository interface {
	Assign(ctx context.Context, staffID, slotID string) (*domain.StaffSchedule, error)
	Unassign(ctx context.Context, staffID, slotID string) error
	GetSlotIDsByStaffID(ctx context.Context, staffID string) ([]string, error)
}

// ComplianceCache интерфейс кэша результатов проверки соотношений
type ComplianceCache interface {
	Invalidate(ctx context.Context, slotIDs ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
