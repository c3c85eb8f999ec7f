package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-NurseryService/pkg/psqlbuilder"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repository репозиторий назначений сотрудников на слоты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Assign назначает сотрудника на слот
func (r *Repository) Assign(ctx context.Context, staffID, slotID string) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule := &domain.StaffSchedule{
		ID:      uuid.NewString(),
		StaffID: staffID,
		SlotID:  slotID,
	}

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns("id", "staff_id", "slot_id").
		Values(schedule.ID, schedule.StaffID, schedule.SlotID).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Assign - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case uniqueViolation:
				return nil, ErrAlreadyAssigned
			case foreignKeyViolation:
				return nil, ErrReferenceNotFound
			}
		}
		return nil, fmt.Errorf("%w: Assign - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time

	return schedule, nil
}

// Unassign снимает сотрудника со слота
func (r *Repository) Unassign(ctx context.Context, staffID, slotID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID, "slot_id": slotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Unassign - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unassign - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unassign - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// GetSlotIDsByStaffID получает слоты, на которые назначен сотрудник
// Используется для сброса кэша при изменении квалификации или удалении сотрудника
func (r *Repository) GetSlotIDsByStaffID(ctx context.Context, staffID string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_id").
		From("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotIDsByStaffID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotIDsByStaffID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slotIDs := make([]string, 0)
	for rows.Next() {
		var slotID string
		if err := rows.Scan(&slotID); err != nil {
			return nil, fmt.Errorf("%w: GetSlotIDsByStaffID - scan slot_id: %v", ErrScanRow, err)
		}
		slotIDs = append(slotIDs, slotID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotIDsByStaffID - rows error: %v", ErrScanRow, err)
	}

	return slotIDs, nil
}
