package staff

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

const uniqueViolation = "23505"

var staffColumns = []string{
	"s.id",
	"s.name",
	"s.email",
	"s.qualification_level",
	"s.is_pfa_holder",
	"s.created_at",
	"s.updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет сотрудника
func (r *Repository) Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	member.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("staff").
		Columns("id", "name", "email", "qualification_level", "is_pfa_holder").
		Values(member.ID, member.Name, member.Email, member.QualificationLevel, member.IsPFAHolder).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return member, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff s").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	member, err := scanMember(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return member, nil
}

// List получает всех сотрудников, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]domain.StaffMember, error) {
	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff s").
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// GetBySlotID получает смену слота (сотрудников, назначенных на слот)
// В транзакции блокирует назначения от изменения до конца проверки вместимости
func (r *Repository) GetBySlotID(ctx context.Context, slotID string) ([]domain.StaffMember, error) {
	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff s").
		Join("staff_schedules ss ON ss.staff_id = s.id").
		Where(squirrel.Eq{"ss.slot_id": slotID}).
		OrderBy("s.name ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE OF ss")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetBySlotID", query, args)
}

// GetBySlotIDs получает смены нескольких слотов, сгруппированные по слоту
func (r *Repository) GetBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]domain.StaffMember, error) {
	result := make(map[string][]domain.StaffMember, len(slotIDs))
	if len(slotIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append([]string{"ss.slot_id"}, staffColumns...)...).
		From("staff s").
		Join("staff_schedules ss ON ss.staff_id = s.id").
		Where(squirrel.Eq{"ss.slot_id": slotIDs}).
		OrderBy("ss.slot_id ASC", "s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var slotID string
		var member domain.StaffMember
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slotID,
			&member.ID,
			&member.Name,
			&member.Email,
			&member.QualificationLevel,
			&member.IsPFAHolder,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySlotIDs - scan row: %v", ErrScanRow, err)
		}

		member.CreatedAt = createdAt.Time
		member.UpdatedAt = updatedAt.Time
		result[slotID] = append(result[slotID], member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySlotIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет данные сотрудника
func (r *Repository) Update(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff").
		Set("name", member.Name).
		Set("email", member.Email).
		Set("qualification_level", member.QualificationLevel).
		Set("is_pfa_holder", member.IsPFAHolder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": member.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return member, nil
}

// Delete удаляет сотрудника вместе с его назначениями на слоты
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, method, query string, args []interface{}) ([]domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	members := make([]domain.StaffMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		members = append(members, *member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return members, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row rowScanner) (*domain.StaffMember, error) {
	var member domain.StaffMember
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.QualificationLevel,
		&member.IsPFAHolder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
