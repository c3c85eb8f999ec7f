package child

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-NurseryService/pkg/psqlbuilder"
)

var childColumns = []string{
	"id",
	"parent_id",
	"name",
	"date_of_birth",
	"special_requirements",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с детьми
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория детей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует ребенка
func (r *Repository) Create(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	child.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("children").
		Columns("id", "parent_id", "name", "date_of_birth", "special_requirements").
		Values(child.ID, child.ParentID, child.Name, child.DateOfBirth, child.SpecialRequirements).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	child.CreatedAt = createdAt.Time
	child.UpdatedAt = updatedAt.Time

	return child, nil
}

// GetByID получает ребенка по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(childColumns...).
		From("children").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	child, err := scanChild(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrChildNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan child: %v", ErrScanRow, err)
	}

	return child, nil
}

// GetByParentID получает детей родителя
func (r *Repository) GetByParentID(ctx context.Context, parentID string) ([]*domain.Child, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(childColumns...).
		From("children").
		Where(squirrel.Eq{"parent_id": parentID}).
		OrderBy("date_of_birth ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByParentID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByParentID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	children := make([]*domain.Child, 0)
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByParentID - scan row: %v", ErrScanRow, err)
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByParentID - rows error: %v", ErrScanRow, err)
	}

	return children, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChild(row rowScanner) (*domain.Child, error) {
	var child domain.Child
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&child.ID,
		&child.ParentID,
		&child.Name,
		&child.DateOfBirth,
		&child.SpecialRequirements,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	child.CreatedAt = createdAt.Time
	child.UpdatedAt = updatedAt.Time

	return &child, nil
}
