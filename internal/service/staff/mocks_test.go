package staff

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

type mockStaffRepository struct {
	CreateFunc  func(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.StaffMember, error)
	ListFunc    func(ctx context.Context) ([]domain.StaffMember, error)
	UpdateFunc  func(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockStaffRepository) Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	return m.CreateFunc(ctx, member)
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockStaffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	return m.ListFunc(ctx)
}

func (m *mockStaffRepository) Update(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	return m.UpdateFunc(ctx, member)
}

func (m *mockStaffRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockScheduleRepository struct {
	AssignFunc              func(ctx context.Context, staffID, slotID string) (*domain.StaffSchedule, error)
	UnassignFunc            func(ctx context.Context, staffID, slotID string) error
	GetSlotIDsByStaffIDFunc func(ctx context.Context, staffID string) ([]string, error)
}

func (m *mockScheduleRepository) Assign(ctx context.Context, staffID, slotID string) (*domain.StaffSchedule, error) {
	return m.AssignFunc(ctx, staffID, slotID)
}

func (m *mockScheduleRepository) Unassign(ctx context.Context, staffID, slotID string) error {
	return m.UnassignFunc(ctx, staffID, slotID)
}

func (m *mockScheduleRepository) GetSlotIDsByStaffID(ctx context.Context, staffID string) ([]string, error) {
	if m.GetSlotIDsByStaffIDFunc == nil {
		return nil, nil
	}
	return m.GetSlotIDsByStaffIDFunc(ctx, staffID)
}

type mockCache struct {
	invalidated []string
	err         error
}

func (m *mockCache) Invalidate(_ context.Context, slotIDs ...string) error {
	m.invalidated = append(m.invalidated, slotIDs...)
	return m.err
}
