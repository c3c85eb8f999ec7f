package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	childRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/child"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-NurseryService/pkg/logger"
)

// Mock implementations

type mockBookingRepository struct {
	CreateFunc            func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveBySlotIDFunc func(ctx context.Context, slotID string) ([]*domain.Booking, error)
	ExistsActiveFunc      func(ctx context.Context, childID, slotID string) (bool, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.CreateFunc(ctx, booking)
}

func (m *mockBookingRepository) GetActiveBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	return m.GetActiveBySlotIDFunc(ctx, slotID)
}

func (m *mockBookingRepository) ExistsActive(ctx context.Context, childID, slotID string) (bool, error) {
	return m.ExistsActiveFunc(ctx, childID, slotID)
}

type mockChildRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Child, error)
}

func (m *mockChildRepository) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockSlotRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Slot, error)
}

func (m *mockSlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockStaffRepository struct {
	GetBySlotIDFunc func(ctx context.Context, slotID string) ([]domain.StaffMember, error)
}

func (m *mockStaffRepository) GetBySlotID(ctx context.Context, slotID string) ([]domain.StaffMember, error) {
	return m.GetBySlotIDFunc(ctx, slotID)
}

type mockCache struct {
	invalidated []string
}

func (m *mockCache) Invalidate(_ context.Context, slotIDs ...string) error {
	m.invalidated = append(m.invalidated, slotIDs...)
	return nil
}

type mockMetrics struct {
	rejected []string
}

func (m *mockMetrics) RecordBookingRejected(reason string) {
	m.rejected = append(m.rejected, reason)
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
}

// Test fixtures

var (
	slotDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	now      = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc       *UseCase
	bookings *mockBookingRepository
	children *mockChildRepository
	slots    *mockSlotRepository
	staff    *mockStaffRepository
	cache    *mockCache
	metrics  *mockMetrics
	created  *domain.Booking
}

func newFixture() *fixture {
	f := &fixture{
		cache:   &mockCache{},
		metrics: &mockMetrics{},
	}

	f.children = &mockChildRepository{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Child, error) {
			if id != "child-1" {
				return nil, childRepo.ErrChildNotFound
			}
			return &domain.Child{
				ID:          "child-1",
				ParentID:    "parent-1",
				Name:        "Ava",
				DateOfBirth: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), // under_2 на дату слота
			}, nil
		},
	}
	f.slots = &mockSlotRepository{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Slot, error) {
			if id != "slot-1" {
				return nil, slotRepo.ErrSlotNotFound
			}
			return &domain.Slot{
				ID:        "slot-1",
				Date:      slotDate,
				Session:   domain.SessionMorning,
				StartTime: "08:00",
				EndTime:   "13:00",
			}, nil
		},
	}
	f.staff = &mockStaffRepository{
		GetBySlotIDFunc: func(_ context.Context, _ string) ([]domain.StaffMember, error) {
			// Одна сотрудница Level 3 с PFA: 3 места для младшей группы
			return []domain.StaffMember{
				{QualificationLevel: domain.QualificationLevel3Approved, IsPFAHolder: true},
			}, nil
		},
	}
	f.bookings = &mockBookingRepository{
		ExistsActiveFunc: func(_ context.Context, _, _ string) (bool, error) { return false, nil },
		GetActiveBySlotIDFunc: func(_ context.Context, _ string) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{Status: domain.StatusConfirmed, ChildDateOfBirth: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
		CreateFunc: func(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = "bk-new"
			booking.CreatedAt = now
			booking.UpdatedAt = now
			f.created = booking
			return booking, nil
		},
	}

	f.uc = NewUseCase(f.bookings, f.children, f.slots, f.staff, f.cache, f.metrics, &mockTxManager{}, logger.NewNop())
	f.uc.timeProvider = &mockTimeProvider{now: now}
	return f
}

func validRequest() *Request {
	return &Request{ParentID: "parent-1", ChildID: "child-1", SlotID: "slot-1"}
}

// Tests

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "bk-new", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.AgeBandUnder2, resp.AgeBand)
	assert.Equal(t, 1, resp.RemainingPlaces) // 3 места, 1 занято, 1 новое

	require.NotNil(t, f.created)
	assert.Equal(t, domain.StatusConfirmed, f.created.Status)
	assert.Equal(t, "parent-1", f.created.ParentID)
	assert.Equal(t, []string{"slot-1"}, f.cache.invalidated)
}

func TestExecute_NoCapacity(t *testing.T) {
	f := newFixture()
	f.bookings.GetActiveBySlotIDFunc = func(_ context.Context, _ string) ([]*domain.Booking, error) {
		under2 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		return []*domain.Booking{
			{Status: domain.StatusConfirmed, ChildDateOfBirth: under2},
			{Status: domain.StatusConfirmed, ChildDateOfBirth: under2},
			{Status: domain.StatusPending, ChildDateOfBirth: under2},
		}, nil
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoCapacity)
	assert.Nil(t, f.created)
	assert.Empty(t, f.cache.invalidated)
	assert.Equal(t, []string{rejectNoCapacity}, f.metrics.rejected)
}

func TestExecute_NoPFAHolder(t *testing.T) {
	f := newFixture()
	f.staff.GetBySlotIDFunc = func(_ context.Context, _ string) ([]domain.StaffMember, error) {
		return []domain.StaffMember{
			{QualificationLevel: domain.QualificationQTS},
			{QualificationLevel: domain.QualificationLevel3Approved},
		}, nil
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoCapacity)
	assert.Equal(t, []string{rejectNoPFA}, f.metrics.rejected)
}

func TestExecute_EmptyRoster(t *testing.T) {
	f := newFixture()
	f.staff.GetBySlotIDFunc = func(_ context.Context, _ string) ([]domain.StaffMember, error) {
		return nil, nil
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoCapacity)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name:    "missing child id",
			modify:  func(_ *fixture, req *Request) { req.ChildID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown child",
			modify:  func(_ *fixture, req *Request) { req.ChildID = "child-404" },
			wantErr: ErrChildNotFound,
		},
		{
			name:    "child of another parent",
			modify:  func(_ *fixture, req *Request) { req.ParentID = "parent-2" },
			wantErr: ErrAccessDenied,
		},
		{
			name:    "unknown slot",
			modify:  func(_ *fixture, req *Request) { req.SlotID = "slot-404" },
			wantErr: ErrSlotNotFound,
		},
		{
			name: "blocked slot",
			modify: func(f *fixture, _ *Request) {
				f.slots.GetByIDFunc = func(_ context.Context, id string) (*domain.Slot, error) {
					return &domain.Slot{ID: id, Date: slotDate, StartTime: "08:00", EndTime: "13:00", IsBlocked: true}, nil
				}
			},
			wantErr: ErrSlotBlocked,
		},
		{
			name: "slot already started",
			modify: func(f *fixture, _ *Request) {
				f.uc.timeProvider = &mockTimeProvider{now: slotDate.Add(9 * time.Hour)}
			},
			wantErr: ErrSlotInPast,
		},
		{
			name: "already booked",
			modify: func(f *fixture, _ *Request) {
				f.bookings.ExistsActiveFunc = func(_ context.Context, _, _ string) (bool, error) { return true, nil }
			},
			wantErr: ErrAlreadyBooked,
		},
		{
			name: "repository failure",
			modify: func(f *fixture, _ *Request) {
				f.bookings.ExistsActiveFunc = func(_ context.Context, _, _ string) (bool, error) {
					return false, errors.New("connection refused")
				}
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.modify(f, req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.created)
		})
	}
}
