package bookings

import (
	"context"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

type mockBookingRepository struct {
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Booking, error)
	GetByParentIDFunc     func(ctx context.Context, parentID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetActiveBySlotIDFunc func(ctx context.Context, slotID string) ([]*domain.Booking, error)
	CancelFunc            func(ctx context.Context, id string, reason *string) error
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockBookingRepository) GetByParentID(ctx context.Context, parentID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.GetByParentIDFunc(ctx, parentID, status)
}

func (m *mockBookingRepository) GetActiveBySlotID(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	return m.GetActiveBySlotIDFunc(ctx, slotID)
}

func (m *mockBookingRepository) Cancel(ctx context.Context, id string, reason *string) error {
	return m.CancelFunc(ctx, id, reason)
}

type mockSlotRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Slot, error)
}

func (m *mockSlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockCache struct {
	invalidated []string
	err         error
}

func (m *mockCache) Invalidate(_ context.Context, slotIDs ...string) error {
	m.invalidated = append(m.invalidated, slotIDs...)
	return m.err
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
