package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-NurseryService/internal/service/bookings/models"
	"github.com/m04kA/SMC-NurseryService/pkg/logger"
	"github.com/m04kA/SMC-NurseryService/pkg/ptr"
)

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               "bk-1",
		ChildID:          "child-1",
		SlotID:           "slot-1",
		ParentID:         "parent-1",
		Status:           status,
		ChildName:        "Oliver",
		ChildDateOfBirth: time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *mockBookingRepository, cache *mockCache) (*Service, *mockTxManager) {
	tx := &mockTxManager{}
	slots := &mockSlotRepository{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Slot, error) {
			if id != "slot-1" {
				return nil, slotRepo.ErrSlotNotFound
			}
			return &domain.Slot{ID: id}, nil
		},
	}
	return NewService(repo, slots, cache, tx, logger.NewNop()), tx
}

func TestGetByID(t *testing.T) {
	repo := &mockBookingRepository{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Booking, error) {
			if id == "missing" {
				return nil, bookingRepo.ErrBookingNotFound
			}
			return testBooking(domain.StatusConfirmed), nil
		},
	}
	svc, _ := newTestService(repo, &mockCache{})

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "bk-1", "parent-1")
		require.NoError(t, err)
		assert.Equal(t, "bk-1", resp.ID)
		assert.Equal(t, "2023-06-10", resp.ChildDateOfBirth)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("other parent", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "bk-1", "parent-2")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing", "parent-1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetParentBookings(t *testing.T) {
	var gotStatus *domain.BookingStatus
	repo := &mockBookingRepository{
		GetByParentIDFunc: func(_ context.Context, _ string, status *domain.BookingStatus) ([]*domain.Booking, error) {
			gotStatus = status
			return []*domain.Booking{testBooking(domain.StatusCancelled)}, nil
		},
	}
	svc, _ := newTestService(repo, &mockCache{})

	resp, err := svc.GetParentBookings(context.Background(), &models.GetParentBookingsRequest{
		ParentID:    "parent-1",
		RequesterID: "parent-1",
		Status:      ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.StatusCancelled, *gotStatus)

	_, err = svc.GetParentBookings(context.Background(), &models.GetParentBookingsRequest{
		ParentID:    "parent-1",
		RequesterID: "parent-1",
		Status:      ptr.Ptr("no_show"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetParentBookings(context.Background(), &models.GetParentBookingsRequest{
		ParentID:    "parent-1",
		RequesterID: "parent-9",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetSlotBookings(t *testing.T) {
	repo := &mockBookingRepository{
		GetActiveBySlotIDFunc: func(_ context.Context, _ string) ([]*domain.Booking, error) {
			return []*domain.Booking{testBooking(domain.StatusConfirmed), testBooking(domain.StatusPending)}, nil
		},
	}
	svc, _ := newTestService(repo, &mockCache{})

	resp, err := svc.GetSlotBookings(context.Background(), "slot-1")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = svc.GetSlotBookings(context.Background(), "slot-404")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels active booking", func(t *testing.T) {
		var gotReason *string
		repo := &mockBookingRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Booking, error) {
				return testBooking(domain.StatusConfirmed), nil
			},
			CancelFunc: func(_ context.Context, _ string, reason *string) error {
				gotReason = reason
				return nil
			},
		}
		cache := &mockCache{}
		svc, tx := newTestService(repo, cache)

		err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{
			ParentID:           "parent-1",
			CancellationReason: ptr.Ptr("  holiday "),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, tx.calls)
		require.NotNil(t, gotReason)
		assert.Equal(t, "holiday", *gotReason)
		assert.Equal(t, []string{"slot-1"}, cache.invalidated)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := &mockBookingRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Booking, error) {
				return testBooking(domain.StatusCancelled), nil
			},
		}
		cache := &mockCache{}
		svc, _ := newTestService(repo, cache)

		err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{ParentID: "parent-1"})

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("other parent", func(t *testing.T) {
		repo := &mockBookingRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Booking, error) {
				return testBooking(domain.StatusPending), nil
			},
		}
		svc, _ := newTestService(repo, &mockCache{})

		err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{ParentID: "parent-2"})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc, tx := newTestService(&mockBookingRepository{}, &mockCache{})

		err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{
			ParentID:           "parent-1",
			CancellationReason: ptr.Ptr(strings.Repeat("x", domain.MaxCancellationReasonLength+1)),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, tx.calls)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		repo := &mockBookingRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Booking, error) {
				return testBooking(domain.StatusConfirmed), nil
			},
			CancelFunc: func(_ context.Context, _ string, _ *string) error { return nil },
		}
		svc, _ := newTestService(repo, &mockCache{err: errors.New("redis down")})

		err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{ParentID: "parent-1"})

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockBookingRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Booking, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc, _ := newTestService(repo, &mockCache{})

		err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{ParentID: "parent-1"})

		assert.ErrorIs(t, err, ErrInternal)
	})
}
