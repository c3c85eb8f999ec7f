package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-NurseryService/internal/service/slots/models"
	"github.com/m04kA/SMC-NurseryService/pkg/logger"
	"github.com/m04kA/SMC-NurseryService/pkg/ptr"
)

type mockSlotRepository struct {
	CreateFunc     func(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Slot, error)
	SetBlockedFunc func(ctx context.Context, id string, blocked bool) error

	ListByRangeFunc func(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

func (m *mockSlotRepository) ListByRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	return m.ListByRangeFunc(ctx, filter)
}

func (m *mockSlotRepository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	return m.CreateFunc(ctx, slot)
}

func (m *mockSlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockSlotRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	return m.SetBlockedFunc(ctx, id, blocked)
}

func echoCreate(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	slot.ID = "slot-1"
	return slot, nil
}

func TestCreate_DefaultSessionTimes(t *testing.T) {
	svc := NewService(&mockSlotRepository{CreateFunc: echoCreate}, logger.NewNop())

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date:    "2026-03-02",
		Session: "morning",
	})

	require.NoError(t, err)
	assert.Equal(t, "slot-1", resp.ID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "08:00", resp.StartTime)
	assert.Equal(t, "13:00", resp.EndTime)
}

func TestCreate_CustomTimes(t *testing.T) {
	svc := NewService(&mockSlotRepository{CreateFunc: echoCreate}, logger.NewNop())

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date:      "2026-03-02",
		Session:   "afternoon",
		StartTime: ptr.Ptr("12:30"),
		EndTime:   ptr.Ptr("17:30"),
	})

	require.NoError(t, err)
	assert.Equal(t, "12:30", resp.StartTime)
	assert.Equal(t, "17:30", resp.EndTime)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateSlotRequest
		wantErr error
	}{
		{
			name:    "bad date",
			req:     &models.CreateSlotRequest{Date: "02/03/2026", Session: "morning"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown session",
			req:     &models.CreateSlotRequest{Date: "2026-03-02", Session: "evening"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time",
			req:     &models.CreateSlotRequest{Date: "2026-03-02", Session: "morning", StartTime: ptr.Ptr("8am")},
			wantErr: ErrInvalidInput,
		},
		{
			name: "end before start",
			req: &models.CreateSlotRequest{
				Date: "2026-03-02", Session: "morning", StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("09:00"),
			},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockSlotRepository{}, logger.NewNop())

			_, err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &mockSlotRepository{
		CreateFunc: func(context.Context, *domain.Slot) (*domain.Slot, error) {
			return nil, slotRepo.ErrSlotAlreadyExists
		},
	}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{Date: "2026-03-02", Session: "full_day"})

	assert.ErrorIs(t, err, ErrSlotAlreadyExists)
}

func TestSetBlocked(t *testing.T) {
	var blocked bool
	repo := &mockSlotRepository{
		SetBlockedFunc: func(_ context.Context, id string, b bool) error {
			if id == "missing" {
				return slotRepo.ErrSlotNotFound
			}
			blocked = b
			return nil
		},
		GetByIDFunc: func(_ context.Context, id string) (*domain.Slot, error) {
			return &domain.Slot{
				ID:        id,
				Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				Session:   domain.SessionMorning,
				StartTime: "08:00",
				EndTime:   "13:00",
				IsBlocked: blocked,
			}, nil
		},
	}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.SetBlocked(context.Background(), "slot-1", &models.SetBlockedRequest{IsBlocked: true})
	require.NoError(t, err)
	assert.True(t, resp.IsBlocked)

	_, err = svc.SetBlocked(context.Background(), "missing", &models.SetBlockedRequest{IsBlocked: true})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestList(t *testing.T) {
	var got domain.SlotFilter
	repo := &mockSlotRepository{
		ListByRangeFunc: func(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
			got = filter
			return []*domain.Slot{
				{ID: "slot-1", Date: filter.From, Session: domain.SessionMorning, StartTime: "08:00", EndTime: "13:00"},
			}, nil
		},
	}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{From: "2026-03-02", To: "2026-03-06"})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-03-02", resp.Slots[0].Date)
	assert.False(t, got.IncludeBlocked)
	assert.Equal(t, 6, got.To.Day())

	_, err = svc.List(context.Background(), &models.ListSlotsRequest{From: "2026-03-06", To: "2026-03-02"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListSlotsRequest{From: "2026-01-01", To: "2026-06-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
