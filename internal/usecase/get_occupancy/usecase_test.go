package get_occupancy

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/pkg/logger"
)

type mockSlotRepository struct {
	ListByRangeFunc func(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

func (m *mockSlotRepository) ListByRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	return m.ListByRangeFunc(ctx, filter)
}

type mockStaffRepository struct {
	GetBySlotIDsFunc func(ctx context.Context, slotIDs []string) (map[string][]domain.StaffMember, error)
}

func (m *mockStaffRepository) GetBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]domain.StaffMember, error) {
	return m.GetBySlotIDsFunc(ctx, slotIDs)
}

type mockBookingRepository struct {
	GetActiveBySlotIDsFunc func(ctx context.Context, slotIDs []string) (map[string][]*domain.Booking, error)
}

func (m *mockBookingRepository) GetActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]*domain.Booking, error) {
	return m.GetActiveBySlotIDsFunc(ctx, slotIDs)
}

type mockTxManager struct{ calls int }

func (m *mockTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockMetrics struct{ evaluations int }

func (m *mockMetrics) RecordCompliance(bool, bool) { m.evaluations++ }

var (
	monday  = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tuesday = monday.AddDate(0, 0, 1)
)

func newTestUseCase() (*UseCase, *mockStaffRepository, *mockMetrics) {
	slots := &mockSlotRepository{
		ListByRangeFunc: func(_ context.Context, _ domain.SlotFilter) ([]*domain.Slot, error) {
			return []*domain.Slot{
				{ID: "s-1", Date: monday, Session: domain.SessionMorning, StartTime: "08:00", EndTime: "13:00"},
				{ID: "s-2", Date: tuesday, Session: domain.SessionFullDay, StartTime: "08:00", EndTime: "18:00"},
			}, nil
		},
	}
	staff := &mockStaffRepository{
		GetBySlotIDsFunc: func(_ context.Context, _ []string) (map[string][]domain.StaffMember, error) {
			return map[string][]domain.StaffMember{
				"s-1": {
					{QualificationLevel: domain.QualificationLevel3Approved, IsPFAHolder: true},
					{QualificationLevel: domain.QualificationQTS},
				},
				// s-2 без персонала
			}, nil
		},
	}
	bookings := &mockBookingRepository{
		GetActiveBySlotIDsFunc: func(_ context.Context, _ []string) (map[string][]*domain.Booking, error) {
			threePlus := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
			return map[string][]*domain.Booking{
				"s-1": {{Status: domain.StatusConfirmed, ChildDateOfBirth: threePlus}},
				"s-2": {{Status: domain.StatusConfirmed, ChildDateOfBirth: threePlus}},
			}, nil
		},
	}
	metrics := &mockMetrics{}
	uc := NewUseCase(slots, staff, bookings, &mockTxManager{}, metrics, 0, logger.NewNop())
	return uc, staff, metrics
}

func TestExecute(t *testing.T) {
	uc, _, metrics := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{From: monday, To: tuesday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	first := resp.Slots[0]
	assert.Equal(t, 2, first.Staff.Total)
	assert.Equal(t, 26, first.Result.MaxCapacity[domain.AgeBandThreePlus])
	assert.True(t, first.Result.Compliant)

	second := resp.Slots[1]
	assert.Equal(t, 0, second.Staff.Total)
	assert.False(t, second.Result.PFACompliant)
	assert.False(t, second.Result.Compliant)
	assert.Equal(t, 1, second.Counts[domain.AgeBandThreePlus])

	assert.Equal(t, 1, resp.NonCompliant())
	assert.Equal(t, 2, metrics.evaluations)
}

func TestExecute_EmptyRangeSkipsLookups(t *testing.T) {
	uc, staff, _ := newTestUseCase()
	uc.slotRepo = &mockSlotRepository{
		ListByRangeFunc: func(_ context.Context, _ domain.SlotFilter) ([]*domain.Slot, error) { return nil, nil },
	}
	staff.GetBySlotIDsFunc = func(_ context.Context, _ []string) (map[string][]domain.StaffMember, error) {
		t.Fatal("staff must not be loaded for an empty range")
		return nil, nil
	}

	resp, err := uc.Execute(context.Background(), &Request{From: monday, To: monday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := newTestUseCase()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing dates", &Request{}, ErrInvalidInput},
		{"reversed range", &Request{From: tuesday, To: monday}, ErrInvalidInput},
		{"range too large", &Request{From: monday, To: monday.AddDate(0, 0, domain.MaxOccupancyRangeDays)}, ErrRangeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_MaxRangeIsInclusive(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		From: monday,
		To:   monday.AddDate(0, 0, domain.MaxOccupancyRangeDays-1),
	})

	assert.NoError(t, err)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc, staff, _ := newTestUseCase()
	staff.GetBySlotIDsFunc = func(_ context.Context, _ []string) (map[string][]domain.StaffMember, error) {
		return nil, errors.New("timeout")
	}

	_, err := uc.Execute(context.Background(), &Request{From: monday, To: tuesday})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExportXLSX(t *testing.T) {
	uc, _, _ := newTestUseCase()

	data, err := uc.ExportXLSX(context.Background(), &Request{From: monday, To: tuesday})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(occupancySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader(), rows[0])
	assert.Equal(t, "2026-06-01", rows[1][0])
	assert.Equal(t, "morning", rows[1][1])
	assert.Equal(t, "08:00-13:00", rows[1][2])

	last := len(rows[2]) - 1
	assert.Contains(t, rows[2][last], domain.IssueNoPFAHolder)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "occupancy_2026-06-01_2026-06-02.xlsx", ExportFilename(&Request{From: monday, To: tuesday}))
}
