package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-NurseryService/internal/service/staff/models"
	"github.com/m04kA/SMC-NurseryService/pkg/logger"
)

func validRequest() *models.StaffRequest {
	return &models.StaffRequest{
		Name:               "  Sarah Jones ",
		Email:              "Sarah@Nursery.test",
		QualificationLevel: "Level 3 Approved",
		IsPFAHolder:        true,
	}
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockStaffRepository{
			CreateFunc: func(_ context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
				member.ID = "st-1"
				return member, nil
			},
		}
		svc := NewService(repo, &mockScheduleRepository{}, &mockCache{}, logger.NewNop())

		resp, err := svc.Create(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "st-1", resp.ID)
		assert.Equal(t, "Sarah Jones", resp.Name)
		assert.Equal(t, "sarah@nursery.test", resp.Email)
		assert.Equal(t, "Level 3 Approved", resp.QualificationLevel)
		assert.True(t, resp.IsPFAHolder)
	})

	t.Run("unknown qualification level is rejected", func(t *testing.T) {
		svc := NewService(&mockStaffRepository{}, &mockScheduleRepository{}, &mockCache{}, logger.NewNop())
		req := validRequest()
		req.QualificationLevel = "Level 4 Diploma"

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewService(&mockStaffRepository{}, &mockScheduleRepository{}, &mockCache{}, logger.NewNop())
		req := validRequest()
		req.Email = "not-an-email"

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := &mockStaffRepository{
			CreateFunc: func(context.Context, *domain.StaffMember) (*domain.StaffMember, error) {
				return nil, staffRepo.ErrEmailTaken
			},
		}
		svc := NewService(repo, &mockScheduleRepository{}, &mockCache{}, logger.NewNop())

		_, err := svc.Create(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUpdate_InvalidatesAssignedSlots(t *testing.T) {
	repo := &mockStaffRepository{
		UpdateFunc: func(_ context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
			return member, nil
		},
	}
	schedules := &mockScheduleRepository{
		GetSlotIDsByStaffIDFunc: func(_ context.Context, staffID string) ([]string, error) {
			assert.Equal(t, "st-1", staffID)
			return []string{"slot-1", "slot-2"}, nil
		},
	}
	cache := &mockCache{}
	svc := NewService(repo, schedules, cache, logger.NewNop())

	resp, err := svc.Update(context.Background(), "st-1", validRequest())

	require.NoError(t, err)
	assert.Equal(t, "st-1", resp.ID)
	assert.Equal(t, []string{"slot-1", "slot-2"}, cache.invalidated)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockStaffRepository{
		UpdateFunc: func(context.Context, *domain.StaffMember) (*domain.StaffMember, error) {
			return nil, staffRepo.ErrStaffNotFound
		},
	}
	cache := &mockCache{}
	svc := NewService(repo, &mockScheduleRepository{}, cache, logger.NewNop())

	_, err := svc.Update(context.Background(), "missing", validRequest())

	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.Empty(t, cache.invalidated)
}

func TestDelete(t *testing.T) {
	t.Run("invalidates slots captured before delete", func(t *testing.T) {
		deleted := false
		repo := &mockStaffRepository{
			DeleteFunc: func(context.Context, string) error {
				deleted = true
				return nil
			},
		}
		schedules := &mockScheduleRepository{
			GetSlotIDsByStaffIDFunc: func(context.Context, string) ([]string, error) {
				assert.False(t, deleted)
				return []string{"slot-9"}, nil
			},
		}
		cache := &mockCache{}
		svc := NewService(repo, schedules, cache, logger.NewNop())

		require.NoError(t, svc.Delete(context.Background(), "st-1"))
		assert.Equal(t, []string{"slot-9"}, cache.invalidated)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockStaffRepository{
			DeleteFunc: func(context.Context, string) error { return staffRepo.ErrStaffNotFound },
		}
		svc := NewService(repo, &mockScheduleRepository{}, &mockCache{}, logger.NewNop())

		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrStaffNotFound)
	})
}

func TestAssignToSlot(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		wantErr   error
		wantFlush bool
	}{
		{name: "success", wantFlush: true},
		{name: "already assigned", repoErr: scheduleRepo.ErrAlreadyAssigned, wantErr: ErrAlreadyAssigned},
		{name: "unknown slot", repoErr: scheduleRepo.ErrReferenceNotFound, wantErr: ErrSlotOrStaffNotFound},
		{name: "database failure", repoErr: errors.New("timeout"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedules := &mockScheduleRepository{
				AssignFunc: func(_ context.Context, staffID, slotID string) (*domain.StaffSchedule, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return &domain.StaffSchedule{ID: "sch-1", StaffID: staffID, SlotID: slotID}, nil
				},
			}
			cache := &mockCache{}
			svc := NewService(&mockStaffRepository{}, schedules, cache, logger.NewNop())

			resp, err := svc.AssignToSlot(context.Background(), "slot-1", "st-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, cache.invalidated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "slot-1", resp.SlotID)
			assert.Equal(t, []string{"slot-1"}, cache.invalidated)
		})
	}
}

func TestUnassignFromSlot_CacheFailureIsNotFatal(t *testing.T) {
	schedules := &mockScheduleRepository{
		UnassignFunc: func(context.Context, string, string) error { return nil },
	}
	cache := &mockCache{err: errors.New("redis down")}
	svc := NewService(&mockStaffRepository{}, schedules, cache, logger.NewNop())

	err := svc.UnassignFromSlot(context.Background(), "slot-1", "st-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"slot-1"}, cache.invalidated)
}

func TestUnassignFromSlot_NotAssigned(t *testing.T) {
	schedules := &mockScheduleRepository{
		UnassignFunc: func(context.Context, string, string) error { return scheduleRepo.ErrScheduleNotFound },
	}
	svc := NewService(&mockStaffRepository{}, schedules, &mockCache{}, logger.NewNop())

	assert.ErrorIs(t, svc.UnassignFromSlot(context.Background(), "slot-1", "st-1"), ErrNotAssigned)
}
