package staff

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-NurseryService/internal/service/staff/models"
)

// Service сервис для управления сотрудниками и их назначениями на слоты
type Service struct {
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	cache        ComplianceCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	cache ComplianceCache,
	logger Logger,
) *Service {
	return &Service{
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Create добавляет сотрудника
// Квалификация проверяется по закрытому списку уровней
func (s *Service) Create(ctx context.Context, req *models.StaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Create: creating staff member email=%s, level=%s", req.Email, req.QualificationLevel)

	member, err := toDomainStaff(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, staffRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created staff member id=%s", created.ID)
	return models.FromDomainStaff(created), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff member id=%s not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(member), nil
}

// List получает всех сотрудников
func (s *Service) List(ctx context.Context) (*models.StaffListResponse, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff members", len(members))
	return models.FromDomainStaffList(members), nil
}

// Update полностью обновляет данные сотрудника
// Сбрасывает кэш соответствия для всех слотов, на которые он назначен
func (s *Service) Update(ctx context.Context, id string, req *models.StaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Update: updating staff member id=%s, level=%s, pfa=%t", id, req.QualificationLevel, req.IsPFAHolder)

	member, err := toDomainStaff(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for staff id=%s: %v", id, err)
		return nil, err
	}
	member.ID = id

	updated, err := s.staffRepo.Update(ctx, member)
	if err != nil {
		switch {
		case errors.Is(err, staffRepo.ErrStaffNotFound):
			s.logger.Warn("Update: staff member id=%s not found", id)
			return nil, ErrStaffNotFound
		case errors.Is(err, staffRepo.ErrEmailTaken):
			s.logger.Warn("Update: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Update: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidateStaffSlots(ctx, id)

	s.logger.Info("Update: successfully updated staff member id=%s", id)
	return models.FromDomainStaff(updated), nil
}

// Delete удаляет сотрудника вместе с назначениями
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting staff member id=%s", id)

	// Слоты запоминаем до удаления: назначения удаляются каскадно
	slotIDs, err := s.scheduleRepo.GetSlotIDsByStaffID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to get slots of staff id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - schedule repository error: %v", ErrInternal, err)
	}

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Delete: staff member id=%s not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: repository error for staff id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, slotIDs...)

	s.logger.Info("Delete: successfully deleted staff member id=%s (%d slots affected)", id, len(slotIDs))
	return nil
}

// AssignToSlot назначает сотрудника на слот
func (s *Service) AssignToSlot(ctx context.Context, slotID, staffID string) (*models.AssignmentResponse, error) {
	s.logger.Info("AssignToSlot: assigning staff id=%s to slot id=%s", staffID, slotID)

	if strings.TrimSpace(slotID) == "" || strings.TrimSpace(staffID) == "" {
		return nil, fmt.Errorf("%w: slotId and staffId are required", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.Assign(ctx, staffID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrAlreadyAssigned):
			s.logger.Warn("AssignToSlot: staff id=%s already assigned to slot id=%s", staffID, slotID)
			return nil, ErrAlreadyAssigned
		case errors.Is(err, scheduleRepo.ErrReferenceNotFound):
			s.logger.Warn("AssignToSlot: slot id=%s or staff id=%s not found", slotID, staffID)
			return nil, ErrSlotOrStaffNotFound
		}
		s.logger.Error("AssignToSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: AssignToSlot - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, slotID)

	s.logger.Info("AssignToSlot: staff id=%s assigned to slot id=%s", staffID, slotID)
	return models.FromDomainSchedule(schedule), nil
}

// UnassignFromSlot снимает сотрудника со слота
// Уже созданные бронирования не пересматриваются
func (s *Service) UnassignFromSlot(ctx context.Context, slotID, staffID string) error {
	s.logger.Info("UnassignFromSlot: removing staff id=%s from slot id=%s", staffID, slotID)

	if err := s.scheduleRepo.Unassign(ctx, staffID, slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("UnassignFromSlot: staff id=%s is not assigned to slot id=%s", staffID, slotID)
			return ErrNotAssigned
		}
		s.logger.Error("UnassignFromSlot: repository error: %v", err)
		return fmt.Errorf("%w: UnassignFromSlot - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, slotID)

	s.logger.Info("UnassignFromSlot: staff id=%s removed from slot id=%s", staffID, slotID)
	return nil
}

// Вспомогательные методы

func (s *Service) invalidateStaffSlots(ctx context.Context, staffID string) {
	slotIDs, err := s.scheduleRepo.GetSlotIDsByStaffID(ctx, staffID)
	if err != nil {
		s.logger.Warn("invalidateStaffSlots: failed to get slots of staff id=%s: %v", staffID, err)
		return
	}
	s.invalidate(ctx, slotIDs...)
}

// invalidate сбрасывает кэш; ошибка кэша не прерывает операцию
func (s *Service) invalidate(ctx context.Context, slotIDs ...string) {
	if err := s.cache.Invalidate(ctx, slotIDs...); err != nil {
		s.logger.Warn("invalidate: failed to invalidate compliance cache for slots %v: %v", slotIDs, err)
	}
}

func toDomainStaff(req *models.StaffRequest) (*domain.StaffMember, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxStaffNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxStaffNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}

	level, ok := domain.ParseQualificationLevel(req.QualificationLevel)
	if !ok {
		return nil, fmt.Errorf("%w: unknown qualification level %q", ErrInvalidInput, req.QualificationLevel)
	}

	return &domain.StaffMember{
		Name:               name,
		Email:              strings.ToLower(email),
		QualificationLevel: level,
		IsPFAHolder:        req.IsPFAHolder,
	}, nil
}
