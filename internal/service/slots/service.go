package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-NurseryService/internal/service/slots/models"
	"github.com/m04kA/SMC-NurseryService/pkg/types"
)

// Service сервис для управления слотами
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create создает слот на дату и сессию
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot date=%s, session=%s", req.Date, req.Session)

	slot, err := toDomainSlot(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
			s.logger.Warn("Create: slot date=%s, session=%s already exists", req.Date, req.Session)
			return nil, ErrSlotAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created slot id=%s", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// List получает слоты за период (включительно), по умолчанию без заблокированных
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: from=%s, to=%s, includeBlocked=%t", req.From, req.To, req.IncludeBlocked)

	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	slots, err := s.slotRepo.ListByRange(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// SetBlocked блокирует или разблокирует слот
// Существующие бронирования заблокированного слота сохраняются
func (s *Service) SetBlocked(ctx context.Context, id string, req *models.SetBlockedRequest) (*models.SlotResponse, error) {
	s.logger.Info("SetBlocked: slot id=%s, blocked=%t", id, req.IsBlocked)

	if err := s.slotRepo.SetBlocked(ctx, id, req.IsBlocked); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetBlocked: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("SetBlocked: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetBlocked - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

func toDomainFilter(req *models.ListSlotsRequest) (domain.SlotFilter, error) {
	from, err := time.Parse(domain.DateFormat, req.From)
	if err != nil {
		return domain.SlotFilter{}, fmt.Errorf("%w: invalid from, expected YYYY-MM-DD", ErrInvalidInput)
	}
	to, err := time.Parse(domain.DateFormat, req.To)
	if err != nil {
		return domain.SlotFilter{}, fmt.Errorf("%w: invalid to, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if to.Before(from) {
		return domain.SlotFilter{}, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if to.Sub(from) >= time.Duration(domain.MaxOccupancyRangeDays)*24*time.Hour {
		return domain.SlotFilter{}, fmt.Errorf("%w: at most %d days allowed", ErrInvalidInput, domain.MaxOccupancyRangeDays)
	}

	return domain.SlotFilter{From: from, To: to, IncludeBlocked: req.IncludeBlocked}, nil
}

func toDomainSlot(req *models.CreateSlotRequest) (*domain.Slot, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	session := domain.Session(req.Session)
	if !session.IsValid() {
		return nil, fmt.Errorf("%w: unknown session %q", ErrInvalidInput, req.Session)
	}

	start, end := session.DefaultTimes()
	if req.StartTime != nil {
		if start, err = types.NewTimeStringFromString(*req.StartTime); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}
	if req.EndTime != nil {
		if end, err = types.NewTimeStringFromString(*req.EndTime); err != nil {
			return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, start, end)
	}

	return &domain.Slot{
		Date:      date,
		Session:   session,
		StartTime: start,
		EndTime:   end,
	}, nil
}
