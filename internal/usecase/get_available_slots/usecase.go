package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	childRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/child"
)

// UseCase use case для получения слотов со свободными местами
type UseCase struct {
	slotRepo     SlotRepository
	staffRepo    StaffRepository
	bookingRepo  BookingRepository
	childRepo    ChildRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	childRepo ChildRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		staffRepo:    staffRepo,
		bookingRepo:  bookingRepo,
		childRepo:    childRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: parent=%s, child=%v, from=%s, to=%s",
		req.ParentID, req.ChildID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 3. Если указан ребенок, проверяем владельца
	var child *domain.Child
	if req.ChildID != nil {
		var err error
		child, err = uc.childRepo.GetByID(ctx, *req.ChildID)
		if err != nil {
			if errors.Is(err, childRepo.ErrChildNotFound) {
				uc.logger.Warn("GetAvailableSlots: child id=%s not found", *req.ChildID)
				return nil, ErrChildNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get child id=%s: %v", *req.ChildID, err)
			return nil, fmt.Errorf("%w: failed to get child: %v", ErrInternal, err)
		}
		if child.ParentID != req.ParentID {
			uc.logger.Warn("GetAvailableSlots: child id=%s does not belong to parent=%s", child.ID, req.ParentID)
			return nil, ErrAccessDenied
		}
	}

	resp := &Response{
		From:    req.From,
		To:      req.To,
		ChildID: req.ChildID,
		Slots:   []Slot{},
	}

	// 4. Получаем открытые слоты периода, которые ещё не начались
	slots, err := uc.slotRepo.ListByRange(ctx, domain.SlotFilter{From: req.From, To: req.To})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}
	slots = upcomingSlots(slots, now)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no upcoming slots in range")
		return resp, nil
	}

	// 5. Получаем смены и бронирования
	ids := slotIDs(slots)

	staff, err := uc.staffRepo.GetBySlotIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveBySlotIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность для каждого слота
	resp.Slots = calculateAvailableSlots(slots, staff, bookings, child)

	uc.logger.Info("GetAvailableSlots: %d of %d slots have places for parent=%s",
		len(resp.Slots), len(slots), req.ParentID)

	return resp, nil
}
