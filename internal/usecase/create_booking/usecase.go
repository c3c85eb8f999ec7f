package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-NurseryService/internal/compliance"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/booking"
	childRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/child"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	childRepo    ChildRepository
	slotRepo     SlotRepository
	staffRepo    StaffRepository
	cache        ComplianceCache
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	childRepo ChildRepository,
	slotRepo SlotRepository,
	staffRepo StaffRepository,
	cache ComplianceCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		childRepo:    childRepo,
		slotRepo:     slotRepo,
		staffRepo:    staffRepo,
		cache:        cache,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию, чтобы два параллельных бронирования
// не заняли последнее место в возрастной группе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: parent=%s, child=%s, slot=%s", req.ParentID, req.ChildID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем ребенка и проверяем владельца
	child, err := uc.childRepo.GetByID(ctx, req.ChildID)
	if err != nil {
		if errors.Is(err, childRepo.ErrChildNotFound) {
			uc.logger.Warn("CreateBooking: child id=%s not found", req.ChildID)
			return nil, ErrChildNotFound
		}
		uc.logger.Error("CreateBooking: failed to get child id=%s: %v", req.ChildID, err)
		return nil, fmt.Errorf("%w: failed to get child: %v", ErrInternal, err)
	}
	if child.ParentID != req.ParentID {
		uc.logger.Warn("CreateBooking: child id=%s does not belong to parent=%s", req.ChildID, req.ParentID)
		return nil, ErrAccessDenied
	}

	// 4. Получаем слот и проверяем, что в него можно записаться
	slot, err := uc.getSlot(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}
	if err := validateSlot(slot, now); err != nil {
		uc.logger.Warn("CreateBooking: slot id=%s is not bookable: %v", slot.ID, err)
		return nil, err
	}

	// 5. Проверяем, что ребенок ещё не записан
	exists, err := uc.bookingRepo.ExistsActive(ctx, child.ID, slot.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check existing booking: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
	}
	if exists {
		uc.logger.Warn("CreateBooking: child id=%s already booked into slot id=%s", child.ID, slot.ID)
		return nil, ErrAlreadyBooked
	}

	band := child.AgeBandAt(slot.Date)

	var (
		result    *domain.Booking
		remaining int
	)

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Блокируем слот (FOR UPDATE) и перепроверяем блокировку
		lockedSlot, err := uc.getSlot(txCtx, slot.ID)
		if err != nil {
			return err
		}
		if !lockedSlot.IsBookable() {
			return ErrSlotBlocked
		}

		// 6.2. Получаем смену слота
		staff, err := uc.staffRepo.GetBySlotID(txCtx, slot.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get staff: %v", err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		// 6.3. Получаем активные бронирования с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveBySlotID(txCtx, slot.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Проверяем вместимость группы ребенка
		evaluation := compliance.Evaluate(staff, domain.CountChildren(bookings, slot.Date))
		if !compliance.CanAdmit(evaluation, band) {
			uc.logger.Warn("CreateBooking: no capacity in band=%s for slot id=%s, max=%d, issues=%v",
				band, slot.ID, evaluation.MaxCapacity[band], evaluation.QualificationIssues[band])
			uc.metrics.RecordBookingRejected(rejectReason(evaluation))
			return ErrNoCapacity
		}

		uc.logger.Info("CreateBooking: band=%s has %d/%d places available",
			band, evaluation.Available[band], evaluation.MaxCapacity[band])

		// 6.5. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ChildID:          child.ID,
			SlotID:           slot.ID,
			ParentID:         req.ParentID,
			Status:           domain.StatusConfirmed,
			ChildName:        child.Name,
			ChildDateOfBirth: child.DateOfBirth,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrAlreadyBooked) {
				return ErrAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		remaining = evaluation.Available[band] - 1
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Сбрасываем кэш слота
	if err := uc.cache.Invalidate(ctx, slot.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate compliance cache for slot=%s: %v", slot.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		ChildID:         result.ChildID,
		SlotID:          result.SlotID,
		ParentID:        result.ParentID,
		Status:          string(result.Status),
		ChildName:       child.Name,
		AgeBand:         band,
		SlotDate:        slot.Date,
		Session:         slot.Session,
		RemainingPlaces: remaining,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) getSlot(ctx context.Context, id string) (*domain.Slot, error) {
	slot, err := uc.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	return slot, nil
}
