package get_occupancy

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-NurseryService/internal/compliance"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// UseCase use case календаря загрузки слотов для администратора
type UseCase struct {
	slotRepo     SlotRepository
	staffRepo    StaffRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	metrics      Metrics
	maxRangeDays int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.MaxOccupancyRangeDays
	}
	return &UseCase{
		slotRepo:     slotRepo,
		staffRepo:    staffRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		metrics:      metrics,
		maxRangeDays: maxRangeDays,
		logger:       logger,
	}
}

// Execute рассчитывает загрузку и соответствие нормам для всех слотов периода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancy: from=%s, to=%s, includeBlocked=%t",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.IncludeBlocked)

	// 1. Валидация периода
	if err := validateRequest(req, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetOccupancy: validation failed: %v", err)
		return nil, err
	}

	var (
		slots    []*domain.Slot
		staff    map[string][]domain.StaffMember
		bookings map[string][]*domain.Booking
	)

	// 2. Читаем слоты, смены и бронирования одним снимком
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		slots, err = uc.slotRepo.ListByRange(txCtx, domain.SlotFilter{
			From:           req.From,
			To:             req.To,
			IncludeBlocked: req.IncludeBlocked,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}
		if len(slots) == 0 {
			return nil
		}

		ids := make([]string, 0, len(slots))
		for _, slot := range slots {
			ids = append(ids, slot.ID)
		}

		staff, err = uc.staffRepo.GetBySlotIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		bookings, err = uc.bookingRepo.GetActiveBySlotIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("GetOccupancy: %v", err)
		return nil, err
	}

	// 3. Расчёт по каждому слоту
	resp := &Response{
		From:  req.From,
		To:    req.To,
		Slots: make([]SlotOccupancy, 0, len(slots)),
	}
	for _, slot := range slots {
		roster := staff[slot.ID]
		counts := domain.CountChildren(bookings[slot.ID], slot.Date)
		result := compliance.Evaluate(roster, counts)
		uc.metrics.RecordCompliance(result.Compliant, result.PFACompliant)

		resp.Slots = append(resp.Slots, SlotOccupancy{
			Slot:   slot,
			Staff:  compliance.Summarize(roster),
			Counts: counts,
			Result: result,
		})
	}

	uc.logger.Info("GetOccupancy: evaluated %d slots, %d non-compliant", len(resp.Slots), resp.NonCompliant())
	return resp, nil
}
