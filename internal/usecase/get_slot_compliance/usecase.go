package get_slot_compliance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-NurseryService/internal/compliance"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/internal/infra/cache/slotcompliance"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
)

// UseCase use case для расчёта соответствия слота нормам EYFS
type UseCase struct {
	slotRepo     SlotRepository
	staffRepo    StaffRepository
	bookingRepo  BookingRepository
	cache        ComplianceCache
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	cache ComplianceCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		staffRepo:    staffRepo,
		bookingRepo:  bookingRepo,
		cache:        cache,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчёт соответствия для слота
// Ошибки кэша не возвращаются: при сбое результат пересчитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotCompliance: slot=%s", req.SlotID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.SlotID) == "" {
		return nil, fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	// 2. Получаем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("GetSlotCompliance: slot id=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("GetSlotCompliance: failed to get slot id=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Пробуем взять результат из кэша
	if resp := uc.fromCache(ctx, slot); resp != nil {
		return resp, nil
	}

	// 4. Фиксируем версию слота до чтения данных
	version, versionErr := uc.cache.Version(ctx, slot.ID)
	if versionErr != nil {
		uc.logger.Warn("GetSlotCompliance: failed to read cache version for slot=%s: %v", slot.ID, versionErr)
	}

	// 5. Получаем смену слота
	staff, err := uc.staffRepo.GetBySlotID(ctx, slot.ID)
	if err != nil {
		uc.logger.Error("GetSlotCompliance: failed to get staff for slot=%s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 6. Получаем активные бронирования и считаем детей по группам
	bookings, err := uc.bookingRepo.GetActiveBySlotID(ctx, slot.ID)
	if err != nil {
		uc.logger.Error("GetSlotCompliance: failed to get bookings for slot=%s: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	counts := domain.CountChildren(bookings, slot.Date)

	// 7. Расчёт
	result := compliance.Evaluate(staff, counts)
	uc.metrics.RecordCompliance(result.Compliant, result.PFACompliant)

	now := uc.timeProvider.Now()

	// 8. Сохраняем в кэш, если версия известна
	if versionErr == nil {
		entry := slotcompliance.NewEntry(slot.ID, len(staff), counts, result, now)
		if err := uc.cache.Set(ctx, entry, version); err != nil {
			if errors.Is(err, slotcompliance.ErrStaleEntry) {
				uc.logger.Info("GetSlotCompliance: slot=%s changed during evaluation, result not cached", slot.ID)
			} else {
				uc.logger.Warn("GetSlotCompliance: failed to cache result for slot=%s: %v", slot.ID, err)
			}
		}
	}

	uc.logger.Info("GetSlotCompliance: slot=%s staff=%d children=%d compliant=%t",
		slot.ID, len(staff), counts.Total(), result.Compliant)

	return &Response{
		Slot:        slot,
		StaffCount:  len(staff),
		Counts:      counts,
		Result:      result,
		EvaluatedAt: now,
	}, nil
}

func (uc *UseCase) fromCache(ctx context.Context, slot *domain.Slot) *Response {
	entry, err := uc.cache.Get(ctx, slot.ID)
	if err != nil {
		if !errors.Is(err, slotcompliance.ErrCacheMiss) {
			uc.logger.Warn("GetSlotCompliance: cache read failed for slot=%s: %v", slot.ID, err)
		}
		uc.metrics.RecordCacheLookup(false)
		return nil
	}

	uc.metrics.RecordCacheLookup(true)
	uc.logger.Info("GetSlotCompliance: cache hit for slot=%s", slot.ID)

	return &Response{
		Slot:        slot,
		StaffCount:  entry.StaffCount,
		Counts:      entry.Counts,
		Result:      entry.ComplianceResult(),
		Cached:      true,
		EvaluatedAt: entry.EvaluatedAt,
	}
}
