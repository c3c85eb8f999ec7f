package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Причины отклонения для метрик
const (
	rejectNoPFA      = "no_pfa"
	rejectNoCapacity = "no_capacity"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ParentID) == "" {
		return fmt.Errorf("%w: parentId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ChildID) == "" {
		return fmt.Errorf("%w: childId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что в слот можно записаться
func validateSlot(slot *domain.Slot, now time.Time) error {
	if !slot.IsBookable() {
		return ErrSlotBlocked
	}

	if slot.HasStarted(now) {
		return ErrSlotInPast
	}

	return nil
}

// rejectReason возвращает причину отказа для метрик
func rejectReason(result domain.ComplianceResult) string {
	if !result.PFACompliant {
		return rejectNoPFA
	}
	return rejectNoCapacity
}
