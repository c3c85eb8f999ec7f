package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.ParentID) == "" {
		return fmt.Errorf("%w: parentId is required", ErrInvalidInput)
	}

	if req.ChildID != nil && strings.TrimSpace(*req.ChildID) == "" {
		return fmt.Errorf("%w: childId must not be empty", ErrInvalidInput)
	}

	// Проверяем, что даты не являются нулевыми
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	// Период целиком в прошлом
	if isDateInPast(req.To, now) {
		return ErrInvalidDate
	}

	if days := int(req.To.Sub(req.From).Hours()/24) + 1; days > domain.MaxOccupancyRangeDays {
		return fmt.Errorf("%w: at most %d days allowed", ErrRangeTooLarge, domain.MaxOccupancyRangeDays)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшней
func isDateInPast(date time.Time, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
