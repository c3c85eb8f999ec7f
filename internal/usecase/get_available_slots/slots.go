package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/compliance"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// upcomingSlots оставляет только слоты, которые ещё не начались
func upcomingSlots(slots []*domain.Slot, now time.Time) []*domain.Slot {
	upcoming := make([]*domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBookable() && !slot.HasStarted(now) {
			upcoming = append(upcoming, slot)
		}
	}
	return upcoming
}

// slotIDs собирает идентификаторы слотов
func slotIDs(slots []*domain.Slot) []string {
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.ID)
	}
	return ids
}

// isBooked проверяет, что у ребенка уже есть активное бронирование среди переданных
func isBooked(bookings []*domain.Booking, childID string) bool {
	for _, booking := range bookings {
		if booking.ChildID == childID && booking.IsActive() {
			return true
		}
	}
	return false
}

// calculateAvailableSlots рассчитывает свободные места для каждого слота
// Если указан ребенок, отбрасывает слоты без места в его группе и слоты, куда он уже записан
func calculateAvailableSlots(
	slots []*domain.Slot,
	staff map[string][]domain.StaffMember,
	bookings map[string][]*domain.Booking,
	child *domain.Child,
) []Slot {
	result := make([]Slot, 0, len(slots))

	for _, slot := range slots {
		slotBookings := bookings[slot.ID]
		evaluation := compliance.Evaluate(staff[slot.ID], domain.CountChildren(slotBookings, slot.Date))

		available := Slot{
			ID:        slot.ID,
			Date:      slot.Date,
			Session:   slot.Session,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Available: evaluation.Available,
		}

		if child != nil {
			band := child.AgeBandAt(slot.Date)
			if !compliance.CanAdmit(evaluation, band) || isBooked(slotBookings, child.ID) {
				continue
			}
			available.AgeBand = &band
		} else if evaluation.TotalAvailable() == 0 {
			continue
		}

		result = append(result, available)
	}

	return result
}
