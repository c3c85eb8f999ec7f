package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a child booked into a slot
type Booking struct {
	ID       string
	ChildID  string
	SlotID   string
	ParentID string
	Status   BookingStatus

	// Denormalized child data for counting and history
	ChildName        string
	ChildDateOfBirth time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies a place in the slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsValid returns true if the status is a known value
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CountChildren counts active bookings per age band at the slot date
func CountChildren(bookings []*Booking, slotDate time.Time) ChildCount {
	counts := NewChildCount()
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		counts[AgeBandAt(booking.ChildDateOfBirth, slotDate)]++
	}
	return counts
}
