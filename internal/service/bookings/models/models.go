package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ParentID           string  `json:"-"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// GetParentBookingsRequest запрос на получение бронирований родителя
type GetParentBookingsRequest struct {
	ParentID    string  `json:"parentId"`
	RequesterID string  `json:"-"`
	Status      *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       string `json:"id"`
	ChildID  string `json:"childId"`
	SlotID   string `json:"slotId"`
	ParentID string `json:"parentId"`
	Status   string `json:"status"`

	// Денормализованные данные ребенка
	ChildName        string `json:"childName"`
	ChildDateOfBirth string `json:"childDateOfBirth"` // "2024-03-15"

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ChildID:            b.ChildID,
		SlotID:             b.SlotID,
		ParentID:           b.ParentID,
		Status:             string(b.Status),
		ChildName:          b.ChildName,
		ChildDateOfBirth:   b.ChildDateOfBirth.Format(domain.DateFormat),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
