package create_booking

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	createBooking "github.com/m04kA/SMC-NurseryService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ChildID string `json:"childId"`
	SlotID  string `json:"slotId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	ChildID         string `json:"childId"`
	SlotID          string `json:"slotId"`
	ParentID        string `json:"parentId"`
	Status          string `json:"status"`
	ChildName       string `json:"childName"`
	AgeBand         string `json:"ageBand"`
	SlotDate        string `json:"slotDate"`
	Session         string `json:"session"`
	RemainingPlaces int    `json:"remainingPlaces"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(parentID string) *createBooking.Request {
	return &createBooking.Request{
		ParentID: parentID,
		ChildID:  r.ChildID,
		SlotID:   r.SlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ChildID:         resp.ChildID,
		SlotID:          resp.SlotID,
		ParentID:        resp.ParentID,
		Status:          resp.Status,
		ChildName:       resp.ChildName,
		AgeBand:         string(resp.AgeBand),
		SlotDate:        resp.SlotDate.Format(domain.DateFormat),
		Session:         string(resp.Session),
		RemainingPlaces: resp.RemainingPlaces,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

