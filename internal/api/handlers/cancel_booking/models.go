package cancel_booking

import (
	"github.com/m04kA/SMC-NurseryService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(parentID string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		ParentID:           parentID,
		CancellationReason: r.CancellationReason,
	}
}
