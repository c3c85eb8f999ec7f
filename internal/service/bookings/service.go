package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-NurseryService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-NurseryService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	cache       ComplianceCache
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	cache ComplianceCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		cache:       cache,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Родитель может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id string, parentID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for parent=%s", id, parentID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.ParentID != parentID {
		s.logger.Warn("GetByID: access denied for parent=%s to booking id=%s", parentID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetParentBookings получает историю бронирований родителя
// Опционально фильтрует по статусу
func (s *Service) GetParentBookings(ctx context.Context, req *models.GetParentBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetParentBookings: fetching bookings for parent=%s, status=%v", req.ParentID, req.Status)

	if req.ParentID != req.RequesterID {
		s.logger.Warn("GetParentBookings: user=%s requested bookings of parent=%s", req.RequesterID, req.ParentID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetParentBookings: invalid status=%s for parent=%s", *req.Status, req.ParentID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByParentID(ctx, req.ParentID, domainStatus)
	if err != nil {
		s.logger.Error("GetParentBookings: repository error for parent=%s: %v", req.ParentID, err)
		return nil, fmt.Errorf("%w: GetParentBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetParentBookings: successfully fetched %d bookings for parent=%s", len(bookings), req.ParentID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSlotBookings получает активные бронирования слота (для администратора)
func (s *Service) GetSlotBookings(ctx context.Context, slotID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetSlotBookings: fetching active bookings for slot=%s", slotID)

	if _, err := s.slotRepo.GetByID(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetSlotBookings: slot id=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetSlotBookings: slot repository error for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetSlotBookings - slot repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetActiveBySlotID(ctx, slotID)
	if err != nil {
		s.logger.Error("GetSlotBookings: repository error for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetSlotBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSlotBookings: fetched %d active bookings for slot=%s", len(bookings), slotID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Родитель может отменить только своё активное бронирование
// После отмены место в слоте освобождается, кэш проверки соотношений сбрасывается
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by parent=%s", bookingID, req.ParentID)

	if req.CancellationReason != nil {
		reason := strings.TrimSpace(*req.CancellationReason)
		if len(reason) > domain.MaxCancellationReasonLength {
			return fmt.Errorf("%w: cancellationReason must be at most %d characters",
				ErrInvalidInput, domain.MaxCancellationReasonLength)
		}
		if reason == "" {
			req.CancellationReason = nil
		} else {
			req.CancellationReason = &reason
		}
	}

	var slotID string
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем бронирование
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		// 2. Проверяем владельца
		if booking.ParentID != req.ParentID {
			s.logger.Warn("Cancel: access denied for parent=%s to booking id=%s", req.ParentID, bookingID)
			return ErrAccessDenied
		}

		// 3. Проверяем, можно ли отменить бронирование
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		// 4. Отменяем
		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
				return ErrCannotCancel
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		slotID = booking.SlotID
		return nil
	})
	if err != nil {
		return err
	}

	// 5. Сбрасываем кэш слота (ошибка кэша не отменяет операцию)
	if err := s.cache.Invalidate(ctx, slotID); err != nil {
		s.logger.Warn("Cancel: failed to invalidate compliance cache for slot=%s: %v", slotID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, method, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}
