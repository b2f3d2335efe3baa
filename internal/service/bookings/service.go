package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	bookingRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/booking"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/bookings/models"
)

// Service handles booking lifecycle reads and updates. Placing a booking is
// the create_booking use case; everything after lives here.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference fetches one booking by its public reference.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings fetches a customer's booking history by phone,
// optionally filtered by status.
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for phone=%s, status=%v", req.Phone, req.Status)

	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerPhone(ctx, req.Phone, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for phone=%s", len(bookings), req.Phone)
	return models.FromDomainBookingList(bookings), nil
}

// GetLocationBookings fetches a branch's bookings with filtering by
// therapist, period and status. By default cancelled bookings are hidden;
// IncludeInactive brings them back.
func (s *Service) GetLocationBookings(ctx context.Context, req *models.GetLocationBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetLocationBookings: fetching bookings for location=%d", req.LocationID)

	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLocationBookings: invalid filter for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLocationBookings: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetLocationBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLocationBookings: fetched %d bookings for location=%d", len(bookings), req.LocationID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking. Allowed from pending and approved only;
// cancelling is terminal and immediately frees the slot's capacity.
func (s *Service) Cancel(ctx context.Context, reference string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking reference=%s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking reference=%s cannot be cancelled, status=%s", reference, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, reference, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			// Raced with another status change between the read and the update.
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking reference=%s", reference)
	return nil
}

// UpdateStatus moves a booking along pending -> approved -> completed.
// Cancellation goes through Cancel, never through here.
func (s *Service) UpdateStatus(ctx context.Context, reference string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking reference=%s to status=%s", reference, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reference=%s", req.Status, reference)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}
	if newStatus == domain.StatusCancelled {
		return fmt.Errorf("%w: use the cancel operation", ErrInvalidTransition)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking reference=%s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.ValidStatusTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reference=%s",
			booking.Status, newStatus, reference)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, reference, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking reference=%s is now %s", reference, newStatus)
	return nil
}
