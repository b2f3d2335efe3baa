package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aryan-Wadhawan/masaje-app/internal/availability"
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	configRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/config"
	serviceRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/service"
	therapistRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/therapist"
	"github.com/Aryan-Wadhawan/masaje-app/internal/schedule"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// UseCase places a booking. The availability re-check and the insert run
// inside one serializable transaction with the day's bookings locked, so the
// answer "this slot is free" cannot go stale between the check and the commit.
type UseCase struct {
	therapistRepo TherapistRepository
	scheduleRepo  ScheduleRepository
	configRepo    ConfigRepository
	bookingRepo   BookingRepository
	serviceRepo   ServiceRepository
	txManager     TxManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case with its repositories and transaction manager.
func NewUseCase(
	therapistRepo TherapistRepository,
	scheduleRepo ScheduleRepository,
	configRepo ConfigRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		therapistRepo: therapistRepo,
		scheduleRepo:  scheduleRepo,
		configRepo:    configRepo,
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute validates the request, re-checks availability under lock and
// persists the booking with status pending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%d, date=%s, start=%s, therapist=%v",
		req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime, req.TherapistID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	items, duration, err := uc.resolveServices(ctx, req.ServiceCodes)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		cfg, err := uc.loadConfig(ctx, req.LocationID)
		if err != nil {
			return err
		}

		if err := validateDate(req.Date, now, cfg.AdvanceBookingDays); err != nil {
			return err
		}
		if err := checkNotice(req, now, cfg.MinBookingNoticeMinutes); err != nil {
			return err
		}

		end, err := uc.checkSlotShape(req, cfg, duration)
		if err != nil {
			return err
		}

		registry, err := uc.loadRegistry(ctx, req.Date)
		if err != nil {
			return err
		}

		// Locks the day's rows (SELECT ... FOR UPDATE inside the transaction)
		// so concurrent requests for the same slot serialize here.
		bookings, err := uc.lockDayBookings(ctx, req)
		if err != nil {
			return err
		}

		if err := uc.checkCapacity(registry, req, end, bookings); err != nil {
			return err
		}

		if req.TherapistID != nil {
			if err := uc.checkTherapist(ctx, registry, req, end, bookings); err != nil {
				return err
			}
		}

		booking := &domain.Booking{
			Reference:       uuid.NewString(),
			TherapistID:     req.TherapistID,
			LocationID:      req.LocationID,
			BookingDate:     dateOnly(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			Items:           items,
			Notes:           req.Notes,
		}

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created reference=%s, location=%d, date=%s, start=%s",
		created.Reference, created.LocationID, created.BookingDate.Format(domain.DateFormat), created.StartTime)

	return responseFromBooking(created), nil
}

// resolveServices maps codes to booking items and sums their durations.
// No codes means one booking of the default duration with no line items.
func (uc *UseCase) resolveServices(ctx context.Context, codes []string) ([]domain.BookingItem, int, error) {
	if len(codes) == 0 {
		return nil, domain.DefaultServiceDurationMinutes, nil
	}

	services, err := uc.serviceRepo.GetByCodes(ctx, codes)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: unknown service in %v", codes)
			return nil, 0, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		}
		uc.logger.Error("CreateBooking: failed to resolve services: %v", err)
		return nil, 0, fmt.Errorf("%w: failed to resolve services: %v", ErrInternal, err)
	}

	items := make([]domain.BookingItem, 0, len(services))
	duration := 0
	for _, s := range services {
		if !s.Active {
			return nil, 0, fmt.Errorf("%w: service %s is not offered anymore", ErrServiceNotFound, s.Code)
		}
		items = append(items, domain.BookingItem{
			ServiceCode:     s.Code,
			ServiceName:     s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
		duration += s.DurationMinutes
	}
	if duration <= 0 {
		duration = domain.DefaultServiceDurationMinutes
	}
	return items, duration, nil
}

func (uc *UseCase) loadConfig(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	cfg, err := uc.configRepo.GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultLocationSlotsConfig(locationID), nil
		}
		uc.logger.Error("CreateBooking: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	return cfg, nil
}

// checkSlotShape verifies the start sits on the slot ladder and the interval
// fits inside the day, returning the exclusive end time.
func (uc *UseCase) checkSlotShape(req *Request, cfg *domain.LocationSlotsConfig, duration int) (types.TimeOfDay, error) {
	grid := availability.SlotGrid{
		Open:        cfg.OpenTime,
		Close:       cfg.CloseTime,
		StepMinutes: cfg.SlotStepMinutes,
	}
	gridTimes, err := grid.Times()
	if err != nil {
		uc.logger.Error("CreateBooking: bad slot configuration for location=%d: %v", req.LocationID, err)
		return "", fmt.Errorf("%w: bad slot configuration: %v", ErrInternal, err)
	}

	onLadder := false
	for _, t := range gridTimes {
		if t == req.StartTime {
			onLadder = true
			break
		}
	}
	if !onLadder {
		return "", fmt.Errorf("%w: %s is not offered at this location", ErrInvalidStartTime, req.StartTime)
	}

	end, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		return "", fmt.Errorf("%w: booking would run past midnight", ErrInvalidStartTime)
	}
	return end, nil
}

func (uc *UseCase) loadRegistry(ctx context.Context, date time.Time) (*schedule.Registry, error) {
	therapists, err := uc.therapistRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get therapists: %v", err)
		return nil, fmt.Errorf("%w: failed to get therapists: %v", ErrInternal, err)
	}

	entries, err := uc.scheduleRepo.GetByWeekday(ctx, date.Weekday())
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get schedule entries: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule entries: %v", ErrInternal, err)
	}

	return schedule.NewRegistry(therapists, entries), nil
}

func (uc *UseCase) lockDayBookings(ctx context.Context, req *Request) ([]*domain.Booking, error) {
	date := dateOnly(req.Date)
	filter := domain.LocationBookingsFilter{
		LocationID: req.LocationID,
		StartDate:  &date,
		EndDate:    &date,
	}
	bookings, err := uc.bookingRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

// checkCapacity verifies at least one covering therapist is still free at the
// requested slot.
func (uc *UseCase) checkCapacity(registry *schedule.Registry, req *Request, end types.TimeOfDay, bookings []*domain.Booking) error {
	shifts, err := registry.ProvidersWorking(req.Date.Weekday(), req.LocationID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	capacity := 0
	for _, shift := range shifts {
		if shift.Covers(req.StartTime, end) {
			capacity++
		}
	}
	if capacity == 0 {
		return fmt.Errorf("%w: [%s, %s)", ErrLocationClosed, req.StartTime, end)
	}

	load := 0
	for _, b := range bookings {
		if b.IsActive() && b.StartTime == req.StartTime {
			load++
		}
	}
	if capacity-load <= 0 {
		uc.logger.Warn("CreateBooking: slot %s full at location=%d (capacity=%d)",
			req.StartTime, req.LocationID, capacity)
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, req.StartTime)
	}
	return nil
}

// checkTherapist verifies the requested therapist exists, is on a covering
// shift and has no overlapping booking.
func (uc *UseCase) checkTherapist(ctx context.Context, registry *schedule.Registry, req *Request, end types.TimeOfDay, bookings []*domain.Booking) error {
	therapistID := *req.TherapistID

	t, err := uc.therapistRepo.GetByID(ctx, therapistID)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			return fmt.Errorf("%w: id=%d", ErrTherapistNotFound, therapistID)
		}
		uc.logger.Error("CreateBooking: failed to get therapist: %v", err)
		return fmt.Errorf("%w: failed to get therapist: %v", ErrInternal, err)
	}
	if !t.Active {
		return fmt.Errorf("%w: id=%d", ErrTherapistNotFound, therapistID)
	}

	shift, ok, err := registry.ShiftFor(therapistID, req.Date.Weekday(), req.LocationID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !ok || !shift.Covers(req.StartTime, end) {
		return fmt.Errorf("%w: id=%d, interval [%s, %s)", ErrTherapistNotAvailable, therapistID, req.StartTime, end)
	}

	conflict, err := availability.CheckConflict(therapistID, req.StartTime, end, bookings, "", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if conflict != nil {
		uc.logger.Warn("CreateBooking: therapist=%d conflicts with booking %s over [%s, %s)",
			therapistID, conflict.BookingReference, conflict.Start, conflict.End)
		return fmt.Errorf("%w: overlaps booking starting at %s", ErrTherapistConflict, conflict.Start)
	}
	return nil
}

// checkNotice rejects same-day bookings starting inside the notice window.
func checkNotice(req *Request, now time.Time, noticeMinutes int) error {
	if !isSameDay(req.Date, now) {
		return nil
	}
	minAllowed, err := types.NewTimeOfDay(now).AddMinutes(noticeMinutes)
	if err != nil {
		// Notice window spills past midnight: nothing today qualifies.
		return fmt.Errorf("%w: %s", ErrTooLateToBook, req.StartTime)
	}
	if req.StartTime.IsBefore(minAllowed) {
		return fmt.Errorf("%w: %s is before %s", ErrTooLateToBook, req.StartTime, minAllowed)
	}
	return nil
}
