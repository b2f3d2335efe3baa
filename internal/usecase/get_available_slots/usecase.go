package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/availability"
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	configRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/config"
	serviceRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/service"
	"github.com/Aryan-Wadhawan/masaje-app/internal/schedule"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// UseCase computes the open booking slots for a location and date.
type UseCase struct {
	therapistRepo TherapistRepository
	scheduleRepo  ScheduleRepository
	configRepo    ConfigRepository
	bookingRepo   BookingRepository
	serviceRepo   ServiceRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case with its repositories.
func NewUseCase(
	therapistRepo TherapistRepository,
	scheduleRepo ScheduleRepository,
	configRepo ConfigRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		therapistRepo: therapistRepo,
		scheduleRepo:  scheduleRepo,
		configRepo:    configRepo,
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute computes the slots from fresh snapshots. Pure apart from reads:
// identical snapshots yield identical output, and nothing is cached between
// calls.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: location=%d, date=%s, services=%v",
		req.LocationID, req.Date.Format(domain.DateFormat), req.ServiceCodes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	cfg, err := uc.loadConfig(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	if err := validateDate(req.Date, now, cfg.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	duration, err := uc.requestedDuration(ctx, req.ServiceCodes)
	if err != nil {
		return nil, err
	}

	if isDateInPast(req.Date, now) {
		// A past day has, by definition, nothing left to book.
		return &Response{
			LocationID:      req.LocationID,
			Date:            req.Date,
			DurationMinutes: duration,
			Slots:           []domain.Slot{},
		}, nil
	}

	shifts, err := uc.loadShifts(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		// No coverage on that day: branch closed, not a fault.
		uc.logger.Info("GetAvailableSlots: no therapists working at location=%d on %s",
			req.LocationID, req.Date.Format(domain.DateFormat))
		return &Response{
			LocationID:      req.LocationID,
			Date:            req.Date,
			DurationMinutes: duration,
			Slots:           []domain.Slot{},
		}, nil
	}

	filter := domain.LocationBookingsFilter{
		LocationID:      req.LocationID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}
	bookings, err := uc.bookingRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	grid := availability.SlotGrid{
		Open:        cfg.OpenTime,
		Close:       cfg.CloseTime,
		StepMinutes: cfg.SlotStepMinutes,
	}
	slots, err := availability.Slots(grid, shifts, duration, bookings, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot computation failed: %v", err)
		return nil, fmt.Errorf("%w: slot computation failed: %v", ErrInternal, err)
	}

	if isSameDay(req.Date, now) {
		slots = filterByNotice(slots, now, cfg.MinBookingNoticeMinutes)
	}

	uc.logger.Info("GetAvailableSlots: %d open slots for location=%d, date=%s, duration=%dm",
		len(slots), req.LocationID, req.Date.Format(domain.DateFormat), duration)

	return &Response{
		LocationID:      req.LocationID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) loadConfig(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	cfg, err := uc.configRepo.GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultLocationSlotsConfig(locationID), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	return cfg, nil
}

// requestedDuration sums the durations of the requested services; with no
// services the canonical default duration applies.
func (uc *UseCase) requestedDuration(ctx context.Context, codes []string) (int, error) {
	if len(codes) == 0 {
		return domain.DefaultServiceDurationMinutes, nil
	}

	services, err := uc.serviceRepo.GetByCodes(ctx, codes)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: unknown service in %v", codes)
			return 0, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve services: %v", err)
		return 0, fmt.Errorf("%w: failed to resolve services: %v", ErrInternal, err)
	}

	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	if total <= 0 {
		total = domain.DefaultServiceDurationMinutes
	}
	return total, nil
}

func (uc *UseCase) loadShifts(ctx context.Context, req *Request) ([]schedule.ProviderShift, error) {
	therapists, err := uc.therapistRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get therapists: %v", err)
		return nil, fmt.Errorf("%w: failed to get therapists: %v", ErrInternal, err)
	}

	weekday := req.Date.Weekday()
	entries, err := uc.scheduleRepo.GetByWeekday(ctx, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule entries: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule entries: %v", ErrInternal, err)
	}

	registry := schedule.NewRegistry(therapists, entries)
	shifts, err := registry.ProvidersWorking(weekday, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return shifts, nil
}

// filterByNotice drops same-day slots starting before now + notice.
func filterByNotice(slots []domain.Slot, now time.Time, noticeMinutes int) []domain.Slot {
	currentTime := types.NewTimeOfDay(now)
	minAllowed, err := currentTime.AddMinutes(noticeMinutes)
	if err != nil {
		// Notice window spills past midnight: nothing today qualifies.
		return []domain.Slot{}
	}

	filtered := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if !s.StartTime.IsBefore(minAllowed) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
