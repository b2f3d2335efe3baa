package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	therapistRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/therapist"
	"github.com/Aryan-Wadhawan/masaje-app/internal/schedule"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules/models"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// Service manages therapist weekly schedules and answers the "who is working"
// question over live data through the registry.
type Service struct {
	therapistRepo TherapistRepository
	scheduleRepo  ScheduleRepository
	logger        Logger
}

// NewService creates the schedules service.
func NewService(therapistRepo TherapistRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		therapistRepo: therapistRepo,
		scheduleRepo:  scheduleRepo,
		logger:        logger,
	}
}

// GetTherapistSchedule fetches a therapist's full weekly schedule.
func (s *Service) GetTherapistSchedule(ctx context.Context, therapistID int64) (*models.TherapistScheduleResponse, error) {
	s.logger.Info("GetTherapistSchedule: fetching schedule for therapist=%d", therapistID)

	t, err := s.getTherapist(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	entries, err := s.scheduleRepo.GetByTherapist(ctx, therapistID)
	if err != nil {
		s.logger.Error("GetTherapistSchedule: repository error for therapist=%d: %v", therapistID, err)
		return nil, fmt.Errorf("%w: GetTherapistSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.TherapistScheduleResponse{
		TherapistID: t.ID,
		DisplayName: t.DisplayName,
		Entries:     make([]models.ScheduleEntryResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, models.FromDomainEntry(&entries[i]))
	}
	return resp, nil
}

// UpsertEntry sets a therapist's availability for one weekday. An existing
// entry for the same (weekday, location) scope is replaced.
func (s *Service) UpsertEntry(ctx context.Context, therapistID int64, req *models.UpsertEntryRequest) (*models.ScheduleEntryResponse, error) {
	s.logger.Info("UpsertEntry: therapist=%d, weekday=%d, off=%v", therapistID, req.Weekday, req.IsOff)

	if _, err := s.getTherapist(ctx, therapistID); err != nil {
		return nil, err
	}

	entry, err := toDomainEntry(therapistID, req)
	if err != nil {
		s.logger.Warn("UpsertEntry: invalid entry for therapist=%d: %v", therapistID, err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, entry)
	if err != nil {
		s.logger.Error("UpsertEntry: repository error for therapist=%d: %v", therapistID, err)
		return nil, fmt.Errorf("%w: UpsertEntry - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainEntry(saved)
	return &resp, nil
}

// GetWorkingTherapists lists who is on shift at a location on a date,
// with their working window.
func (s *Service) GetWorkingTherapists(ctx context.Context, locationID int64, date time.Time) (*models.WorkingTherapistsResponse, error) {
	s.logger.Info("GetWorkingTherapists: location=%d, date=%s", locationID, date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	therapists, err := s.therapistRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetWorkingTherapists: failed to get therapists: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingTherapists - repository error: %v", ErrInternal, err)
	}

	weekday := date.Weekday()
	entries, err := s.scheduleRepo.GetByWeekday(ctx, weekday)
	if err != nil {
		s.logger.Error("GetWorkingTherapists: failed to get schedule entries: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingTherapists - repository error: %v", ErrInternal, err)
	}

	registry := schedule.NewRegistry(therapists, entries)
	shifts, err := registry.ProvidersWorking(weekday, locationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	names := make(map[int64]string, len(therapists))
	for _, t := range therapists {
		names[t.ID] = t.DisplayName
	}

	resp := &models.WorkingTherapistsResponse{
		LocationID: locationID,
		Date:       date.Format(domain.DateFormat),
		Therapists: make([]models.WorkingTherapistResponse, 0, len(shifts)),
	}
	for _, shift := range shifts {
		resp.Therapists = append(resp.Therapists, models.WorkingTherapistResponse{
			TherapistID: shift.TherapistID,
			DisplayName: names[shift.TherapistID],
			Start:       shift.Start.String(),
			End:         shift.End.String(),
		})
	}

	s.logger.Info("GetWorkingTherapists: %d therapists working at location=%d on %s",
		len(resp.Therapists), locationID, resp.Date)
	return resp, nil
}

func (s *Service) getTherapist(ctx context.Context, therapistID int64) (*domain.Therapist, error) {
	t, err := s.therapistRepo.GetByID(ctx, therapistID)
	if err != nil {
		if errors.Is(err, therapistRepo.ErrTherapistNotFound) {
			s.logger.Warn("schedules: therapist=%d not found", therapistID)
			return nil, ErrTherapistNotFound
		}
		s.logger.Error("schedules: failed to get therapist=%d: %v", therapistID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return t, nil
}

func toDomainEntry(therapistID int64, req *models.UpsertEntryRequest) (*domain.ScheduleEntry, error) {
	if req.Weekday < int(time.Sunday) || req.Weekday > int(time.Saturday) {
		return nil, fmt.Errorf("%w: weekday must be 0..6", ErrInvalidInput)
	}
	if req.LocationID != nil && *req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationId must be positive", ErrInvalidInput)
	}

	entry := &domain.ScheduleEntry{
		TherapistID: therapistID,
		Weekday:     time.Weekday(req.Weekday),
		IsOff:       req.IsOff,
		LocationID:  req.LocationID,
	}
	if req.IsOff {
		return entry, nil
	}

	start, err := types.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	end, err := types.ParseTimeOfDay(req.End)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	entry.Start = start
	entry.End = end
	return entry, nil
}
