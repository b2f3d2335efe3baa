package slotconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
	configRepo "github.com/Aryan-Wadhawan/masaje-app/internal/infra/storage/config"
	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig/models"
	"github.com/Aryan-Wadhawan/masaje-app/pkg/types"
)

// Service manages per-location slot configuration: the ladder (open, close,
// step) and the booking-window policy.
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService creates the slot configuration service.
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetLocationConfig returns the effective configuration for a location.
// Locations without a stored row get the defaults, flagged as such.
func (s *Service) GetLocationConfig(ctx context.Context, locationID int64) (*models.ConfigResponse, error) {
	if locationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	cfg, err := s.configRepo.GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return models.FromDomainConfig(domain.DefaultLocationSlotsConfig(locationID), true), nil
		}
		s.logger.Error("GetLocationConfig: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: GetLocationConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg, false), nil
}

// UpdateLocationConfig stores a location's configuration. Omitted fields keep
// their current value (or the default when no row exists yet).
func (s *Service) UpdateLocationConfig(ctx context.Context, locationID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateLocationConfig: location=%d", locationID)

	if locationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	cfg, err := s.configRepo.GetByLocation(ctx, locationID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("UpdateLocationConfig: repository error for location=%d: %v", locationID, err)
			return nil, fmt.Errorf("%w: UpdateLocationConfig - repository error: %v", ErrInternal, err)
		}
		cfg = domain.DefaultLocationSlotsConfig(locationID)
	}

	if err := applyUpdate(cfg, req); err != nil {
		s.logger.Warn("UpdateLocationConfig: invalid update for location=%d: %v", locationID, err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("UpdateLocationConfig: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: UpdateLocationConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateLocationConfig: location=%d ladder is now %s-%s step=%dm",
		locationID, saved.OpenTime, saved.CloseTime, saved.SlotStepMinutes)
	return models.FromDomainConfig(saved, false), nil
}

func applyUpdate(cfg *domain.LocationSlotsConfig, req *models.UpdateConfigRequest) error {
	if req.OpenTime != nil {
		openTime, err := types.ParseTimeOfDay(*req.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
		}
		cfg.OpenTime = openTime
	}
	if req.CloseTime != nil {
		closeTime, err := types.ParseTimeOfDay(*req.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
		}
		cfg.CloseTime = closeTime
	}
	if req.SlotStepMinutes != nil {
		cfg.SlotStepMinutes = *req.SlotStepMinutes
	}
	if req.AdvanceBookingDays != nil {
		cfg.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	if req.MinBookingNoticeMinutes != nil {
		cfg.MinBookingNoticeMinutes = *req.MinBookingNoticeMinutes
	}

	if !cfg.CloseTime.IsAfter(cfg.OpenTime) {
		return fmt.Errorf("%w: closeTime must be after openTime", ErrInvalidInput)
	}
	if cfg.SlotStepMinutes < domain.MinSlotStepMinutes || cfg.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be %d..%d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if cfg.AdvanceBookingDays < 0 || cfg.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be 0..%d", ErrInvalidInput, domain.MaxAdvanceBookingDays)
	}
	if cfg.MinBookingNoticeMinutes < 0 || cfg.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be 0..%d", ErrInvalidInput, domain.MaxBookingNoticeMinutes)
	}
	return nil
}
