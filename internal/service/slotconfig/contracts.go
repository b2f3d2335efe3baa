package slotconfig

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// ConfigRepository stores per-location slot configuration.
type ConfigRepository interface {
	GetByLocation(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error)
	Upsert(ctx context.Context, c *domain.LocationSlotsConfig) (*domain.LocationSlotsConfig, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
