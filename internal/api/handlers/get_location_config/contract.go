package get_location_config

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig/models"
)

type ConfigService interface {
	GetLocationConfig(ctx context.Context, locationID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
