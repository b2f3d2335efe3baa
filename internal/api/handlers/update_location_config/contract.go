package update_location_config

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/slotconfig/models"
)

type ConfigService interface {
	UpdateLocationConfig(ctx context.Context, locationID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
