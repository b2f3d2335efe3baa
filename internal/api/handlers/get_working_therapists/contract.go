package get_working_therapists

import (
	"context"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules/models"
)

type ScheduleService interface {
	GetWorkingTherapists(ctx context.Context, locationID int64, date time.Time) (*models.WorkingTherapistsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
