package get_therapist_schedule

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules/models"
)

type ScheduleService interface {
	GetTherapistSchedule(ctx context.Context, therapistID int64) (*models.TherapistScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
