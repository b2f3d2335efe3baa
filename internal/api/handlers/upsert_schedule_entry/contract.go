package upsert_schedule_entry

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/schedules/models"
)

type ScheduleService interface {
	UpsertEntry(ctx context.Context, therapistID int64, req *models.UpsertEntryRequest) (*models.ScheduleEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
