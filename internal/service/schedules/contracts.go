package schedules

import (
	"context"
	"time"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// TherapistRepository supplies the therapist roster.
type TherapistRepository interface {
	GetAll(ctx context.Context) ([]domain.Therapist, error)
	GetByID(ctx context.Context, id int64) (*domain.Therapist, error)
}

// ScheduleRepository stores weekly schedule entries.
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduleEntry, error)
	GetByTherapist(ctx context.Context, therapistID int64) ([]domain.ScheduleEntry, error)
	Upsert(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
