package catalog

import (
	"context"

	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// ServiceRepository supplies the service definitions.
type ServiceRepository interface {
	GetAllActive(ctx context.Context) ([]domain.Service, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
