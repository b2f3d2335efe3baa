package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aryan-Wadhawan/masaje-app/internal/service/catalog/models"
)

// ErrInternal is returned for unexpected repository failures.
var ErrInternal = errors.New("service: internal error")

// Service exposes the bookable service catalog.
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the catalog service.
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListServices returns every active service with its duration and price.
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServices(services), nil
}
