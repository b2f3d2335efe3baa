package models

import (
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// ServiceResponse is one bookable service.
type ServiceResponse struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse lists the active catalog.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices converts domain services into the list DTO.
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			Code:            s.Code,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return resp
}
