package models

import (
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// Request models

// UpdateConfigRequest updates a location's slot configuration. Fields left
// nil keep their current (or default) value.
type UpdateConfigRequest struct {
	OpenTime                *string `json:"openTime,omitempty"`  // "09:00"
	CloseTime               *string `json:"closeTime,omitempty"` // "18:00"
	SlotStepMinutes         *int    `json:"slotStepMinutes,omitempty"`
	AdvanceBookingDays      *int    `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int    `json:"minBookingNoticeMinutes,omitempty"`
}

// Response models

// ConfigResponse carries a location's effective slot configuration.
type ConfigResponse struct {
	LocationID              int64  `json:"locationId"`
	OpenTime                string `json:"openTime"`
	CloseTime               string `json:"closeTime"`
	SlotStepMinutes         int    `json:"slotStepMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	IsDefault               bool   `json:"isDefault"` // no stored row, defaults apply
}

// FromDomainConfig converts the domain configuration into the API DTO.
func FromDomainConfig(c *domain.LocationSlotsConfig, isDefault bool) *ConfigResponse {
	return &ConfigResponse{
		LocationID:              c.LocationID,
		OpenTime:                c.OpenTime.String(),
		CloseTime:               c.CloseTime.String(),
		SlotStepMinutes:         c.SlotStepMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		IsDefault:               isDefault,
	}
}
