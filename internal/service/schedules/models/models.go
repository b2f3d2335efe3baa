package models

import (
	"github.com/Aryan-Wadhawan/masaje-app/internal/domain"
)

// Request models

// UpsertEntryRequest sets a therapist's availability for one weekday,
// optionally scoped to a location.
type UpsertEntryRequest struct {
	Weekday    int    `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	IsOff      bool   `json:"isOff,omitempty"`
	LocationID *int64 `json:"locationId,omitempty"`
}

// Response models

// ScheduleEntryResponse is one weekday of a therapist's schedule.
type ScheduleEntryResponse struct {
	TherapistID int64  `json:"therapistId"`
	Weekday     int    `json:"weekday"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	IsOff       bool   `json:"isOff,omitempty"`
	LocationID  *int64 `json:"locationId,omitempty"`
}

// TherapistScheduleResponse is a therapist's full weekly schedule.
type TherapistScheduleResponse struct {
	TherapistID int64                   `json:"therapistId"`
	DisplayName string                  `json:"displayName"`
	Entries     []ScheduleEntryResponse `json:"entries"`
}

// WorkingTherapistResponse is one therapist on shift with their window.
type WorkingTherapistResponse struct {
	TherapistID int64  `json:"therapistId"`
	DisplayName string `json:"displayName"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// WorkingTherapistsResponse lists who is on shift for a location and date.
type WorkingTherapistsResponse struct {
	LocationID int64                      `json:"locationId"`
	Date       string                     `json:"date"`
	Therapists []WorkingTherapistResponse `json:"therapists"`
}

// Conversion helpers

// FromDomainEntry converts a schedule entry into the API DTO.
func FromDomainEntry(e *domain.ScheduleEntry) ScheduleEntryResponse {
	resp := ScheduleEntryResponse{
		TherapistID: e.TherapistID,
		Weekday:     int(e.Weekday),
		IsOff:       e.IsOff,
		LocationID:  e.LocationID,
	}
	if !e.IsOff {
		resp.Start = e.Start.String()
		resp.End = e.End.String()
	}
	return resp
}
