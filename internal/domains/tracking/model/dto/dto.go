package dto

import (
	"time"

	"courtside/internal/domains/tracking/model"
)

// TrackBookingResponse is the lookup result shown on the tracker page. Status
// is derived at read time, never stored, so the same cached booking can move
// from active to expired between two lookups.
type TrackBookingResponse struct {
	TrackingCode   string       `json:"tracking_code"`
	FutsalName     string       `json:"futsal_name"`
	Location       string       `json:"location"`
	City           string       `json:"city"`
	BookingDate    string       `json:"booking_date"`
	TimeSlot       string       `json:"time_slot"`
	PlayerCount    int          `json:"player_count"`
	TeamName       *string      `json:"team_name,omitempty"`
	GuestName      string       `json:"guest_name"`
	GuestPhone     string       `json:"guest_phone"`
	AmountPaid     float64      `json:"amount_paid"`
	Status         model.Status `json:"status"`
	StatusMessage  string       `json:"status_message,omitempty"`
	CancelledAt    *time.Time   `json:"cancelled_at,omitempty"`
	EffectivePrice *float64     `json:"effective_price,omitempty"`
}

func (r *TrackBookingResponse) FromModel(booking model.TrackedBooking, status model.Status) {
	r.TrackingCode = booking.TrackingCode
	r.FutsalName = booking.FutsalName
	r.Location = booking.Location
	r.City = booking.City
	r.BookingDate = booking.BookingDate
	r.TimeSlot = booking.TimeSlot
	r.PlayerCount = booking.PlayerCount
	r.TeamName = booking.TeamName
	r.GuestName = booking.GuestName
	r.GuestPhone = booking.GuestPhone
	r.AmountPaid = booking.AmountPaid
	r.Status = status
	r.CancelledAt = booking.CancelledAt
}

type CancelBookingResponse struct {
	TrackingCode string `json:"tracking_code"`
	Message      string `json:"message"`
}
