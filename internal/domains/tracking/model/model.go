package model

import (
	"fmt"
	"strings"
	"time"

	"courtside/shared/constant"
)

const (
	EntityName = "booking"
)

// Status is the derived lifecycle state of a tracked booking. Transitions are
// Active -> Expired (slot elapsed) and Active -> Cancelled -> Expired
// (explicit cancel); Expired is terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// TrackedBooking is a guest booking fetched by its 8-character tracking code.
type TrackedBooking struct {
	ID           int64      `json:"id"`
	TrackingCode string     `json:"tracking_code"`
	FutsalID     int64      `json:"futsal_id"`
	FutsalName   string     `json:"futsal_name"`
	Location     string     `json:"location"`
	City         string     `json:"city"`
	BookingDate  string     `json:"booking_date"`
	TimeSlot     string     `json:"time_slot"`
	PlayerCount  int        `json:"player_count"`
	TeamName     *string    `json:"team_name,omitempty"`
	GuestName    string     `json:"guest_name"`
	GuestPhone   string     `json:"guest_phone"`
	AmountPaid   float64    `json:"amount_paid"`
	CreatedAt    time.Time  `json:"created_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

// IsCancelled reports whether the booking was explicitly cancelled.
// A booking is cancelled iff cancelled_at is set.
func (b *TrackedBooking) IsCancelled() bool {
	return b.CancelledAt != nil
}

// SlotStart parses the booking's calendar date plus the slot's start time
// ("HH:MM" before the "-") in the given location.
func (b *TrackedBooking) SlotStart(loc *time.Location) (time.Time, error) {
	start, _, ok := strings.Cut(b.TimeSlot, "-")
	if !ok {
		return time.Time{}, fmt.Errorf("malformed time slot %q", b.TimeSlot)
	}

	slotStart, err := time.ParseInLocation(
		constant.DateFormat+" "+constant.TimeFormat,
		b.BookingDate+" "+strings.TrimSpace(start),
		loc,
	)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing slot start: %w", err)
	}

	return slotStart, nil
}

// StatusAt derives the booking's lifecycle state at the given instant.
// Cancellation wins over any date comparison. For other bookings the calendar
// date is compared time-stripped: a past date is expired, a future date is
// active, and on the booking day the slot start decides. The result is
// monotone in now: once expired, later instants stay expired.
func (b *TrackedBooking) StatusAt(now time.Time) (Status, error) {
	if b.IsCancelled() {
		return StatusCancelled, nil
	}

	bookingDate, err := time.ParseInLocation(constant.DateFormat, b.BookingDate, now.Location())
	if err != nil {
		return StatusExpired, fmt.Errorf("parsing booking date: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case bookingDate.Before(today):
		return StatusExpired, nil
	case bookingDate.After(today):
		return StatusActive, nil
	}

	slotStart, err := b.SlotStart(now.Location())
	if err != nil {
		return StatusExpired, err
	}

	if now.Before(slotStart) {
		return StatusActive, nil
	}

	return StatusExpired, nil
}
