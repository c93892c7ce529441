package events

import (
	"encoding/json"
	"fmt"
)

// Kind names a push-channel event as emitted by the booking backend.
type Kind string

const (
	BookingCreated    Kind = "bookingCreated"
	BookingUpdated    Kind = "bookingUpdated"
	BookingDeleted    Kind = "bookingDeleted"
	SlotStatusUpdated Kind = "slotStatusUpdated"

	FutsalCreated Kind = "futsalCreated"
	FutsalUpdated Kind = "futsalUpdated"
	FutsalDeleted Kind = "futsalDeleted"

	FutsalAdminCreated Kind = "futsalAdminCreated"
	FutsalAdminUpdated Kind = "futsalAdminUpdated"
	FutsalAdminDeleted Kind = "futsalAdminDeleted"

	UserCreated   Kind = "userCreated"
	UserUpdated   Kind = "userUpdated"
	UserDeleted   Kind = "userDeleted"
	UserBlocked   Kind = "userBlocked"
	UserUnblocked Kind = "userUnblocked"

	RatingCreated Kind = "ratingCreated"
	RatingUpdated Kind = "ratingUpdated"
	RatingDeleted Kind = "ratingDeleted"

	SpecialPriceCreated Kind = "specialPriceCreated"
	SpecialPriceUpdated Kind = "specialPriceUpdated"
	SpecialPriceDeleted Kind = "specialPriceDeleted"
)

// Event is a frame from the backend's push channel: a tagged union keyed by
// event name. No payload carries enough guaranteed data to patch a cache in
// place, so payloads only narrow what gets invalidated.
type Event struct {
	Kind    Kind            `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// BookingPayload accompanies booking* and slotStatusUpdated events.
type BookingPayload struct {
	TrackingCode string `json:"tracking_code,omitempty"`
	FutsalID     int64  `json:"futsal_id,omitempty"`
}

// FutsalPayload accompanies futsal* and specialPrice* events.
type FutsalPayload struct {
	FutsalID int64 `json:"futsal_id,omitempty"`
}

// RatingPayload accompanies rating* events.
type RatingPayload struct {
	RatingID int64 `json:"rating_id,omitempty"`
	FutsalID int64 `json:"futsal_id,omitempty"`
}

// UserPayload accompanies user* and futsalAdmin* events.
type UserPayload struct {
	UserID int64 `json:"user_id,omitempty"`
}

// Decode unmarshals the payload into the variant matching the event kind.
// An absent payload yields the variant's zero value.
func (e *Event) Decode() (any, error) {
	unmarshal := func(out any) (any, error) {
		if len(e.Payload) == 0 {
			return out, nil
		}

		if err := json.Unmarshal(e.Payload, out); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", e.Kind, err)
		}

		return out, nil
	}

	switch e.Kind {
	case BookingCreated, BookingUpdated, BookingDeleted, SlotStatusUpdated:
		return unmarshal(&BookingPayload{})
	case FutsalCreated, FutsalUpdated, FutsalDeleted,
		SpecialPriceCreated, SpecialPriceUpdated, SpecialPriceDeleted:
		return unmarshal(&FutsalPayload{})
	case RatingCreated, RatingUpdated, RatingDeleted:
		return unmarshal(&RatingPayload{})
	case UserCreated, UserUpdated, UserDeleted, UserBlocked, UserUnblocked,
		FutsalAdminCreated, FutsalAdminUpdated, FutsalAdminDeleted:
		return unmarshal(&UserPayload{})
	default:
		return nil, fmt.Errorf("unknown event kind %q", e.Kind)
	}
}
