package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"

	"courtside/shared/constant"
	"courtside/shared/failure"
)

var validate *val.Validate

var timeSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)

// registerTrackingCodeValidation enforces the tracking code gate: exactly 8
// characters, no charset constraint beyond length.
func registerTrackingCodeValidation(field val.FieldLevel) bool {
	code, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return len(strings.TrimSpace(code)) == constant.TrackingCodeLength
}

// registerTimeSlotValidation accepts slots encoded as "HH:MM-HH:MM".
func registerTimeSlotValidation(field val.FieldLevel) bool {
	slot, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return timeSlotPattern.MatchString(slot)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("trackingcode", registerTrackingCodeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timeslot", registerTimeSlotValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateTrackingCode is the pre-request gate for tracking code input. It
// never lets a short or long code reach the upstream API.
func ValidateTrackingCode(code string) error {
	if len(strings.TrimSpace(code)) != constant.TrackingCodeLength {
		return failure.InvalidTrackingCode
	}

	return nil
}
