package geo

import (
	"math"

	"courtside/config"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Geolocation failure codes as reported by browser clients.
const (
	FailurePermissionDenied    = 1
	FailurePositionUnavailable = 2
	FailureTimeout             = 3
)

const (
	msgPermissionDenied    = "Location permission denied. Please allow location access to see distances."
	msgPositionUnavailable = "Your location is currently unavailable. Please try again later."
	msgTimeout             = "Timed out while detecting your location. Please try again."
	msgUnknown             = "Unable to detect your location."
)

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// FailureMessage maps a browser geolocation error code to its user-facing
// message. Unknown codes fall back to a generic message.
func FailureMessage(code int) string {
	switch code {
	case FailurePermissionDenied:
		return msgPermissionDenied
	case FailurePositionUnavailable:
		return msgPositionUnavailable
	case FailureTimeout:
		return msgTimeout
	default:
		return msgUnknown
	}
}

// AcquisitionOptions is the position-request policy clients should apply when
// asking the browser for a one-shot location.
type AcquisitionOptions struct {
	EnableHighAccuracy bool `json:"enableHighAccuracy"`
	TimeoutMs          int  `json:"timeout"`
	MaximumAgeMs       int  `json:"maximumAge"`
}

// Options returns the acquisition policy from configuration: high accuracy
// off, 10s timeout and 5min position cache by default.
func Options(cfg *config.Config) AcquisitionOptions {
	return AcquisitionOptions{
		EnableHighAccuracy: false,
		TimeoutMs:          cfg.Geo.TimeoutSeconds * 1000,
		MaximumAgeMs:       cfg.Geo.MaxPositionAgeSeconds * 1000,
	}
}
