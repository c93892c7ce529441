package model

const (
	EntityName = "futsal"
)

// OperatingHours holds opening/closing as "HH:MM" strings, as served by the
// booking backend.
type OperatingHours struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

// Venue is a read-only futsal venue sourced from the external backend.
// Name, City and Location are always non-empty; they back the case-insensitive
// search and the exact-match facet filters.
type Venue struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	City          string          `json:"city"`
	Description   string          `json:"description"`
	Images        []string        `json:"images"`
	Video         *string         `json:"video,omitempty"`
	Facilities    []string        `json:"facilities"`
	GameFormat    string          `json:"game_format"`
	PricePerHour  float64         `json:"price_per_hour"`
	Hours         *OperatingHours `json:"operating_hours,omitempty"`
	Latitude      *float64        `json:"latitude,omitempty"`
	Longitude     *float64        `json:"longitude,omitempty"`
	AverageRating *float64        `json:"average_rating,omitempty"`
	TotalRatings  int             `json:"total_ratings"`
	Phone         *string         `json:"phone,omitempty"`
}

// RatingValue returns the venue's average rating, with missing ratings
// treated as 0 for sorting purposes.
func (v *Venue) RatingValue() float64 {
	if v.AverageRating == nil {
		return 0
	}

	return *v.AverageRating
}

// HasCoordinates reports whether the venue carries a usable lat/lon pair.
// The two are always present together or absent together.
func (v *Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// ShowRating reports whether rating display is allowed. Venues without any
// ratings suppress the rating badge entirely.
func (v *Venue) ShowRating() bool {
	return v.TotalRatings > 0
}

const (
	SpecialPriceTypeDate      = "date"
	SpecialPriceTypeRecurring = "recurring"
	SpecialPriceTypeTimeBased = "time_based"
)

// SpecialPrice is a price override for a venue: a specific calendar date, a
// set of recurring weekdays, or a start/end time window optionally anchored
// to a date.
type SpecialPrice struct {
	ID        int64    `json:"id"`
	FutsalID  int64    `json:"futsal_id"`
	Type      string   `json:"type"`
	Date      *string  `json:"date,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
	Price     float64  `json:"price"`
	Message   *string  `json:"message,omitempty"`
	IsOffer   bool     `json:"is_offer"`
}
