package dto

import (
	"net/http"

	"courtside/internal/domains/venue/model"
	"courtside/shared"
	"courtside/shared/constant"
)

// FilterState is the ephemeral, request-scoped filter/sort selection. It is
// never persisted: every request starts from neutral defaults and applies
// only what the query string carries.
type FilterState struct {
	SearchQuery      string `json:"search_query"      validate:"omitempty,max=100"`
	SelectedName     string `json:"selected_name"     validate:"omitempty"`
	SelectedCity     string `json:"selected_city"     validate:"omitempty"`
	SelectedLocation string `json:"selected_location" validate:"omitempty"`
	SortByRating     bool   `json:"sort_by_rating"    validate:"omitempty"`
	SortByPrice      string `json:"sort_by_price"     validate:"omitempty,oneof=none low-to-high high-to-low"`
	ShowAll          bool   `json:"show_all"          validate:"omitempty"`
}

func (f *FilterState) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.SearchQuery = query.Get(constant.RequestParamSearch)
	f.SelectedName = query.Get(constant.RequestParamName)
	f.SelectedCity = query.Get(constant.RequestParamCity)
	f.SelectedLocation = query.Get(constant.RequestParamLoc)

	if sortByRating := shared.ConvertStringToBool(query.Get(constant.RequestParamSortRt)); sortByRating != nil {
		f.SortByRating = *sortByRating
	}

	f.SortByPrice = constant.SortPriceNone
	if sortByPrice := query.Get(constant.RequestParamSortPx); sortByPrice != "" {
		f.SortByPrice = sortByPrice
	}

	if showAll := shared.ConvertStringToBool(query.Get(constant.RequestParamShowAll)); showAll != nil {
		f.ShowAll = *showAll
	}
}

// Viewer is an optional client position used to attach distances.
type Viewer struct {
	Latitude  *float64
	Longitude *float64
}

func (v *Viewer) HasPosition() bool {
	return v != nil && v.Latitude != nil && v.Longitude != nil
}

type VenueResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Location      string                `json:"location"`
	City          string                `json:"city"`
	Description   string                `json:"description"`
	Images        []string              `json:"images"`
	Video         *string               `json:"video,omitempty"`
	Facilities    []string              `json:"facilities"`
	GameFormat    string                `json:"game_format"`
	PricePerHour  float64               `json:"price_per_hour"`
	Hours         *model.OperatingHours `json:"operating_hours,omitempty"`
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	AverageRating *float64              `json:"average_rating,omitempty"`
	TotalRatings  int                   `json:"total_ratings"`
	Phone         *string               `json:"phone,omitempty"`
	DistanceKm    *float64              `json:"distance_km,omitempty"`
}

func (r *VenueResponse) FromModel(venue model.Venue) {
	r.ID = venue.ID
	r.Name = venue.Name
	r.Location = venue.Location
	r.City = venue.City
	r.Description = venue.Description
	r.Images = venue.Images
	r.Video = venue.Video
	r.Facilities = venue.Facilities
	r.GameFormat = venue.GameFormat
	r.PricePerHour = venue.PricePerHour
	r.Hours = venue.Hours
	r.Latitude = venue.Latitude
	r.Longitude = venue.Longitude
	r.TotalRatings = venue.TotalRatings
	r.Phone = venue.Phone

	// Rating display is suppressed entirely until someone has rated.
	if venue.ShowRating() {
		r.AverageRating = venue.AverageRating
	}
}

// Facets are the distinct-value lists backing the filter dropdowns.
type Facets struct {
	Names     []string `json:"names"`
	Cities    []string `json:"cities"`
	Locations []string `json:"locations"`
}

// Display describes how the filtered/sorted list should be paginated into the
// viewport. It never changes list contents, only presentation.
type Display struct {
	TotalFiltered int  `json:"total_filtered"`
	VisibleCount  int  `json:"visible_count"`
	ShowAll       bool `json:"show_all"`
	Virtualized   bool `json:"virtualized"`
}

type GetVenuesResponse struct {
	Venues  []VenueResponse `json:"venues"`
	Facets  Facets          `json:"facets"`
	Display Display         `json:"display"`
}

func (r *GetVenuesResponse) FromModels(venues []model.Venue) {
	r.Venues = make([]VenueResponse, len(venues))
	for i, venue := range venues {
		r.Venues[i].FromModel(venue)
	}
}

type SpecialPriceResponse struct {
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

func (r *SpecialPriceResponse) FromModel(price model.SpecialPrice) {
	r.ID = price.ID
	r.FutsalID = price.FutsalID
	r.Type = price.Type
	r.Date = price.Date
	r.Weekdays = price.Weekdays
	r.StartTime = price.StartTime
	r.EndTime = price.EndTime
	r.Price = price.Price
	r.Message = price.Message
	r.IsOffer = price.IsOffer
}

type EffectivePriceResponse struct {
	FutsalID       int64   `json:"futsal_id"`
	Date           string  `json:"date"`
	EffectivePrice float64 `json:"effective_price"`
}

type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}
