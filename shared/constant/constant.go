package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyClientKey contextKey = "client_key"
)

const (
	RequestParamSearch  = "search"
	RequestParamName    = "name"
	RequestParamCity    = "city"
	RequestParamLoc     = "location"
	RequestParamSortRt  = "sort_by_rating"
	RequestParamSortPx  = "sort_by_price"
	RequestParamShowAll = "show_all"
	RequestParamDate    = "date"
	RequestParamLat     = "lat"
	RequestParamLon     = "lon"
)

const (
	RequestParamID   = "id"
	RequestParamCode = "code"
)

const (
	// Display slicing defaults for the venue list.
	DefaultVisibleVenues    = 6
	VirtualizationThreshold = 20
)

const (
	TrackingCodeLength = 8
)

// Cache key prefixes shared by the read-through services and the push-event
// dispatcher that invalidates them.
const (
	CacheKeyVenueList     = "venue:gets"
	CacheKeyVenueSpecials = "venue:specials"
	CacheKeyVenuePrice    = "venue:price"
	CacheKeyTracking      = "tracking:get"
	CacheKeyRaterToken    = "rating:token"
)

const (
	SortPriceNone      = "none"
	SortPriceLowToHigh = "low-to-high"
	SortPriceHighToLow = "high-to-low"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelEventScopeName    = "event"
	OtelExternalScopeName = "external"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderClientKey          = "X-Client-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	MsgBookingNotFound   = "Booking not found."
	MsgBookingExpired    = "Your booking is expired."
	MsgBookingCancelled  = "Booking cancelled successfully."
	MsgErrorTracking     = "Error tracking booking."
	MsgErrorCancelling   = "Error cancelling booking."
	MsgErrorFeedback     = "Error submitting feedback."
	MsgFeedbackSubmitted = "Feedback submitted successfully."
	MsgRatingSubmitted   = "Rating submitted successfully."
	MsgRatingUpdated     = "Rating updated successfully."
	MsgRatingDeleted     = "Rating deleted successfully."
)

const (
	Asterix = "*"
	Empty   = ""
)
