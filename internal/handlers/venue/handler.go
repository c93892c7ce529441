package venue

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/venue/model/dto"
	"courtside/internal/domains/venue/service"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Get("/facets", handler.GetFacets)
		routerGroup.Get("/{id}/special-prices", handler.GetSpecialPrices)
		routerGroup.Get("/{id}/effective-price", handler.GetEffectivePrice)
	})
}

// GetVenues lists venues through the filter/sort pipeline.
// @Summary List venues
// @Description List venues filtered by search text and facet selections, sorted by rating or price, with display metadata and optional distances.
// @Tags Venue
// @Accept json
// @Produce json
// @Param search query string false "Free-text search over name, city and location"
// @Param name query string false "Exact name facet"
// @Param city query string false "Exact city facet"
// @Param location query string false "Exact location facet"
// @Param sort_by_rating query boolean false "Sort by rating descending"
// @Param sort_by_price query string false "Price sort: none, low-to-high or high-to-low"
// @Param show_all query boolean false "Reveal the full filtered list"
// @Param lat query number false "Viewer latitude for distance enrichment"
// @Param lon query number false "Viewer longitude for distance enrichment"
// @Success 200 {object} dto.GetVenuesResponse "Filtered venue list"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/venues [get]
func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	state := dto.FilterState{}
	state.FromRequest(r)

	viewer, err := parseViewer(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse viewer position")

		response.WithError(w, err)

		return
	}

	venues, err := handler.service.List(ctx, state, viewer)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venues retrieved successfully")

	response.WithJSON(w, http.StatusOK, venues)
}

// GetFacets returns the distinct filter values.
// @Summary Get filter facets
// @Description Distinct venue names, cities and locations for the filter dropdowns, derived from the full list.
// @Tags Venue
// @Produce json
// @Success 200 {object} dto.Facets "Facet values"
// @Failure 502 {object} response.Error
// @Router /v1/venues/facets [get]
func (handler *Handler) GetFacets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacets")
	defer scope.End()

	facets, err := handler.service.Facets(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Facets retrieved successfully")

	response.WithJSON(w, http.StatusOK, facets)
}

// GetSpecialPrices lists the price overrides of a venue.
// @Summary Get special prices
// @Description Date, recurring-weekday and time-window price overrides for a venue.
// @Tags Venue
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {array} dto.SpecialPriceResponse "Special prices"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/venues/{id}/special-prices [get]
func (handler *Handler) GetSpecialPrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialPrices")
	defer scope.End()

	id, err := parseVenueID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	prices, err := handler.service.SpecialPrices(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get special prices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special prices retrieved successfully")

	response.WithJSON(w, http.StatusOK, prices)
}

// GetEffectivePrice resolves the price governing a venue on a date.
// @Summary Get effective price
// @Description The per-hour price for a venue on a date after applying special price overrides.
// @Tags Venue
// @Produce json
// @Param id path int true "Venue ID"
// @Param date query string true "Date formatted as YYYY-MM-DD"
// @Success 200 {object} dto.EffectivePriceResponse "Effective price"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/venues/{id}/effective-price [get]
func (handler *Handler) GetEffectivePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEffectivePrice")
	defer scope.End()

	id, err := parseVenueID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	price, err := handler.service.EffectivePrice(ctx, id, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get effective price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Effective price retrieved successfully")

	response.WithJSON(w, http.StatusOK, price)
}

func parseVenueID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid venue id") //nolint:wrapcheck
	}

	return id, nil
}

// parseViewer reads the optional viewer coordinates. Providing one coordinate
// without the other is a client error rather than a silent no-distance list.
func parseViewer(r *http.Request) (dto.Viewer, error) {
	latParam := r.URL.Query().Get(constant.RequestParamLat)
	lonParam := r.URL.Query().Get(constant.RequestParamLon)

	if latParam == "" && lonParam == "" {
		return dto.Viewer{}, nil
	}

	if latParam == "" || lonParam == "" {
		return dto.Viewer{}, failure.InvalidCoordinates
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return dto.Viewer{}, failure.InvalidCoordinates
	}

	lon, err := strconv.ParseFloat(lonParam, 64)
	if err != nil {
		return dto.Viewer{}, failure.InvalidCoordinates
	}

	return dto.Viewer{Latitude: &lat, Longitude: &lon}, nil
}
