package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/infras/upstream"
	"courtside/internal/domains/venue/model"
	"courtside/internal/domains/venue/model/dto"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/geo"
)

type Venue interface {
	List(ctx context.Context, state dto.FilterState, viewer dto.Viewer) (dto.GetVenuesResponse, error)
	Facets(ctx context.Context) (dto.Facets, error)
	SpecialPrices(ctx context.Context, futsalID int64) ([]dto.SpecialPriceResponse, error)
	EffectivePrice(ctx context.Context, futsalID int64, date string) (dto.EffectivePriceResponse, error)
	Distance(ctx context.Context, fromLat, fromLon, toLat, toLon float64) dto.DistanceResponse
}

type serviceImpl struct {
	backend upstream.Client
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(backend upstream.Client, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Venue {
	return &serviceImpl{
		backend: backend,
		cfg:     cfg,
		cache:   redisCache,
		otel:    ot,
	}
}

// List runs the display pipeline: cached fetch, filter, sort, facet
// derivation and display-window metadata. Distances are attached when the
// viewer reported a position.
func (s *serviceImpl) List(ctx context.Context, state dto.FilterState, viewer dto.Viewer) (res dto.GetVenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	venues, err := s.fetchVenues(ctx)
	if err != nil {
		return res, err
	}

	filtered := Sort(Filter(venues, state), state)

	res.FromModels(filtered)
	res.Facets = DeriveFacets(venues)
	res.Display = DisplayWindow(len(filtered), state.ShowAll)

	if viewer.HasPosition() {
		for i := range res.Venues {
			venue := &res.Venues[i]
			if venue.Latitude == nil || venue.Longitude == nil {
				continue
			}

			distance := geo.Haversine(*viewer.Latitude, *viewer.Longitude, *venue.Latitude, *venue.Longitude)
			venue.DistanceKm = &distance
		}
	}

	return res, nil
}

// Facets derives the dropdown values from the full venue list, independent of
// any active filter.
func (s *serviceImpl) Facets(ctx context.Context) (res dto.Facets, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Facets")
	defer scope.End()
	defer scope.TraceIfError(err)

	venues, err := s.fetchVenues(ctx)
	if err != nil {
		return res, err
	}

	return DeriveFacets(venues), nil
}

func (s *serviceImpl) SpecialPrices(ctx context.Context, futsalID int64) (res []dto.SpecialPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SpecialPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	specials, err := s.fetchSpecials(ctx, futsalID)
	if err != nil {
		return nil, err
	}

	res = make([]dto.SpecialPriceResponse, len(specials))
	for i, special := range specials {
		res[i].FromModel(special)
	}

	return res, nil
}

// EffectivePrice asks the backend for the price governing a venue on a date.
// When the backend's price endpoint fails, the price is resolved locally from
// the special-price overrides and the venue's base hourly rate instead.
func (s *serviceImpl) EffectivePrice(ctx context.Context, futsalID int64, date string) (res dto.EffectivePriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EffectivePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyVenuePrice, futsalID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for effective price")

		return res, nil
	}

	price, err := s.backend.EffectivePrice(ctx, futsalID, date)
	if err != nil {
		log.Warn().Err(err).Int64("futsal_id", futsalID).Str("date", date).Msg("effective price fetch failed, resolving locally")

		price, err = s.resolvePriceLocally(ctx, futsalID, day)
		if err != nil {
			log.Error().Err(err).Int64("futsal_id", futsalID).Str("date", date).Msg("failed to get effective price")

			return res, fmt.Errorf("failed to get effective price: %w", err)
		}
	}

	res = dto.EffectivePriceResponse{
		FutsalID:       futsalID,
		Date:           date,
		EffectivePrice: price,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save effective price to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Distance(ctx context.Context, fromLat, fromLon, toLat, toLon float64) dto.DistanceResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Distance")
	defer scope.End()

	distance := geo.Haversine(fromLat, fromLon, toLat, toLon)
	scope.SetAttribute("geo.distance_km", distance)

	return dto.DistanceResponse{DistanceKm: distance}
}

// fetchVenues is the cached read of the raw venue list. Filtering and sorting
// always start from this fetch order, so dropping a sort restores it.
func (s *serviceImpl) fetchVenues(ctx context.Context) (venues []model.Venue, err error) {
	cacheKey := constant.CacheKeyVenueList

	err = s.cache.Get(ctx, cacheKey, &venues)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for venues")

		return venues, nil
	}

	venues, err = s.backend.Venues(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, venues, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venues to cache")
		}
	}()

	return venues, nil
}

// fetchSpecials is the cached read of a venue's special-price overrides.
func (s *serviceImpl) fetchSpecials(ctx context.Context, futsalID int64) (specials []model.SpecialPrice, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyVenueSpecials, futsalID)

	err = s.cache.Get(ctx, cacheKey, &specials)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for special prices")

		return specials, nil
	}

	specials, err = s.backend.SpecialPrices(ctx, futsalID)
	if err != nil {
		log.Error().Err(err).Int64("futsal_id", futsalID).Msg("failed to get special prices")

		return nil, fmt.Errorf("failed to get special prices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, specials, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save special prices to cache")
		}
	}()

	return specials, nil
}

// resolvePriceLocally derives the effective price without the backend's price
// endpoint: the override applicable on the day wins, otherwise the venue's
// base hourly rate applies.
func (s *serviceImpl) resolvePriceLocally(ctx context.Context, futsalID int64, day time.Time) (float64, error) {
	specials, err := s.fetchSpecials(ctx, futsalID)
	if err != nil {
		return 0, err
	}

	if special := ApplicableSpecial(specials, day); special != nil {
		return special.Price, nil
	}

	venues, err := s.fetchVenues(ctx)
	if err != nil {
		return 0, err
	}

	for _, venue := range venues {
		if venue.ID == futsalID {
			return venue.PricePerHour, nil
		}
	}

	return 0, failure.NotFound("futsal not found") //nolint:wrapcheck
}
