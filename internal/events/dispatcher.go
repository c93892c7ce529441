package events

import (
	"context"

	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
)

// Dispatcher maps inbound push events to cache invalidations. That is the
// sole contractual effect of the push channel on this service: the next read
// re-fetches from the backend.
type Dispatcher struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func NewDispatcher(redisCache cache.RedisCache, ot otel.Otel) *Dispatcher {
	return &Dispatcher{
		cache: redisCache,
		otel:  ot,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Dispatch")
	defer scope.End()

	scope.SetAttribute("event.kind", string(event.Kind))

	switch event.Kind {
	case BookingCreated, BookingUpdated, BookingDeleted, SlotStatusUpdated:
		d.invalidateBooking(ctx, event)
	case FutsalCreated, FutsalUpdated, FutsalDeleted:
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenueList)
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenueSpecials)
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenuePrice)
	case SpecialPriceCreated, SpecialPriceUpdated, SpecialPriceDeleted:
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenueSpecials)
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenuePrice)
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenueList)
	case RatingCreated, RatingUpdated, RatingDeleted:
		// Rating mutations move a venue's average rating.
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyVenueList)
	case UserCreated, UserUpdated, UserDeleted, UserBlocked, UserUnblocked,
		FutsalAdminCreated, FutsalAdminUpdated, FutsalAdminDeleted:
		// No user or admin state is cached here.
	default:
		log.Warn().Str("kind", string(event.Kind)).Msg("ignoring unknown push event")
	}
}

// invalidateBooking narrows to a single tracked booking when the payload
// carries its code, and falls back to the whole prefix otherwise.
func (d *Dispatcher) invalidateBooking(ctx context.Context, event Event) {
	decoded, err := event.Decode()
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking event payload")

		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyTracking)

		return
	}

	payload, ok := decoded.(*BookingPayload)
	if !ok || payload.TrackingCode == "" {
		shared.InvalidateCaches(ctx, d.cache, constant.CacheKeyTracking)

		return
	}

	if err := d.cache.Delete(ctx, shared.BuildCacheKey(constant.CacheKeyTracking, payload.TrackingCode)); err != nil {
		log.Error().Err(err).Str("tracking_code", payload.TrackingCode).Msg("failed to invalidate tracked booking cache")
	}
}
