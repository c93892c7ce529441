package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/infras/upstream"
	"courtside/internal/domains/tracking/model"
	"courtside/internal/domains/tracking/model/dto"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/timezone"
	"courtside/shared/validator"
)

type Tracking interface {
	Track(ctx context.Context, trackingCode string) (dto.TrackBookingResponse, error)
	Cancel(ctx context.Context, trackingCode string) (dto.CancelBookingResponse, error)
}

type serviceImpl struct {
	backend upstream.Client
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel

	mu  sync.Mutex
	seq map[string]uint64
}

func New(backend upstream.Client, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Tracking {
	return &serviceImpl{
		backend: backend,
		cfg:     cfg,
		cache:   redisCache,
		otel:    ot,
		seq:     map[string]uint64{},
	}
}

// Track looks a booking up by its tracking code. The code is validated before
// any backend call, the raw booking is cached so its status can be re-derived
// on every read, and a cancelled booking reports not-found just like a code
// that never existed.
func (s *serviceImpl) Track(ctx context.Context, trackingCode string) (res dto.TrackBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Track")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateTrackingCode(trackingCode); err != nil {
		return res, err
	}

	lookup := s.beginLookup(trackingCode)
	cacheKey := shared.BuildCacheKey(constant.CacheKeyTracking, trackingCode)

	booking := model.TrackedBooking{}

	if cacheErr := s.cache.Get(ctx, cacheKey, &booking); cacheErr != nil {
		// The backend being unreachable reads the same as an unknown code:
		// the guest is told the booking is not found, and the cached entry
		// is dropped so a stale copy cannot resurrect it.
		booking, err = s.backend.TrackBooking(ctx, trackingCode)
		if err != nil {
			if !failure.IsNotFound(err) {
				log.Error().Err(err).Str("tracking_code", trackingCode).Msg(constant.MsgErrorTracking)
			}

			go s.invalidate(ctx, cacheKey)

			return res, failure.NotFound(constant.MsgBookingNotFound) //nolint:wrapcheck
		}

		// A lookup overtaken by a newer one for the same code must not
		// overwrite what the newer lookup cached.
		if s.isCurrent(trackingCode, lookup) {
			go func() {
				c := context.WithoutCancel(ctx)

				if err := s.cache.Save(c, cacheKey, booking, s.cfg.Cache.TTL); err != nil {
					log.Error().Err(err).Msg("failed to save tracked booking to cache")
				}
			}()
		}
	} else {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tracked booking")
	}

	status, err := booking.StatusAt(timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("tracking_code", trackingCode).Msg(constant.MsgErrorTracking)

		return res, failure.InternalError(err) //nolint:wrapcheck
	}

	if status == model.StatusCancelled {
		go s.invalidate(ctx, cacheKey)

		return res, failure.NotFound(constant.MsgBookingNotFound) //nolint:wrapcheck
	}

	res.FromModel(booking, status)

	if status == model.StatusExpired {
		res.StatusMessage = constant.MsgBookingExpired
	}

	// Price enrichment is best effort: a failed price fetch never fails the
	// lookup, it just leaves the field out.
	if price, priceErr := s.backend.EffectivePrice(ctx, booking.FutsalID, booking.BookingDate); priceErr != nil {
		log.Warn().Err(priceErr).Str("tracking_code", trackingCode).Msg("failed to enrich booking with effective price")
	} else {
		res.EffectivePrice = &price
	}

	return res, nil
}

// Cancel forwards the cancellation and drops the cached booking so the next
// lookup of the same code reports not-found.
func (s *serviceImpl) Cancel(ctx context.Context, trackingCode string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateTrackingCode(trackingCode); err != nil {
		return res, err
	}

	if err = s.backend.CancelBooking(ctx, trackingCode); err != nil {
		if failure.IsNotFound(err) {
			return res, failure.NotFound(constant.MsgBookingNotFound) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("tracking_code", trackingCode).Msg(constant.MsgErrorCancelling)

		return res, err
	}

	go s.invalidate(ctx, shared.BuildCacheKey(constant.CacheKeyTracking, trackingCode))

	return dto.CancelBookingResponse{
		TrackingCode: trackingCode,
		Message:      constant.MsgBookingCancelled,
	}, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, cacheKey string) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, cacheKey); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to drop tracked booking from cache")
	}
}

// beginLookup assigns this lookup the next sequence number for its code.
func (s *serviceImpl) beginLookup(trackingCode string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[trackingCode]++

	return s.seq[trackingCode]
}

// isCurrent reports whether no newer lookup for the code has started since.
func (s *serviceImpl) isCurrent(trackingCode string, lookup uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seq[trackingCode] == lookup
}
