package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/infras/upstream"
	"courtside/internal/domains/rating/model/dto"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/validator"
)

type Rating interface {
	Create(ctx context.Context, clientKey string, req dto.CreateRatingRequest) (dto.RatingResponse, error)
	Update(ctx context.Context, clientKey string, id int64, req dto.UpdateRatingRequest) (dto.RatingResponse, error)
	Delete(ctx context.Context, clientKey string, id int64) (dto.RatingResponse, error)
}

type serviceImpl struct {
	backend upstream.Client
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(backend upstream.Client, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Rating {
	return &serviceImpl{
		backend: backend,
		cfg:     cfg,
		cache:   redisCache,
		otel:    ot,
	}
}

// Create submits a rating on behalf of an anonymous client. The client is
// identified by a generated rater token kept in redis under its client key so
// the backend can tie updates and deletes to the original rating.
func (s *serviceImpl) Create(ctx context.Context, clientKey string, req dto.CreateRatingRequest) (res dto.RatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	token, err := s.raterToken(ctx, clientKey)
	if err != nil {
		return res, err
	}

	rating, err := s.backend.CreateRating(ctx, upstream.RatingPayload{
		FutsalID:   req.FutsalID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		RaterToken: token,
	})
	if err != nil {
		log.Error().Err(err).Int64("futsal_id", req.FutsalID).Msg("failed to create rating")

		return res, err
	}

	s.invalidateVenueList(ctx)

	return dto.RatingResponse{
		ID:       rating.ID,
		FutsalID: rating.FutsalID,
		Rating:   rating.Rating,
		Comment:  rating.Comment,
		Message:  constant.MsgRatingSubmitted,
	}, nil
}

func (s *serviceImpl) Update(ctx context.Context, clientKey string, id int64, req dto.UpdateRatingRequest) (res dto.RatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	token, err := s.raterToken(ctx, clientKey)
	if err != nil {
		return res, err
	}

	err = s.backend.UpdateRating(ctx, id, upstream.RatingPayload{
		Rating:     req.Rating,
		Comment:    req.Comment,
		RaterToken: token,
	})
	if err != nil {
		log.Error().Err(err).Int64("rating_id", id).Msg("failed to update rating")

		return res, err
	}

	s.invalidateVenueList(ctx)

	return dto.RatingResponse{
		ID:      id,
		Rating:  req.Rating,
		Comment: req.Comment,
		Message: constant.MsgRatingUpdated,
	}, nil
}

// Delete removes the rating and forgets the client's rater token, so a later
// rating from the same client starts a fresh identity.
func (s *serviceImpl) Delete(ctx context.Context, clientKey string, id int64) (res dto.RatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.backend.DeleteRating(ctx, id); err != nil {
		log.Error().Err(err).Int64("rating_id", id).Msg("failed to delete rating")

		return res, err
	}

	tokenKey := shared.BuildCacheKey(constant.CacheKeyRaterToken, clientKey)
	if err := s.cache.Delete(ctx, tokenKey); err != nil {
		log.Error().Err(err).Str("cacheKey", tokenKey).Msg("failed to drop rater token from cache")
	}

	s.invalidateVenueList(ctx)

	return dto.RatingResponse{
		ID:      id,
		Message: constant.MsgRatingDeleted,
	}, nil
}

// raterToken returns the stable anonymous identity for a client key, minting
// and persisting one on first use.
func (s *serviceImpl) raterToken(ctx context.Context, clientKey string) (string, error) {
	if clientKey == "" {
		return "", failure.BadRequestFromString("missing client key") //nolint:wrapcheck
	}

	tokenKey := shared.BuildCacheKey(constant.CacheKeyRaterToken, clientKey)

	var token string
	if err := s.cache.Get(ctx, tokenKey, &token); err == nil && token != "" {
		return token, nil
	}

	token = uuid.NewString()

	// No TTL: the token must outlive every venue cache entry or the client
	// loses the ability to revise its own ratings.
	if err := s.cache.Save(ctx, tokenKey, token, 0); err != nil {
		log.Error().Err(err).Str("cacheKey", tokenKey).Msg("failed to persist rater token")

		return "", failure.InternalError(err) //nolint:wrapcheck
	}

	return token, nil
}

// Average ratings ride on the cached venue list, so every rating mutation
// invalidates it.
func (s *serviceImpl) invalidateVenueList(ctx context.Context) {
	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheKeyVenueList)
}
