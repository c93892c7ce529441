package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"courtside/shared/cache"
	"courtside/shared/constant"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins key parts with ":" so cached reads stay keyed by their
// query parameters.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery appends a deterministic rendering of the query values
// to the prefix.
func BuildCacheKeyWithQuery(prefix string, values ...any) string {
	parts := []string{prefix}
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%v", value))
	}

	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cached entry under the given prefix. Errors
// are logged, never propagated: a stale cache self-heals on TTL expiry.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache prefix")
	}
}
