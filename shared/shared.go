package shared

import (
	"context"
	"glamp/shared/cache"
	"glamp/shared/constant"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

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

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins prefix and parts with ":". Empty parts are skipped.
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix

	for _, part := range parts {
		if part == "" {
			continue
		}

		key += cacheKeySeparator + part
	}

	return key
}

// InvalidateCaches removes every key under prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	pattern := strings.TrimSuffix(prefix, "*") + "*"

	if err := c.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// SessionID returns the browser session id placed on ctx by the session
// middleware, or "" outside a request.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeySessionID).(string)

	return id
}
